package insight

import (
	"testing"
	"unicode/utf8"
)

func TestTopicLabel(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{"empty", "", genericTopic},
		{"punctuation only", "？？？", genericTopic},
		{"strips trailing question mark", "如何设计秒杀系统？", "如何设计秒杀系统"},
		{"strips trailing full stop", "介绍你的项目。", "介绍你的项目"},
		{"strips leading dashes", "——请介绍项目", "请介绍项目"},
		{"keeps inner spaces", "What is Go?", "What is Go"},
		{"cjk kept as is", "微服务架构", "微服务架构"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopicLabel(tt.question)
			if got != tt.want {
				t.Errorf("TopicLabel(%q) = %q, want %q", tt.question, got, tt.want)
			}
		})
	}
}

func TestTopicLabelTruncation(t *testing.T) {
	long := "这是一个非常非常非常非常长的面试问题需要被截断处理"
	got := TopicLabel(long)
	if utf8.RuneCountInString(got) != topicMaxRunes+1 {
		t.Errorf("truncated topic has %d runes, want %d", utf8.RuneCountInString(got), topicMaxRunes+1)
	}
	if got[len(got)-len("…"):] != "…" {
		t.Errorf("truncated topic should end with ellipsis: %q", got)
	}
}

func TestTopicLabelNeverEmptyAndBounded(t *testing.T) {
	questions := []string{
		"", "?", "！！！", "a", "为什么选择我们？",
		"What would you redo in your last project, and why exactly?",
	}
	for _, q := range questions {
		got := TopicLabel(q)
		if got == "" {
			t.Errorf("TopicLabel(%q) returned empty string", q)
		}
		if n := utf8.RuneCountInString(got); n > topicMaxRunes+1 {
			t.Errorf("TopicLabel(%q) = %q has %d runes, want <= %d", q, got, n, topicMaxRunes+1)
		}
	}
}
