package insight

import "testing"

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		question string
		want     Category
	}{
		{"blank input", "", "", CategoryOther},
		{"whitespace only", "  ", " \t", CategoryOther},
		{"self intro question", "", "请做一下自我介绍", CategorySelfIntro},
		{"english self", "", "Tell me about your self", CategorySelfIntro},
		{"project label", "项目经验", "", CategoryProject},
		{"project question", "", "介绍一个你主导的项目", CategoryProject},
		{"system design", "", "如何设计一个高可用架构", CategorySystemDesign},
		{"algorithm leetcode", "", "这道 LeetCode 题的复杂度是多少", CategoryAlgorithm},
		{"tech depth", "", "请讲讲这个缓存的原理", CategoryTechDepth},
		{"behavior conflict", "", "和同事发生冲突怎么办", CategoryBehavior},
		{"motivation why us", "", "Why us and not a bigger company?", CategoryMotivation},
		{"company business", "", "你了解我们公司的业务吗", CategoryCompany},
		{"product", "", "你怎么看这个产品的用户体验", CategoryProduct},
		{"closing", "", "你有什么想反问我们的", CategoryClosing},
		{"no keyword", "", "请谈谈你最近的一次经历", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCategory(tt.category, tt.question)
			if got != tt.want {
				t.Errorf("NormalizeCategory(%q, %q) = %s, want %s", tt.category, tt.question, got, tt.want)
			}
		})
	}
}

func TestNormalizeCategoryPriority(t *testing.T) {
	// 系统设计 keywords must win over the generic tech_depth ones even when
	// both appear in the question.
	got := NormalizeCategory("", "系统设计中如何做性能优化")
	if got != CategorySystemDesign {
		t.Errorf("priority broken: got %s, want %s", got, CategorySystemDesign)
	}

	// project outranks system design in rule order
	got = NormalizeCategory("", "这个项目的架构是怎样的")
	if got != CategoryProject {
		t.Errorf("priority broken: got %s, want %s", got, CategoryProject)
	}
}

func TestNormalizeCategoryDeterministic(t *testing.T) {
	inputs := []struct{ category, question string }{
		{"", "如何设计秒杀系统"},
		{"技术深度", ""},
		{"", "随便聊聊"},
	}
	for _, in := range inputs {
		first := NormalizeCategory(in.category, in.question)
		for i := 0; i < 5; i++ {
			if got := NormalizeCategory(in.category, in.question); got != first {
				t.Fatalf("non-deterministic classification for (%q, %q): %s then %s", in.category, in.question, first, got)
			}
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryOther.Label(); got != "综合问题" {
		t.Errorf("other label = %q, want 综合问题", got)
	}
	if got := Category("bogus").Label(); got != "综合问题" {
		t.Errorf("unknown category label = %q, want fallback 综合问题", got)
	}
	if got := CategorySystemDesign.Label(); got != "系统设计" {
		t.Errorf("system_design label = %q", got)
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := DisplayLabel(CategoryProject, "原始分类"); got != "原始分类" {
		t.Errorf("raw category should win: got %q", got)
	}
	if got := DisplayLabel(CategoryProject, ""); got != "项目经验" {
		t.Errorf("normalized label fallback: got %q", got)
	}
}
