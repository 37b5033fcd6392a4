package insight

import (
	"math"
	"testing"
	"time"

	"interviewlens/internal/model"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"both empty", "", "", 0},
		{"one empty", "如何设计系统", "", 0},
		{"identical", "如何设计一个高并发系统", "如何设计一个高并发系统", 1},
		{"identical short", "ab", "ab", 1},
		{"punctuation ignored", "如何设计系统？", "如何设计系统", 1},
		{"newlines ignored", "如何设计\n系统", "如何设计系统", 1},
		{"disjoint", "abcdef", "uvwxyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"如何设计秒杀系统", "秒杀系统怎么设计"},
		{"project retrospective", "retrospective on the project"},
		{"abc", "abcd"},
		{"", "anything"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q)=%f but reversed=%f", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarityRange(t *testing.T) {
	pairs := [][2]string{
		{"如何设计秒杀系统", "介绍一下你自己"},
		{"abcde", "cdefg"},
		{"微服务架构的优缺点", "微服务架构"},
	}
	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q, %q) = %f out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestShinglesWindowSize(t *testing.T) {
	// 4 runes or fewer use single-rune shingles
	set := shingles("abcd")
	if _, ok := set["a"]; !ok {
		t.Errorf("short string should use window size 1, got %v", set)
	}
	set = shingles("abcde")
	if _, ok := set["ab"]; !ok {
		t.Errorf("longer string should use window size 2, got %v", set)
	}
	if _, ok := set["a"]; ok {
		t.Errorf("longer string should not contain single-rune shingles, got %v", set)
	}
}

func TestRecencyBonus(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		want float64
	}{
		{"empty date", "", 0},
		{"unparseable", "not-a-date", 0},
		{"same day capped", "2025-06-10T10:00:00Z", 0.2},
		{"ten days old", "2025-05-31T12:00:00Z", 0.02},
		{"plain date layout", "2025-06-09", 0.2 / 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recencyBonus(tt.date, now)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("recencyBonus(%q) = %f, want %f", tt.date, got, tt.want)
			}
		})
	}
}

func TestRankRecordsSelfExclusion(t *testing.T) {
	records := []Record{
		{QA: model.QAItem{ID: 1, Question: "如何设计秒杀系统"}, InterviewID: "cur"},
		{QA: model.QAItem{ID: 2, Question: "如何设计秒杀系统"}, InterviewID: "cur"},
		{QA: model.QAItem{ID: 1, Question: "如何设计秒杀系统"}, InterviewID: "other"},
	}

	matches, total := rankRecords(rankParams{
		records:     records,
		category:    CategorySystemDesign,
		question:    "如何设计秒杀系统",
		interviewID: "cur",
		qaID:        1,
		now:         time.Now(),
	})

	if total != 2 {
		t.Errorf("totalMatches = %d, want 2 (self excluded)", total)
	}
	for _, m := range matches {
		if m.InterviewID == "cur" && m.QA.ID == 1 {
			t.Error("self record leaked into matches")
		}
	}
}

func TestRankRecordsThresholdFilter(t *testing.T) {
	records := []Record{
		// same category: 0.35 boost alone clears the 0.2 threshold
		{QA: model.QAItem{ID: 1, Question: "谈谈微服务架构"}, InterviewID: "a", Category: CategorySystemDesign},
		// unrelated text, different category, no score, no date: weight 0
		{QA: model.QAItem{ID: 2, Question: "xyzw"}, InterviewID: "b", Category: CategoryBehavior},
	}

	matches, total := rankRecords(rankParams{
		records:  records,
		category: CategorySystemDesign,
		question: "请介绍秒杀系统的设计",
		now:      time.Now(),
	})

	if total != 2 {
		t.Errorf("totalMatches = %d, want 2", total)
	}
	if len(matches) != 1 {
		t.Fatalf("matches = %d, want 1 (threshold filter)", len(matches))
	}
	if matches[0].InterviewID != "a" {
		t.Errorf("wrong match survived the filter: %s", matches[0].InterviewID)
	}
}

func TestRankRecordsFallbackTopFive(t *testing.T) {
	// seven candidates, all weight 0: the threshold filter empties, so the
	// top five stand in to keep the result non-empty
	var records []Record
	for i := 0; i < 7; i++ {
		records = append(records, Record{
			QA:          model.QAItem{ID: i, Question: "xyzw"},
			InterviewID: "hist",
			Category:    CategoryBehavior,
		})
	}

	matches, total := rankRecords(rankParams{
		records:  records,
		category: CategorySystemDesign,
		question: "完全不同的问题内容",
		now:      time.Now(),
	})

	if total != 7 {
		t.Errorf("totalMatches = %d, want 7", total)
	}
	if len(matches) != 5 {
		t.Errorf("fallback matches = %d, want 5", len(matches))
	}
}

func TestRankRecordsEmpty(t *testing.T) {
	matches, total := rankRecords(rankParams{
		records:  nil,
		category: CategoryOther,
		question: "任何问题",
		now:      time.Now(),
	})
	if matches != nil || total != 0 {
		t.Errorf("empty corpus: matches=%v total=%d, want nil/0", matches, total)
	}
}

func TestRankRecordsScoreBonus(t *testing.T) {
	now := time.Now()
	cur := 84.0
	near := 80.0
	far := 30.0

	records := []Record{
		{QA: model.QAItem{ID: 1, Question: "如何设计秒杀系统", Score: &near}, InterviewID: "a", Category: CategorySystemDesign},
		{QA: model.QAItem{ID: 2, Question: "如何设计秒杀系统", Score: &far}, InterviewID: "b", Category: CategorySystemDesign},
	}

	matches, _ := rankRecords(rankParams{
		records:     records,
		category:    CategorySystemDesign,
		question:    "如何设计秒杀系统",
		score:       &cur,
		interviewID: "cur",
		now:         now,
	})

	if len(matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(matches))
	}
	// identical text and category on both: the score-proximity bonus must
	// put the 80-scored record first
	if matches[0].QA.ID != 1 {
		t.Errorf("closer score should rank first, got record %d", matches[0].QA.ID)
	}
}
