package insight

import (
	"reflect"
	"testing"

	"interviewlens/internal/model"
)

func TestCollectRecords(t *testing.T) {
	corpus := Corpus{
		Reports: map[string]model.AnalysisReport{
			"iv-b": {
				InterviewID: "iv-b",
				GeneratedAt: "2025-05-01T09:00:00Z",
				QAList: []model.QAItem{
					{ID: 1, Question: "介绍一个你主导的项目", Answer: "a1"},
					{ID: 2, Question: "", Answer: "dropped"},
				},
			},
			"iv-a": {
				InterviewID: "iv-a",
				GeneratedAt: "2025-04-01T09:00:00Z",
				QAList: []model.QAItem{
					{ID: 1, Question: "如何设计高可用架构", Answer: "a2"},
				},
			},
		},
		Interviews: []model.InterviewMeta{
			{ID: "iv-a", Title: "一面", Company: "星云科技", Date: "2025-04-02"},
		},
	}

	records := CollectRecords(corpus)

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2 (empty question dropped)", len(records))
	}

	// sorted interview-id order: iv-a first
	if records[0].InterviewID != "iv-a" || records[1].InterviewID != "iv-b" {
		t.Errorf("record order = %s, %s; want iv-a, iv-b", records[0].InterviewID, records[1].InterviewID)
	}

	// meta date preferred over generatedAt
	if records[0].Date != "2025-04-02" {
		t.Errorf("iv-a date = %q, want meta date 2025-04-02", records[0].Date)
	}
	if records[0].Title != "一面" || records[0].Company != "星云科技" {
		t.Errorf("iv-a attribution not carried: %+v", records[0])
	}

	// no meta: falls back to report generatedAt
	if records[1].Date != "2025-05-01T09:00:00Z" {
		t.Errorf("iv-b date = %q, want report generatedAt", records[1].Date)
	}

	// category computed at collection time
	if records[0].Category != CategorySystemDesign {
		t.Errorf("iv-a category = %s, want system_design", records[0].Category)
	}
	if records[1].Category != CategoryProject {
		t.Errorf("iv-b category = %s, want project", records[1].Category)
	}
}

func TestCollectRecordsKeepsDuplicates(t *testing.T) {
	corpus := Corpus{
		Reports: map[string]model.AnalysisReport{
			"iv-a": {QAList: []model.QAItem{{ID: 1, Question: "介绍你的项目"}}},
			"iv-b": {QAList: []model.QAItem{{ID: 1, Question: "介绍你的项目"}}},
		},
	}
	records := CollectRecords(corpus)
	if len(records) != 2 {
		t.Errorf("identical questions across interviews must stay separate, got %d records", len(records))
	}
}

func TestCollectRecordsDeterministicOrder(t *testing.T) {
	corpus := Corpus{
		Reports: map[string]model.AnalysisReport{
			"c": {QAList: []model.QAItem{{ID: 1, Question: "q1"}}},
			"a": {QAList: []model.QAItem{{ID: 1, Question: "q2"}}},
			"b": {QAList: []model.QAItem{{ID: 1, Question: "q3"}}},
		},
	}
	first := CollectRecords(corpus)
	for i := 0; i < 5; i++ {
		if got := CollectRecords(corpus); !reflect.DeepEqual(got, first) {
			t.Fatal("CollectRecords order varies across calls over the same corpus")
		}
	}
}

func TestCollectRecordsEmptyCorpus(t *testing.T) {
	if records := CollectRecords(Corpus{}); len(records) != 0 {
		t.Errorf("empty corpus yielded %d records", len(records))
	}
}
