package insight

import (
	"sort"

	"interviewlens/internal/model"
)

// Corpus is the caller-supplied snapshot of historical analysis the engine
// works from. The engine never mutates or caches it.
type Corpus struct {
	Reports    map[string]model.AnalysisReport `json:"reports"`
	Interviews []model.InterviewMeta           `json:"interviews"`
}

// Record is one historical QA item joined with its owning interview's
// attribution and its normalized category. Built fresh on every call.
type Record struct {
	QA          model.QAItem
	InterviewID string
	Title       string
	Company     string
	Date        string
	Category    Category
}

// CollectRecords flattens the corpus into one record per QA item.
// Items with an empty question never reach ranking. Duplicate questions in
// different interviews stay separate records: repetition is a ranking
// signal, not something to collapse. Reports are walked in sorted-id order
// so two calls over the same corpus produce the same record order.
func CollectRecords(corpus Corpus) []Record {
	metaByID := make(map[string]model.InterviewMeta, len(corpus.Interviews))
	for _, meta := range corpus.Interviews {
		if meta.ID != "" {
			metaByID[meta.ID] = meta
		}
	}

	ids := make([]string, 0, len(corpus.Reports))
	for id := range corpus.Reports {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var records []Record
	for _, interviewID := range ids {
		report := corpus.Reports[interviewID]
		meta := metaByID[interviewID]
		for _, qa := range report.QAList {
			if qa.Question == "" {
				continue
			}
			date := meta.Date
			if date == "" {
				date = report.GeneratedAt
			}
			records = append(records, Record{
				QA:          qa,
				InterviewID: interviewID,
				Title:       meta.Title,
				Company:     meta.Company,
				Date:        date,
				Category:    NormalizeCategory(qa.Category, qa.Question),
			})
		}
	}
	return records
}
