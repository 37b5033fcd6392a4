package insight

import (
	"sort"
	"strings"
	"time"
)

const (
	categoryBoost    = 0.35
	scoreBonusMax    = 0.2
	scoreBonusRange  = 40.0
	recencyBonusMax  = 0.2
	weightThreshold  = 0.2
	fallbackTopCount = 5
)

// Similarity is the Jaccard index over character shingles of the two
// strings: symmetric, deterministic, in [0, 1]. Window size is 2, or 1 when
// the cleaned string has 4 runes or fewer, so very short questions still
// produce tokens.
func Similarity(a, b string) float64 {
	setA := shingles(a)
	setB := shingles(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	intersection := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func shingles(text string) map[string]struct{} {
	cleaned := []rune(cleanForShingles(text))
	if len(cleaned) == 0 {
		return nil
	}
	size := 2
	if len(cleaned) <= 4 {
		size = 1
	}
	set := make(map[string]struct{}, len(cleaned))
	for i := 0; i+size <= len(cleaned); i++ {
		set[string(cleaned[i:i+size])] = struct{}{}
	}
	return set
}

func cleanForShingles(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\r' || r == '\n' || isShinglePunct(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func isShinglePunct(r rune) bool {
	switch r {
	case '，', ',', '。', '.', '!', '？', '?', '、', '；', ';', '：',
		'“', '”', '"', '‘', '’', '\'', '（', '）', '(', ')':
		return true
	}
	return false
}

// recencyBonus decays from the 0.2 cap for same-day records toward 0 for
// older ones. Missing or unparseable dates contribute nothing.
func recencyBonus(rawDate string, now time.Time) float64 {
	parsed, ok := parseDate(rawDate)
	if !ok {
		return 0
	}
	diffDays := now.Sub(parsed).Hours() / 24
	if diffDays < 1 {
		diffDays = 1
	}
	bonus := recencyBonusMax / diffDays
	if bonus > recencyBonusMax {
		return recencyBonusMax
	}
	return bonus
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type rankParams struct {
	records     []Record
	category    Category
	question    string
	interviewID string
	qaID        int
	score       *float64
	now         time.Time
}

type weightedRecord struct {
	record Record
	weight float64
}

// rankRecords scores every eligible candidate against the current question
// and returns the relevance-filtered matches plus the eligible-candidate
// count before filtering. The record identical to the input item (same
// interview id and same QA id) is excluded up front. Candidates above the
// weight threshold form the matches set; when none clear it, the top five
// by weight stand in so any non-empty history yields matches.
func rankRecords(p rankParams) (matches []Record, totalMatches int) {
	if len(p.records) == 0 {
		return nil, 0
	}

	baseline := make([]weightedRecord, 0, len(p.records))
	for _, record := range p.records {
		if record.InterviewID == p.interviewID && record.QA.ID == p.qaID {
			continue
		}
		weight := Similarity(p.question, record.QA.Question)
		if record.Category == p.category {
			weight += categoryBoost
		}
		if p.score != nil && record.QA.Score != nil {
			diff := *p.score - *record.QA.Score
			if diff < 0 {
				diff = -diff
			}
			ratio := diff / scoreBonusRange
			if ratio > 1 {
				ratio = 1
			}
			weight += scoreBonusMax * (1 - ratio)
		}
		weight += recencyBonus(record.Date, p.now)
		baseline = append(baseline, weightedRecord{record: record, weight: weight})
	}

	sort.SliceStable(baseline, func(i, j int) bool {
		return baseline[i].weight > baseline[j].weight
	})

	filtered := baseline[:0:0]
	for _, item := range baseline {
		if item.weight > weightThreshold {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == 0 {
		if len(baseline) > fallbackTopCount {
			filtered = baseline[:fallbackTopCount]
		} else {
			filtered = baseline
		}
	}

	matches = make([]Record, len(filtered))
	for i, item := range filtered {
		matches[i] = item.record
	}
	return matches, len(baseline)
}
