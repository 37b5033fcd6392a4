package insight

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"interviewlens/internal/model"
)

// FollowupQuery is the payload handed to the external follow-up generator
type FollowupQuery struct {
	Question string
	Answer   string
	Category string
	Topic    string
	Score    *float64
	History  []string
}

// FollowupCandidate is one raw suggestion from the external service
type FollowupCandidate struct {
	Question string
	Reason   string
}

// FollowupSource produces follow-up candidates from an external service.
// Implementations must absorb every failure mode (transport errors, bad
// payloads, timeouts, cancellation) and return nil instead: the engine
// treats nil or empty as "unavailable" and falls back to templates.
type FollowupSource interface {
	RequestFollowups(ctx context.Context, query FollowupQuery) []FollowupCandidate
}

// Request identifies the QA pair under review plus the corpus snapshot.
// InterviewID is the owning interview, used for self-exclusion only.
type Request struct {
	QA          model.QAItem
	InterviewID string
	Corpus      Corpus
}

// Engine computes diagnostic insight for a question/answer pair. It holds no
// mutable state, so a single Engine serves concurrent invocations; the only
// suspension point is the follow-up source call.
type Engine struct {
	followups FollowupSource
	now       func() time.Time
}

// NewEngine creates an engine backed by the given follow-up source.
// A nil source means template-only follow-ups.
func NewEngine(followups FollowupSource) *Engine {
	return &Engine{followups: followups, now: time.Now}
}

// Generate runs the full pipeline: classify, collect, rank, aggregate,
// resolve follow-ups, assemble. It never returns an error: every degraded
// input has a documented fallback and external-service failure is invisible
// to the caller.
func (e *Engine) Generate(ctx context.Context, req Request) *model.DiagnosticInsight {
	records := CollectRecords(req.Corpus)
	category := NormalizeCategory(req.QA.Category, req.QA.Question)
	topic := TopicLabel(req.QA.Question)

	matches, totalMatches := rankRecords(rankParams{
		records:     records,
		category:    category,
		question:    req.QA.Question,
		interviewID: req.InterviewID,
		qaID:        req.QA.ID,
		score:       req.QA.Score,
		now:         e.now(),
	})

	top := matches
	if len(top) > 3 {
		top = top[:3]
	}
	similar := make([]model.HistoricalAnswer, 0, len(top))
	for _, rec := range top {
		similar = append(similar, model.HistoricalAnswer{
			Interview: interviewLabel(rec),
			Date:      dateLabel(rec.Date),
			Question:  rec.QA.Question,
			Answer:    rec.QA.Answer,
			Score:     roundedScore(rec.QA.Score),
		})
	}

	derived := e.resolveFollowups(ctx, req.QA, category, topic, top)

	return &model.DiagnosticInsight{
		CategoryLabel: DisplayLabel(category, req.QA.Category),
		TopicLabel:    topic,
		Historical: model.HistoricalBlock{
			SimilarAnswers:     similar,
			AvgHistoricalScore: averageScore(matches, records, req.QA.Score),
			TotalMatches:       totalMatches,
		},
		Derived: derived,
	}
}

// resolveFollowups tries the external source first and falls through to the
// template library when it yields nothing usable. Never empty for a
// non-empty question.
func (e *Engine) resolveFollowups(ctx context.Context, qa model.QAItem, category Category, topic string, top []Record) []model.DerivedQuestion {
	history := make([]string, 0, len(top))
	for _, rec := range top {
		scoreText := ""
		if rec.QA.Score != nil {
			scoreText = fmt.Sprintf("(%d分)", int(math.Round(*rec.QA.Score)))
		}
		history = append(history, fmt.Sprintf("Q: %s%s\nA: %s", rec.QA.Question, scoreText, rec.QA.Answer))
	}

	if e.followups != nil {
		candidates := e.followups.RequestFollowups(ctx, FollowupQuery{
			Question: qa.Question,
			Answer:   qa.Answer,
			Category: DisplayLabel(category, qa.Category),
			Topic:    topic,
			Score:    qa.Score,
			History:  history,
		})
		if normalized := normalizeCandidates(candidates, category); len(normalized) > 0 {
			return normalized
		}
	}

	return FromTemplates(category, topic)
}

// normalizeCandidates trims the external suggestions, drops the ones with no
// question left, caps at three and fills missing reasons.
func normalizeCandidates(candidates []FollowupCandidate, category Category) []model.DerivedQuestion {
	if len(candidates) == 0 {
		return nil
	}
	fallbackReason := fmt.Sprintf("围绕%s的深入问题，帮助评估你的思考深度。", category.Label())

	out := make([]model.DerivedQuestion, 0, 3)
	for _, c := range candidates {
		question := strings.TrimSpace(c.Question)
		if question == "" {
			continue
		}
		reason := strings.TrimSpace(c.Reason)
		if reason == "" {
			reason = fallbackReason
		}
		out = append(out, model.DerivedQuestion{Question: question, Reason: reason})
		if len(out) == 3 {
			break
		}
	}
	return out
}

// averageScore is the rounded mean over the matches set, else over the full
// collected set, else the current item's own score, else 0.
func averageScore(matches, records []Record, current *float64) int {
	source := matches
	if len(source) == 0 {
		source = records
	}
	sum := 0.0
	count := 0
	for _, rec := range source {
		if rec.QA.Score != nil {
			sum += *rec.QA.Score
			count++
		}
	}
	if count == 0 {
		if current != nil {
			return int(math.Round(*current))
		}
		return 0
	}
	return int(math.Round(sum / float64(count)))
}

func roundedScore(score *float64) *int {
	if score == nil {
		return nil
	}
	rounded := int(math.Round(*score))
	return &rounded
}

func interviewLabel(rec Record) string {
	if rec.Title != "" {
		return rec.Title
	}
	if rec.Company != "" {
		return rec.Company + "面试"
	}
	id := rec.InterviewID
	if len(id) > 6 {
		id = id[:6]
	}
	return "面试 " + id
}

func dateLabel(raw string) string {
	if raw == "" {
		return ""
	}
	if t, ok := parseDate(raw); ok {
		return t.Format("2006-01-02")
	}
	if i := strings.IndexByte(raw, 'T'); i > 0 {
		return raw[:i]
	}
	return raw
}
