package service

import (
	"context"
	"errors"
	"log"

	"interviewlens/internal/cache"
	"interviewlens/internal/insight"
	"interviewlens/internal/model"
	"interviewlens/internal/repository"
)

var (
	ErrReportNotFound = errors.New("analysis report not found")
	ErrQANotFound     = errors.New("qa item not found")
)

// InsightService loads the user's historical corpus and runs the diagnostic
// insight engine over a single question/answer pair
type InsightService struct {
	interviewRepo repository.InterviewRepo
	reportRepo    repository.ReportRepo
	corpusCache   cache.CorpusCache
	engine        *insight.Engine
}

// NewInsightService creates a new insight service
func NewInsightService(interviewRepo repository.InterviewRepo, reportRepo repository.ReportRepo, corpusCache cache.CorpusCache, engine *insight.Engine) *InsightService {
	return &InsightService{
		interviewRepo: interviewRepo,
		reportRepo:    reportRepo,
		corpusCache:   corpusCache,
		engine:        engine,
	}
}

// QAInsight computes diagnostic insight for one QA item of one interview.
// It fails only when the item cannot be located; the engine itself always
// produces a best-effort insight.
func (s *InsightService) QAInsight(ctx context.Context, userID, interviewID string, qaID int) (*model.DiagnosticInsight, error) {
	corpus, err := s.loadCorpus(ctx, userID)
	if err != nil {
		return nil, err
	}

	report, ok := corpus.Reports[interviewID]
	if !ok {
		return nil, ErrReportNotFound
	}

	var qa *model.QAItem
	for i := range report.QAList {
		if report.QAList[i].ID == qaID {
			qa = &report.QAList[i]
			break
		}
	}
	if qa == nil {
		return nil, ErrQANotFound
	}

	return s.engine.Generate(ctx, insight.Request{
		QA:          *qa,
		InterviewID: interviewID,
		Corpus:      *corpus,
	}), nil
}

// loadCorpus assembles the user's full corpus snapshot, preferring the
// Redis cache over a Mongo rebuild. Cache errors degrade to a rebuild.
func (s *InsightService) loadCorpus(ctx context.Context, userID string) (*insight.Corpus, error) {
	if s.corpusCache != nil {
		cached, err := s.corpusCache.Get(ctx, userID)
		if err != nil {
			log.Printf("corpus cache read failed for %s: %v", userID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	interviews, err := s.interviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(interviews))
	metas := make([]model.InterviewMeta, 0, len(interviews))
	for _, interview := range interviews {
		ids = append(ids, interview.ID)
		metas = append(metas, interview.Meta())
	}

	reports, err := s.reportRepo.GetByInterviews(ctx, ids)
	if err != nil {
		return nil, err
	}

	byInterview := make(map[string]model.AnalysisReport, len(reports))
	for _, report := range reports {
		byInterview[report.InterviewID] = *report
	}

	corpus := &insight.Corpus{
		Reports:    byInterview,
		Interviews: metas,
	}

	if s.corpusCache != nil {
		if err := s.corpusCache.Set(ctx, userID, corpus); err != nil {
			log.Printf("corpus cache write failed for %s: %v", userID, err)
		}
	}
	return corpus, nil
}
