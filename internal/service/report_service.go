package service

import (
	"context"
	"errors"
	"log"
	"time"

	"interviewlens/internal/cache"
	"interviewlens/internal/model"
	"interviewlens/internal/repository"
)

var ErrInterviewNotFound = errors.New("interview not found")

// ReportService persists the analysis reports produced by the (external)
// analysis pipeline
type ReportService struct {
	interviewRepo repository.InterviewRepo
	reportRepo    repository.ReportRepo
	corpusCache   cache.CorpusCache
}

// NewReportService creates a new report service
func NewReportService(interviewRepo repository.InterviewRepo, reportRepo repository.ReportRepo, corpusCache cache.CorpusCache) *ReportService {
	return &ReportService{
		interviewRepo: interviewRepo,
		reportRepo:    reportRepo,
		corpusCache:   corpusCache,
	}
}

// Save upserts the analysis report for an interview the user owns
func (s *ReportService) Save(ctx context.Context, userID, interviewID string, report *model.AnalysisReport) error {
	interview, err := s.interviewRepo.GetByID(ctx, userID, interviewID)
	if err != nil {
		return err
	}
	if interview == nil {
		return ErrInterviewNotFound
	}

	report.InterviewID = interviewID
	if report.GeneratedAt == "" {
		report.GeneratedAt = time.Now().Format(time.RFC3339)
	}
	if err := s.reportRepo.Save(ctx, report); err != nil {
		return err
	}

	if s.corpusCache != nil {
		if err := s.corpusCache.Invalidate(ctx, userID); err != nil {
			log.Printf("corpus cache invalidation failed for %s: %v", userID, err)
		}
	}
	return nil
}

// Get retrieves the analysis report for an interview the user owns;
// nil when no report exists yet
func (s *ReportService) Get(ctx context.Context, userID, interviewID string) (*model.AnalysisReport, error) {
	interview, err := s.interviewRepo.GetByID(ctx, userID, interviewID)
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, ErrInterviewNotFound
	}
	return s.reportRepo.GetByInterview(ctx, interviewID)
}
