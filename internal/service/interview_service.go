package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"interviewlens/internal/cache"
	"interviewlens/internal/model"
	"interviewlens/internal/repository"
)

// InterviewService handles interview CRUD operations
type InterviewService struct {
	interviewRepo repository.InterviewRepo
	reportRepo    repository.ReportRepo
	corpusCache   cache.CorpusCache
}

// NewInterviewService creates a new interview service
func NewInterviewService(interviewRepo repository.InterviewRepo, reportRepo repository.ReportRepo, corpusCache cache.CorpusCache) *InterviewService {
	return &InterviewService{
		interviewRepo: interviewRepo,
		reportRepo:    reportRepo,
		corpusCache:   corpusCache,
	}
}

// Create stores a new interview for the user
func (s *InterviewService) Create(ctx context.Context, userID string, interview *model.Interview) (*model.Interview, error) {
	interview.ID = uuid.New().String()
	interview.UserID = userID
	if interview.Status == "" {
		interview.Status = model.StatusPendingUpload
	}
	interview.CreatedAt = time.Now()

	if err := s.interviewRepo.Create(ctx, interview); err != nil {
		return nil, err
	}
	s.invalidateCorpus(ctx, userID)
	return interview, nil
}

// Get retrieves one interview; nil when not found
func (s *InterviewService) Get(ctx context.Context, userID, id string) (*model.Interview, error) {
	return s.interviewRepo.GetByID(ctx, userID, id)
}

// List retrieves all interviews for a user
func (s *InterviewService) List(ctx context.Context, userID string) ([]*model.Interview, error) {
	return s.interviewRepo.ListByUser(ctx, userID)
}

// Update applies a partial update; false when the interview does not exist
func (s *InterviewService) Update(ctx context.Context, userID, id string, update *model.InterviewUpdate) (bool, error) {
	ok, err := s.interviewRepo.Update(ctx, userID, id, update)
	if err != nil {
		return false, err
	}
	if ok {
		s.invalidateCorpus(ctx, userID)
	}
	return ok, nil
}

// Delete removes an interview and its analysis report
func (s *InterviewService) Delete(ctx context.Context, userID, id string) (bool, error) {
	ok, err := s.interviewRepo.Delete(ctx, userID, id)
	if err != nil {
		return false, err
	}
	if ok {
		if err := s.reportRepo.DeleteByInterview(ctx, id); err != nil {
			log.Printf("failed to delete report for interview %s: %v", id, err)
		}
		s.invalidateCorpus(ctx, userID)
	}
	return ok, nil
}

func (s *InterviewService) invalidateCorpus(ctx context.Context, userID string) {
	if s.corpusCache == nil {
		return
	}
	if err := s.corpusCache.Invalidate(ctx, userID); err != nil {
		log.Printf("corpus cache invalidation failed for %s: %v", userID, err)
	}
}
