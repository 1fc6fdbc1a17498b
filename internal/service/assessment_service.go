package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/anbusan19/wealth-empire-sub001/internal/cache"
	"github.com/anbusan19/wealth-empire-sub001/internal/model"
	"github.com/anbusan19/wealth-empire-sub001/internal/repository"
	"github.com/anbusan19/wealth-empire-sub001/internal/scoring"
)

// AssessmentService runs the scoring engine over a finished answer set and
// persists the outcome per user
type AssessmentService struct {
	assessmentRepo repository.AssessmentRepo
	resultCache    cache.ResultCache
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(assessmentRepo repository.AssessmentRepo, resultCache cache.ResultCache) *AssessmentService {
	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		resultCache:    resultCache,
	}
}

// Score computes the compliance result and recommendations, then persists
// the assessment. Persistence failure never withholds the computed result:
// the assessment comes back with saved=false and the error is logged.
func (s *AssessmentService) Score(ctx context.Context, userID string, answers model.AnswerSet, followUps model.FollowUpAnswerSet) (*model.Assessment, bool) {
	assessment := &model.Assessment{
		ID:              uuid.New().String(),
		UserID:          userID,
		Answers:         answers,
		FollowUpAnswers: scoring.MatchedFollowUps(answers, followUps),
		Result:          scoring.Compute(answers, followUps),
		Recommendations: scoring.Recommend(answers),
		CreatedAt:       time.Now(),
	}

	saved := true
	if err := s.assessmentRepo.Insert(ctx, assessment); err != nil {
		log.Printf("failed to persist assessment for %s: %v", userID, err)
		saved = false
	}

	if saved {
		if err := s.resultCache.SetLatest(ctx, userID, assessment); err != nil {
			log.Printf("failed to cache assessment for %s: %v", userID, err)
		}
	}

	return assessment, saved
}

// Latest returns the user's most recent assessment, cache first
func (s *AssessmentService) Latest(ctx context.Context, userID string) (*model.Assessment, error) {
	if cached, err := s.resultCache.GetLatest(ctx, userID); err == nil && cached != nil {
		return cached, nil
	}

	assessment, err := s.assessmentRepo.GetLatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if assessment != nil {
		if err := s.resultCache.SetLatest(ctx, userID, assessment); err != nil {
			log.Printf("failed to cache assessment for %s: %v", userID, err)
		}
	}
	return assessment, nil
}

// History returns the user's assessments, newest first
func (s *AssessmentService) History(ctx context.Context, userID string, limit int) ([]*model.Assessment, error) {
	return s.assessmentRepo.GetByUser(ctx, userID, limit)
}
