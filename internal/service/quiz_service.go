package service

import (
	"context"
	"math"
	"sort"
	"time"

	"sensai_backend/internal/model"
)

// QuizStore is the slice of the quiz repository the service needs. Tests
// inject an in-memory implementation.
type QuizStore interface {
	Insert(ctx context.Context, result *model.QuizResult) (string, error)
	FindByUser(ctx context.Context, userID string, limit int64) ([]*model.QuizResult, error)
}

type QuizService struct {
	QuizRepo QuizStore
}

func NewQuizService(quizRepo QuizStore) *QuizService {
	return &QuizService{QuizRepo: quizRepo}
}

// SubmitResult stamps both timestamps with the same insert instant and
// appends the result. There is no update path for quiz results.
func (s *QuizService) SubmitResult(ctx context.Context, result *model.QuizResult) (string, error) {
	now := time.Now().UTC()
	result.CreatedAt = now
	result.UpdatedAt = now
	return s.QuizRepo.Insert(ctx, result)
}

// GetStats aggregates the user's whole quiz history. Zero records is a
// well-defined zero state, not an error. There is no cap on the number of
// records scanned.
func (s *QuizService) GetStats(ctx context.Context, userID string) (*model.QuizStats, error) {
	items, err := s.QuizRepo.FindByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	stats := &model.QuizStats{}
	if len(items) == 0 {
		return stats, nil
	}

	scoreSum := 0
	latest := items[0]
	for _, it := range items {
		scoreSum += it.Score
		stats.TotalQuestions += it.TotalQuestions
		// On equal created_at the later record in store order wins.
		if !it.CreatedAt.Before(latest.CreatedAt) {
			latest = it
		}
	}

	// Rounded half-up to two decimals.
	stats.AverageScore = math.Round(float64(scoreSum)/float64(len(items))*100) / 100
	stats.LatestScore = latest.Score
	stats.Count = len(items)
	return stats, nil
}

// GetRecent returns up to limit results, newest first by created_at.
// Records without a created_at sort as the earliest possible instant. The
// list is a snapshot of store state at call time.
func (s *QuizService) GetRecent(ctx context.Context, userID string, limit int64) ([]*model.QuizResult, error) {
	items, err := s.QuizRepo.FindByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if items == nil {
		items = []*model.QuizResult{}
	}
	return items, nil
}
