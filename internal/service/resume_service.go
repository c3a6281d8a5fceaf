package service

import (
	"context"
	"time"

	"sensai_backend/internal/model"
)

// ResumeStore is the slice of the resume repository the service needs.
type ResumeStore interface {
	Upsert(ctx context.Context, profile *model.ResumeProfile) error
	FindByUser(ctx context.Context, userID string) (*model.ResumeProfile, error)
}

type ResumeService struct {
	ResumeRepo ResumeStore
}

func NewResumeService(resumeRepo ResumeStore) *ResumeService {
	return &ResumeService{ResumeRepo: resumeRepo}
}

// UpsertProfile normalizes optional lists to empty, advances updated_at and
// writes the profile. created_at carries the same instant but the store only
// applies it on first insert, so the original creation time survives
// replacement writes.
func (s *ResumeService) UpsertProfile(ctx context.Context, profile *model.ResumeProfile) error {
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.Experiences == nil {
		profile.Experiences = []model.ResumeExperience{}
	}
	if profile.Education == nil {
		profile.Education = []model.ResumeEducation{}
	}
	if profile.Projects == nil {
		profile.Projects = []model.ResumeProject{}
	}

	now := time.Now().UTC()
	profile.UpdatedAt = now
	profile.CreatedAt = now

	return s.ResumeRepo.Upsert(ctx, profile)
}

// GetProfile returns nil when the user has no resume yet; callers translate
// that into an empty response, not an error.
func (s *ResumeService) GetProfile(ctx context.Context, userID string) (*model.ResumeProfile, error) {
	return s.ResumeRepo.FindByUser(ctx, userID)
}
