package service

import (
	"context"
	"testing"
	"time"

	"sensai_backend/internal/model"
	"sensai_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResumeStore mimics the mongo repository's upsert contract: every
// field is replaced except created_at, which only applies on first insert.
type fakeResumeStore struct {
	profiles map[string]*model.ResumeProfile
	err      error
}

func newFakeResumeStore() *fakeResumeStore {
	return &fakeResumeStore{profiles: make(map[string]*model.ResumeProfile)}
}

func (f *fakeResumeStore) Upsert(_ context.Context, profile *model.ResumeProfile) error {
	if f.err != nil {
		return f.err
	}
	stored := *profile
	if existing, ok := f.profiles[profile.UserID]; ok {
		stored.CreatedAt = existing.CreatedAt
	}
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakeResumeStore) FindByUser(_ context.Context, userID string) (*model.ResumeProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}

func TestResumeService_UpsertProfile_NormalizesEmptyLists(t *testing.T) {
	store := newFakeResumeStore()
	svc := NewResumeService(store)

	err := svc.UpsertProfile(context.Background(), &model.ResumeProfile{UserID: "u1"})
	require.NoError(t, err)

	stored := store.profiles["u1"]
	require.NotNil(t, stored)
	assert.Equal(t, []string{}, stored.Skills)
	assert.Equal(t, []model.ResumeExperience{}, stored.Experiences)
	assert.Equal(t, []model.ResumeEducation{}, stored.Education)
	assert.Equal(t, []model.ResumeProject{}, stored.Projects)
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestResumeService_UpsertProfile_SecondWriteReplaces(t *testing.T) {
	store := newFakeResumeStore()
	svc := NewResumeService(store)

	first := &model.ResumeProfile{
		UserID:  "u1",
		Summary: "backend engineer",
		Skills:  []string{"Go", "SQL"},
		Experiences: []model.ResumeExperience{
			{Company: "Acme", Role: "Engineer", Start: "2020", End: "2023"},
		},
	}
	require.NoError(t, svc.UpsertProfile(context.Background(), first))
	firstStored := *store.profiles["u1"]

	// The second payload omits summary and experiences; they must revert to
	// their defaults, not keep the first write's values.
	second := &model.ResumeProfile{
		UserID: "u1",
		Skills: []string{"Rust"},
	}
	require.NoError(t, svc.UpsertProfile(context.Background(), second))

	require.Len(t, store.profiles, 1)
	stored := store.profiles["u1"]
	assert.Equal(t, "", stored.Summary)
	assert.Equal(t, []string{"Rust"}, stored.Skills)
	assert.Empty(t, stored.Experiences)
	assert.Equal(t, firstStored.CreatedAt, stored.CreatedAt)
	assert.False(t, stored.UpdatedAt.Before(firstStored.UpdatedAt))
}

func TestResumeService_UpsertProfile_TimestampsUTC(t *testing.T) {
	store := newFakeResumeStore()
	svc := NewResumeService(store)

	before := time.Now().UTC()
	require.NoError(t, svc.UpsertProfile(context.Background(), &model.ResumeProfile{UserID: "u1"}))

	stored := store.profiles["u1"]
	assert.False(t, stored.UpdatedAt.Before(before))
	assert.Equal(t, time.UTC, stored.UpdatedAt.Location())
}

func TestResumeService_GetProfile_MissingIsNilNotError(t *testing.T) {
	svc := NewResumeService(newFakeResumeStore())

	profile, err := svc.GetProfile(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestResumeService_UpsertProfile_PropagatesStoreError(t *testing.T) {
	store := newFakeResumeStore()
	store.err = util.ErrStoreUnavailable
	svc := NewResumeService(store)

	err := svc.UpsertProfile(context.Background(), &model.ResumeProfile{UserID: "u1"})
	assert.ErrorIs(t, err, util.ErrStoreUnavailable)
}
