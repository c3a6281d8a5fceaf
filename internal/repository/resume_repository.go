package repository

import (
	"context"
	"errors"
	"fmt"

	"sensai_backend/internal/model"
	"sensai_backend/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const resumeCollection = "resume"

// ResumeRepository holds the one-document-per-user resume collection,
// keyed by user_id.
type ResumeRepository struct {
	DB *mongo.Database
}

func NewResumeRepository(db *mongo.Database) *ResumeRepository {
	return &ResumeRepository{DB: db}
}

// Upsert replaces the document for profile.UserID, creating it if absent.
// Every field is written except created_at, which only takes effect on the
// initial insert. Concurrent writers race last-write-wins.
func (r *ResumeRepository) Upsert(ctx context.Context, profile *model.ResumeProfile) error {
	if r.DB == nil {
		return util.ErrStoreNotConfigured
	}

	update := bson.M{
		"$set": bson.M{
			"user_id":     profile.UserID,
			"email":       profile.Email,
			"linkedin":    profile.LinkedIn,
			"twitter":     profile.Twitter,
			"summary":     profile.Summary,
			"skills":      profile.Skills,
			"experiences": profile.Experiences,
			"education":   profile.Education,
			"projects":    profile.Projects,
			"updated_at":  profile.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"created_at": profile.CreatedAt,
		},
	}

	_, err := r.DB.Collection(resumeCollection).UpdateOne(
		ctx,
		bson.M{"user_id": profile.UserID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
	}
	return nil
}

// FindByUser returns the stored profile without its storage id, or nil when
// the user has no resume yet. Absence is not an error.
func (r *ResumeRepository) FindByUser(ctx context.Context, userID string) (*model.ResumeProfile, error) {
	if r.DB == nil {
		return nil, util.ErrStoreNotConfigured
	}

	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	var profile model.ResumeProfile
	err := r.DB.Collection(resumeCollection).FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
	}
	return &profile, nil
}
