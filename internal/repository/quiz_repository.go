package repository

import (
	"context"
	"fmt"

	"sensai_backend/internal/model"
	"sensai_backend/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const quizCollection = "quiz"

// QuizRepository appends to and reads the quiz collection. The collection
// has no uniqueness constraint; every insert produces a new document. DB may
// be nil when no store was configured at startup.
type QuizRepository struct {
	DB *mongo.Database
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{DB: db}
}

// Insert appends one result and returns the store-assigned id.
func (r *QuizRepository) Insert(ctx context.Context, result *model.QuizResult) (string, error) {
	if r.DB == nil {
		return "", util.ErrStoreNotConfigured
	}

	res, err := r.DB.Collection(quizCollection).InsertOne(ctx, result)
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// FindByUser returns the user's results with storage ids stripped. A limit
// of 0 reads the whole history.
func (r *QuizRepository) FindByUser(ctx context.Context, userID string, limit int64) ([]*model.QuizResult, error) {
	if r.DB == nil {
		return nil, util.ErrStoreNotConfigured
	}

	opts := options.Find().SetProjection(bson.M{"_id": 0})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.DB.Collection(quizCollection).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var results []*model.QuizResult
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
	}
	return results, nil
}
