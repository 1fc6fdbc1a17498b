package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anbusan19/wealth-empire-sub001/internal/model"
)

// AssessmentRepo handles MongoDB operations for completed health checks
type AssessmentRepo interface {
	Insert(ctx context.Context, assessment *model.Assessment) error
	GetLatestByUser(ctx context.Context, userID string) (*model.Assessment, error)
	GetByUser(ctx context.Context, userID string, limit int) ([]*model.Assessment, error)
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Insert(ctx context.Context, assessment *model.Assessment) error {
	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, assessment)
	return err
}

func (r *assessmentRepo) GetLatestByUser(ctx context.Context, userID string) (*model.Assessment, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var assessment model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepo) GetByUser(ctx context.Context, userID string, limit int) ([]*model.Assessment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []*model.Assessment
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}
