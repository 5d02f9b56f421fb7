package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interviewedge/internal/models"
	"interviewedge/internal/repositories"
)

// InterviewRepo wraps the interviews collection
type InterviewRepo struct{ col *mongo.Collection }

// NewInterviewRepo connects to Mongo and ensures an index on user_id
func NewInterviewRepo(c *Client) (*InterviewRepo, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}

	col := db.Collection("interviews")
	r := &InterviewRepo{col: col}

	_, _ = r.col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})

	return r, nil
}

// Create inserts a new interview session
func (r *InterviewRepo) Create(ctx context.Context, interview *models.Interview) (*models.Interview, error) {
	now := time.Now().UTC()
	interview.CreatedAt, interview.UpdatedAt = now, now
	if interview.Status == "" {
		interview.Status = models.StatusIncomplete
	}

	res, err := r.col.InsertOne(ctx, interview)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		interview.ID = oid
	}
	return interview, nil
}

func (r *InterviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrInterviewNotFound
	}

	var interview models.Interview
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&interview); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

// SetAnswer writes the answered/scored question at the given index. The
// status guard in the filter keeps completed sessions immutable.
func (r *InterviewRepo) SetAnswer(ctx context.Context, id string, index int, question models.Question) (*models.Interview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrInterviewNotFound
	}

	filter := bson.M{"_id": oid, "status": models.StatusIncomplete}
	update := bson.M{"$set": bson.M{
		fmt.Sprintf("questions.%d", index): question,
		"updated_at":                       time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Interview
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.classifyMiss(ctx, id)
		}
		return nil, err
	}
	return &updated, nil
}

// Finalize marks the session completed and stores the final score. Only an
// incomplete session matches, so finalizing twice fails.
func (r *InterviewRepo) Finalize(ctx context.Context, id string, score float64) (*models.Interview, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrInterviewNotFound
	}

	filter := bson.M{"_id": oid, "status": models.StatusIncomplete}
	update := bson.M{"$set": bson.M{
		"status":     models.StatusCompleted,
		"score":      score,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Interview
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.classifyMiss(ctx, id)
		}
		return nil, err
	}
	return &updated, nil
}

// classifyMiss tells a missing session apart from a completed one after a
// guarded update matched nothing.
func (r *InterviewRepo) classifyMiss(ctx context.Context, id string) error {
	interview, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if interview.Status == models.StatusCompleted {
		return repositories.ErrInterviewCompleted
	}
	return repositories.ErrInterviewNotFound
}
