package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interviewedge/internal/models"
	"interviewedge/internal/repositories"
)

// UserRepo wraps the users collection
type UserRepo struct{ col *mongo.Collection }

// NewUserRepo connects to Mongo and ensures a unique index on email
func NewUserRepo(c *Client) (*UserRepo, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}

	col := db.Collection("users")
	r := &UserRepo{col: col}

	_, _ = r.col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return r, nil
}

// FindOrCreate upserts the user keyed by email. Signup credits are only
// applied on insert; an existing balance is never reset.
func (r *UserRepo) FindOrCreate(ctx context.Context, name, email string, signupCredits int) (*models.User, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{"name": name, "updated_at": now},
		"$setOnInsert": bson.M{
			"email":      email,
			"credits":    signupCredits,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var user models.User
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrUserNotFound
	}

	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// DecrementCredits is an atomic compare-and-decrement: the filter requires
// the balance to cover the cost, so concurrent calls can never drive it
// negative. Returns the new balance.
func (r *UserRepo) DecrementCredits(ctx context.Context, id string, cost int) (int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, repositories.ErrUserNotFound
	}

	filter := bson.M{"_id": oid, "credits": bson.M{"$gte": cost}}
	update := bson.M{
		"$inc": bson.M{"credits": -cost},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// either the user is gone or the balance is too low
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return 0, getErr
			}
			return 0, repositories.ErrInsufficientCredits
		}
		return 0, err
	}
	return user.Credits, nil
}
