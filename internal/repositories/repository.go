package repositories

import (
	"context"
	"errors"

	"interviewedge/internal/models"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInterviewNotFound   = errors.New("interview not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInterviewCompleted  = errors.New("interview already completed")
	ErrNotImplemented      = errors.New("not implemented")
)

// UserRepo is the persistence boundary for users. The credit balance is the
// only shared mutable resource in the system; DecrementCredits must be
// atomic so concurrent generation requests can never drive it negative.
type UserRepo interface {
	FindOrCreate(ctx context.Context, name, email string, signupCredits int) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	DecrementCredits(ctx context.Context, id string, cost int) (int, error)
}

// InterviewRepo persists interview sessions with their embedded questions.
// Writes against a completed session must fail with ErrInterviewCompleted.
type InterviewRepo interface {
	Create(ctx context.Context, interview *models.Interview) (*models.Interview, error)
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	SetAnswer(ctx context.Context, id string, index int, question models.Question) (*models.Interview, error)
	Finalize(ctx context.Context, id string, score float64) (*models.Interview, error)
}
