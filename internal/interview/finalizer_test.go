package interview

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"interviewedge/internal/models"
	"interviewedge/internal/repositories"
)

func TestFinalScore(t *testing.T) {
	tests := []struct {
		name      string
		questions []models.Question
		want      float64
	}{
		{"no questions", nil, 0},
		{"nothing answered", []models.Question{{Text: "q1"}, {Text: "q2"}}, 0},
		{
			"unanswered excluded",
			[]models.Question{
				{Text: "q1", Answer: "a", Score: 8},
				{Text: "q2"},
			},
			8,
		},
		{
			"mean of answered",
			[]models.Question{
				{Text: "q1", Answer: "a", Score: 8},
				{Text: "q2", Answer: "b", Score: 6},
			},
			7.0,
		},
		{
			"rounded to one decimal",
			[]models.Question{
				{Text: "q1", Answer: "a", Score: 8},
				{Text: "q2", Answer: "b", Score: 7},
				{Text: "q3", Answer: "c", Score: 7},
			},
			7.3,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FinalScore(tc.questions); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFinishSuccess(t *testing.T) {
	owner := primitive.NewObjectID()
	session := liveSession(owner)
	session.Questions[0].Answer = "a"
	session.Questions[0].Score = 8
	session.Questions[1].Answer = "b"
	session.Questions[1].Score = 6

	finalized := false
	f := NewFinisher(&fakeInterviewRepo{
		getByIDFn: func(ctx context.Context, id string) (*models.Interview, error) { return session, nil },
		finalizeFn: func(ctx context.Context, id string, score float64) (*models.Interview, error) {
			if score != 7.0 {
				t.Fatalf("expected final score 7.0, got %v", score)
			}
			finalized = true
			done := *session
			done.Score = score
			done.Status = models.StatusCompleted
			return &done, nil
		},
	})

	done, err := f.Finish(context.Background(), owner.Hex(), session.ID.Hex())
	if err != nil {
		t.Fatalf("Finish returned error: %v", err)
	}
	if !finalized {
		t.Fatal("expected repository Finalize to be called")
	}
	if done.Status != models.StatusCompleted {
		t.Fatalf("expected completed session, got %s", done.Status)
	}
}

func TestFinishGuards(t *testing.T) {
	owner := primitive.NewObjectID()

	t.Run("foreign session", func(t *testing.T) {
		session := liveSession(owner)
		f := NewFinisher(&fakeInterviewRepo{
			getByIDFn: func(ctx context.Context, id string) (*models.Interview, error) { return session, nil },
		})

		_, err := f.Finish(context.Background(), primitive.NewObjectID().Hex(), session.ID.Hex())
		if !errors.Is(err, repositories.ErrInterviewNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		session := liveSession(owner)
		session.Status = models.StatusCompleted
		f := NewFinisher(&fakeInterviewRepo{
			getByIDFn: func(ctx context.Context, id string) (*models.Interview, error) { return session, nil },
		})

		_, err := f.Finish(context.Background(), owner.Hex(), session.ID.Hex())
		if !errors.Is(err, repositories.ErrInterviewCompleted) {
			t.Fatalf("expected ErrInterviewCompleted, got %v", err)
		}
	})
}
