package interview

import (
	"context"
	"math"

	"interviewedge/internal/models"
	"interviewedge/internal/repositories"
)

// FinalScore is the arithmetic mean of answered questions' overall scores,
// rounded to one decimal. Unanswered questions are excluded from the
// average, not counted as zero; with nothing answered the score is 0.
func FinalScore(questions []models.Question) float64 {
	var sum float64
	var answered int
	for _, q := range questions {
		if q.Answer == "" {
			continue
		}
		sum += q.Score
		answered++
	}
	if answered == 0 {
		return 0
	}
	return math.Round(sum/float64(answered)*10) / 10
}

// Finisher closes a session: computes the final score and marks it
// completed. After this no further mutation of the question list succeeds.
type Finisher struct {
	interviews repositories.InterviewRepo
}

func NewFinisher(interviews repositories.InterviewRepo) *Finisher {
	return &Finisher{interviews: interviews}
}

func (f *Finisher) Finish(ctx context.Context, userID, interviewID string) (*models.Interview, error) {
	session, err := f.interviews.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	if session.UserID.Hex() != userID {
		return nil, repositories.ErrInterviewNotFound
	}
	if StepOf(session) == StepReport {
		return nil, repositories.ErrInterviewCompleted
	}

	return f.interviews.Finalize(ctx, interviewID, FinalScore(session.Questions))
}
