package interview

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"interviewedge/internal/llm"
	"interviewedge/internal/models"
	"interviewedge/internal/prompts"
	"interviewedge/internal/repositories"
	"interviewedge/internal/utils"
)

// Evaluator scores one submitted answer along the feedback/confidence/
// communication/correctness axes.
type Evaluator struct {
	provider   llm.Provider
	prompts    prompts.PromptProvider
	interviews repositories.InterviewRepo
	logger     *zap.Logger
}

func NewEvaluator(provider llm.Provider, promptProvider prompts.PromptProvider, interviews repositories.InterviewRepo, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		provider:   provider,
		prompts:    promptProvider,
		interviews: interviews,
		logger:     logger,
	}
}

type scorePayload struct {
	Feedback      string  `json:"feedback"`
	Score         float64 `json:"score"`
	Confidence    float64 `json:"confidence"`
	Communication float64 `json:"communication"`
	Correctness   float64 `json:"correctness"`
}

func (p *scorePayload) inRange() bool {
	for _, v := range []float64{p.Score, p.Confidence, p.Communication, p.Correctness} {
		if v < models.ScoreMin || v > models.ScoreMax {
			return false
		}
	}
	return true
}

// EvaluationResult carries the updated session and question. ScoringErr is
// set when AI scoring failed: the answer was still recorded with default
// scores, only this question's scoring degraded.
type EvaluationResult struct {
	Interview     *models.Interview
	QuestionIndex int
	Question      models.Question
	ScoringErr    error
}

// SubmitAnswer records and scores an answer. A resubmission simply
// overwrites the previous score; a completed session rejects all writes.
func (e *Evaluator) SubmitAnswer(ctx context.Context, userID string, req *models.SubmitAnswerRequest) (*EvaluationResult, error) {
	session, err := e.interviews.GetByID(ctx, req.InterviewID)
	if err != nil {
		return nil, err
	}
	if session.UserID.Hex() != userID {
		return nil, repositories.ErrInterviewNotFound
	}
	if StepOf(session) == StepReport {
		return nil, repositories.ErrInterviewCompleted
	}
	if req.QuestionIndex >= len(session.Questions) {
		return nil, repositories.ErrQuestionNotFound
	}

	question := session.Questions[req.QuestionIndex]
	question.Answer = req.Answer
	question.Feedback = ""
	question.Score, question.Confidence, question.Communication, question.Correctness = 0, 0, 0, 0

	scoringErr := e.score(ctx, session, &question, req)
	if scoringErr != nil {
		e.logger.Warn("Answer scoring degraded to defaults",
			zap.Error(scoringErr),
			zap.String("interview_id", req.InterviewID),
			zap.Int("question_index", req.QuestionIndex))
	}

	updated, err := e.interviews.SetAnswer(ctx, req.InterviewID, req.QuestionIndex, question)
	if err != nil {
		return nil, err
	}

	return &EvaluationResult{
		Interview:     updated,
		QuestionIndex: req.QuestionIndex,
		Question:      updated.Questions[req.QuestionIndex],
		ScoringErr:    scoringErr,
	}, nil
}

// score fills in feedback and sub-scores on the question, or leaves the
// defaults in place and reports why.
func (e *Evaluator) score(ctx context.Context, session *models.Interview, question *models.Question, req *models.SubmitAnswerRequest) error {
	prompt, err := e.prompts.BuildPrompt("evaluate", "default", map[string]string{
		"Role":       session.Role,
		"Mode":       session.Mode,
		"Difficulty": question.Difficulty,
		"Question":   question.Text,
		"Answer":     req.Answer,
	})
	if err != nil {
		return fmt.Errorf("failed to build evaluate prompt: %w", err)
	}

	reply, err := e.provider.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: prompt},
		{Role: llm.RoleUser, Content: req.Answer},
	}, req.RequestID)
	if err != nil {
		return err
	}

	var payload scorePayload
	if err := json.Unmarshal([]byte(utils.StripFences(reply)), &payload); err != nil {
		return llm.ErrMalformedResponse
	}
	if !payload.inRange() {
		// out-of-range scores are rejected, not clamped
		return llm.ErrMalformedResponse
	}

	question.Feedback = payload.Feedback
	question.Score = payload.Score
	question.Confidence = payload.Confidence
	question.Communication = payload.Communication
	question.Correctness = payload.Correctness
	return nil
}
