package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"interviewedge/internal/llm"
	"interviewedge/internal/models"
	"interviewedge/internal/prompts"
	"interviewedge/internal/repositories"
	"interviewedge/internal/utils"
)

// template variants keyed by interview mode
var modeVariants = map[string]string{
	"Technical Interview":          "technical",
	"HR / Behavioral":              "hr",
	"System Design":                "system_design",
	"Data Structures & Algorithms": "dsa",
}

const defaultTimeLimit = 120 // seconds

// Generator produces a question set for a session and creates it, spending
// one credit of the requesting user.
type Generator struct {
	provider   llm.Provider
	prompts    prompts.PromptProvider
	users      repositories.UserRepo
	interviews repositories.InterviewRepo
	logger     *zap.Logger
	cost       int
	count      int
}

func NewGenerator(provider llm.Provider, promptProvider prompts.PromptProvider, users repositories.UserRepo, interviews repositories.InterviewRepo, logger *zap.Logger, cost, count int) *Generator {
	return &Generator{
		provider:   provider,
		prompts:    promptProvider,
		users:      users,
		interviews: interviews,
		logger:     logger,
		cost:       cost,
		count:      count,
	}
}

type questionPayload struct {
	Question   string `json:"question"`
	Difficulty string `json:"difficulty"`
	TimeLimit  int    `json:"timeLimit"`
}

// Generate builds the prompt for the chosen mode, decodes the generated
// question set, deducts the credit and creates the session. Returns the new
// session and the caller's remaining balance.
func (g *Generator) Generate(ctx context.Context, user *models.User, req *models.GenerateQuestionsRequest) (*models.Interview, int, error) {
	variant, ok := modeVariants[req.Mode]
	if !ok {
		return nil, 0, &models.ErrorResponse{Code: "invalid_mode", Message: "Unknown interview mode"}
	}

	system, err := g.prompts.BuildPrompt("questions", variant, map[string]string{
		"Role":       req.Role,
		"Experience": req.Experience,
		"Projects":   joinOrNone(req.Projects),
		"Skills":     joinOrNone(req.Skills),
		"Count":      fmt.Sprintf("%d", g.count),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build questions prompt: %w", err)
	}

	userContent := "No resume provided."
	if strings.TrimSpace(req.ResumeText) != "" {
		userContent = "Candidate resume:\n" + req.ResumeText
	}

	reply, err := g.provider.Complete(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: userContent},
	}, req.RequestID)
	if err != nil {
		return nil, 0, err
	}

	var payload []questionPayload
	if err := json.Unmarshal([]byte(utils.StripFences(reply)), &payload); err != nil {
		g.logger.Warn("Question set decode failed",
			zap.Error(err),
			zap.String("request_id", req.RequestID))
		return nil, 0, llm.ErrMalformedResponse
	}
	if len(payload) == 0 {
		return nil, 0, llm.ErrMalformedResponse
	}

	questions := make([]models.Question, 0, len(payload))
	for _, p := range payload {
		if strings.TrimSpace(p.Question) == "" {
			return nil, 0, llm.ErrMalformedResponse
		}
		timeLimit := p.TimeLimit
		if timeLimit <= 0 {
			timeLimit = defaultTimeLimit
		}
		questions = append(questions, models.Question{
			Text:       p.Question,
			Difficulty: p.Difficulty,
			TimeLimit:  timeLimit,
		})
	}

	creditsLeft, err := g.users.DecrementCredits(ctx, user.ID.Hex(), g.cost)
	if err != nil {
		return nil, 0, err
	}

	created, err := g.interviews.Create(ctx, &models.Interview{
		UserID:     user.ID,
		Role:       req.Role,
		Experience: req.Experience,
		Mode:       req.Mode,
		ResumeText: req.ResumeText,
		Questions:  questions,
		Status:     models.StatusIncomplete,
	})
	if err != nil {
		return nil, 0, err
	}

	return created, creditsLeft, nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none listed"
	}
	return strings.Join(items, ", ")
}
