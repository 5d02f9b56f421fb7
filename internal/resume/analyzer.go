package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"interviewedge/internal/llm"
	"interviewedge/internal/models"
	"interviewedge/internal/prompts"
	"interviewedge/internal/utils"
)

// Analyzer produces a structured profile from extracted resume text.
type Analyzer struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	logger   *zap.Logger
}

func NewAnalyzer(provider llm.Provider, promptProvider prompts.PromptProvider, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		provider: provider,
		prompts:  promptProvider,
		logger:   logger,
	}
}

type profilePayload struct {
	Role       string   `json:"role"`
	Experience string   `json:"experience"`
	Projects   []string `json:"projects"`
	Skills     []string `json:"skills"`
}

// Analyze sends the resume text to the model and decodes the structured
// reply. Provider failures propagate unchanged.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, requestID string) (*models.ResumeProfile, error) {
	system, err := a.prompts.BuildPrompt("resume", "default", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build resume prompt: %w", err)
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: resumeText},
	}

	reply, err := a.provider.Complete(ctx, messages, requestID)
	if err != nil {
		return nil, err
	}

	var payload profilePayload
	decoder := json.NewDecoder(strings.NewReader(utils.StripFences(reply)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		a.logger.Warn("Resume profile decode failed",
			zap.Error(err),
			zap.String("request_id", requestID))
		return nil, llm.ErrMalformedResponse
	}
	if payload.Role == "" && payload.Experience == "" {
		return nil, llm.ErrMalformedResponse
	}

	if payload.Projects == nil {
		payload.Projects = []string{}
	}
	if payload.Skills == nil {
		payload.Skills = []string{}
	}

	return &models.ResumeProfile{
		Role:       payload.Role,
		Experience: payload.Experience,
		Projects:   payload.Projects,
		Skills:     payload.Skills,
		ResumeText: resumeText,
	}, nil
}
