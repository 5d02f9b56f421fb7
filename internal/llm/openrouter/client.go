package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"interviewedge/internal/llm"
)

// Client talks to the OpenRouter chat-completions endpoint. One attempt per
// call, no retries; callers decide whether to retry.
type Client struct {
	httpClient *http.Client
	config     *Config
}

func NewClient(config *Config) (*Client, error) {
	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
	}, nil
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []llm.Message `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message llm.Message `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Complete(ctx context.Context, messages []llm.Message, requestID string) (string, error) {
	if len(messages) == 0 {
		return "", llm.ErrInvalidPrompt
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:    c.config.Model,
		Messages: messages,
	})
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to encode request",
			Err:      err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to build request",
			Err:      err,
		}
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		code := llm.ErrCodeServiceDown
		if errors.Is(err, context.DeadlineExceeded) {
			code = llm.ErrCodeTimeout
		}
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     code,
			Message:  "Completion request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", &llm.ProviderError{Provider: "openrouter", Code: llm.ErrCodeAPIKey, Message: "Rejected API key"}
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", &llm.ProviderError{Provider: "openrouter", Code: llm.ErrCodeRateLimit, Message: "Rate limit exceeded"}
	case resp.StatusCode != http.StatusOK:
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Upstream returned status " + resp.Status,
		}
	}

	var result chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to decode response",
			Err:      err,
		}
	}
	if result.Error.Message != "" {
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     llm.ErrCodeServiceDown,
			Message:  result.Error.Message,
		}
	}

	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", &llm.ProviderError{
			Provider: "openrouter",
			Code:     llm.ErrCodeEmptyCompletion,
			Message:  "Empty completion returned",
		}
	}

	return result.Choices[0].Message.Content, nil
}

func (c *Client) GetProviderName() string {
	return "openrouter"
}
