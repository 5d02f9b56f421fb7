package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"interviewedge/internal/llm"
)

// Client wraps the Gemini SDK behind the common provider interface.
type Client struct {
	client *genai.Client
	config *Config
}

func NewClient(config *Config) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client: client,
		config: config,
	}, nil
}

// Complete flattens the role-tagged messages into a single prompt; the SDK
// has no separate system channel on this call path.
func (c *Client) Complete(ctx context.Context, messages []llm.Message, requestID string) (string, error) {
	if len(messages) == 0 {
		return "", llm.ErrInvalidPrompt
	}

	var prompt strings.Builder
	for i, m := range messages {
		if i > 0 {
			prompt.WriteString("\n\n")
		}
		prompt.WriteString(m.Content)
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.config.Model,
		genai.Text(prompt.String()),
		nil,
	)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate completion",
			Err:      err,
		}
	}

	if result == nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeEmptyCompletion,
			Message:  "No response generated",
		}
	}

	content, err := result.Text()
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	if strings.TrimSpace(content) == "" {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeEmptyCompletion,
			Message:  "Empty completion returned",
		}
	}

	return content, nil
}

func (c *Client) GetProviderName() string {
	return "gemini"
}
