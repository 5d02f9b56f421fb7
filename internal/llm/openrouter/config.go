package openrouter

import (
	"errors"
	"os"
	"time"
)

// holds OpenRouter-specific configuration
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func NewConfig() (*Config, error) {
	apiKey := os.Getenv("OPEN_ROUTER_API_KEY")
	if apiKey == "" {
		return nil, errors.New("OPEN_ROUTER_API_KEY environment variable is required")
	}

	model := os.Getenv("OPEN_ROUTER_MODEL")
	if model == "" {
		model = "openai/gpt-4o-mini" // default model
	}

	baseURL := os.Getenv("OPEN_ROUTER_BASE_URL")
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}

	timeout := 60 * time.Second
	if v := os.Getenv("OPEN_ROUTER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			timeout = d
		}
	}

	return &Config{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: baseURL,
		Timeout: timeout,
	}, nil
}
