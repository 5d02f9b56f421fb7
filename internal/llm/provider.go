package llm

import (
	"context"
	"errors"
)

// Message is one role-tagged entry in a completion prompt.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// defines the interface for LLM providers
type Provider interface {
	Complete(ctx context.Context, messages []Message, requestID string) (string, error)
	GetProviderName() string
}

// ErrInvalidPrompt is returned before any network call when the message
// sequence is empty.
var ErrInvalidPrompt = errors.New("prompt message sequence is empty")

// ErrMalformedResponse is returned by callers that requested structured
// output and could not decode the reply. The decode is strict, no partial
// recovery.
var ErrMalformedResponse = errors.New("malformed AI response")

// represents an error from an LLM provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes across providers
const (
	ErrCodeAPIKey          = "invalid_api_key"
	ErrCodeRateLimit       = "rate_limit_exceeded"
	ErrCodeServiceDown     = "service_unavailable"
	ErrCodeInvalidInput    = "invalid_input"
	ErrCodeTimeout         = "timeout"
	ErrCodeEmptyCompletion = "empty_completion"
)

// IsEmptyCompletion reports whether err is a provider error for a blank reply.
func IsEmptyCompletion(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Code == ErrCodeEmptyCompletion
	}
	return false
}
