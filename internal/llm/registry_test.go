package llm

import (
	"context"
	"testing"
)

type stubProvider struct{}

func (s *stubProvider) Complete(ctx context.Context, messages []Message, requestID string) (string, error) {
	return "stub", nil
}

func (s *stubProvider) GetProviderName() string { return "stub" }

func TestRegistry(t *testing.T) {
	RegisterProvider("stub", func() (Provider, error) {
		return &stubProvider{}, nil
	})

	provider, err := NewProvider("stub")
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}
	if provider.GetProviderName() != "stub" {
		t.Fatalf("unexpected provider name: %s", provider.GetProviderName())
	}
}

func TestRegistryUnsupported(t *testing.T) {
	if _, err := NewProvider("does-not-exist"); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestIsEmptyCompletion(t *testing.T) {
	err := &ProviderError{Provider: "stub", Code: ErrCodeEmptyCompletion, Message: "empty"}
	if !IsEmptyCompletion(err) {
		t.Fatal("expected empty completion to be detected")
	}
	other := &ProviderError{Provider: "stub", Code: ErrCodeRateLimit, Message: "slow down"}
	if IsEmptyCompletion(other) {
		t.Fatal("rate limit error must not be treated as empty completion")
	}
	if IsEmptyCompletion(ErrMalformedResponse) {
		t.Fatal("sentinel errors are not provider errors")
	}
}
