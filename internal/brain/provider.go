package brain

import (
	"context"
)

// Provider is the interface for generative-text backends
type Provider interface {
	// Name returns the provider name (e.g., "gemini")
	Name() string

	// Available returns true if the provider is configured and ready
	Available() bool

	// Generate sends a prompt and returns the response
	Generate(ctx context.Context, req Request) (Response, error)
}

// Request is a prompt request to a provider
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
}

// Response is the provider's response
type Response struct {
	Content      string
	Model        string
	FinishReason string
}
