package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Message is a single chat message sent to the provider.
type Message struct {
	Role    string
	Content string
}

// Client abstracts LLM providers for resume generation.
type Client interface {
	// Complete sends the conversation and returns the model's JSON output.
	Complete(ctx context.Context, messages []Message) (json.RawMessage, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("LLM provider not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, messages []Message) (json.RawMessage, error) {
	_ = ctx
	_ = messages
	return nil, ErrNotConfigured
}
