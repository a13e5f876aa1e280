// Package driven provides interfaces for infrastructure adapters (secondary/outbound ports).
package driven

import (
	"context"
	"encoding/json"
	"time"
)

// ChatService provides language model chat for metadata extraction.
// This is an optional service - without it, extraction degrades to file
// properties only.
//
// Implementations may include:
//   - Ollama (local models)
//   - Any local inference server speaking the Ollama chat API
type ChatService interface {
	// Chat sends a message sequence and returns the reply together
	// with the token and timing counters reported by the service.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (*ChatResult, error)

	// ModelName returns the name of the default model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// Model overrides the configured model for this call.
	// Empty uses the service default.
	Model string

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// Format is a JSON schema for constrained decoding. When set, the
	// service must produce output matching the schema.
	Format json.RawMessage
}

// ChatResult is the reply plus the raw counters reported by the service.
// Every counter defaults to zero when the service omits it.
type ChatResult struct {
	// Content is the reply text.
	Content string

	// PromptTokens is the number of prompt tokens evaluated.
	PromptTokens int

	// OutputTokens is the number of tokens generated.
	OutputTokens int

	// PromptEvalDuration is the prompt evaluation time.
	PromptEvalDuration time.Duration

	// EvalDuration is the generation time.
	EvalDuration time.Duration

	// TotalDuration is the total wall time of the call.
	TotalDuration time.Duration
}

