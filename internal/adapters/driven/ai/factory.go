// Package ai provides factory functions for creating model service adapters.
package ai

import (
	"context"
	"time"

	"github.com/folio-labs/pdfmeta-cli/internal/adapters/driven/llm/ollama"
	"github.com/folio-labs/pdfmeta-cli/internal/core/domain"
	"github.com/folio-labs/pdfmeta-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// NewChatService creates an Ollama chat service from the given settings.
// Unset fields fall back to the adapter defaults.
func NewChatService(settings domain.LLMSettings) driven.ChatService {
	var timeout time.Duration
	if settings.TimeoutSecs > 0 {
		timeout = time.Duration(settings.TimeoutSecs) * time.Second
	}

	return ollama.NewChatService(ollama.LLMConfig{
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
		Timeout: timeout,
	})
}

// ValidateChatConfig validates a chat configuration by creating a service
// and pinging it. This probes connectivity only; it runs no inference.
func ValidateChatConfig(settings domain.LLMSettings) error {
	svc := NewChatService(settings)
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return svc.Ping(ctx)
}
