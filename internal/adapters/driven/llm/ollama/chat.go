// Package ollama provides a chat completion adapter using Ollama.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/folio-labs/pdfmeta-cli/internal/core/domain"
	"github.com/folio-labs/pdfmeta-cli/internal/core/ports/driven"
)

// Ensure ChatService implements the interface.
var _ driven.ChatService = (*ChatService)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"
	DefaultTimeout = 120 * time.Second
)

// LLMConfig holds configuration for the Ollama chat service.
type LLMConfig struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the chat model to use (default: llama3.2).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// ChatService provides chat completions using Ollama.
type ChatService struct {
	client  *http.Client
	baseURL string
	model   string
}

// chatRequest is the Ollama /api/chat request format. Format carries an
// optional JSON schema that constrains decoding of the reply.
type chatRequest struct {
	Model    string          `json:"model"`
	Messages []chatMessage   `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   json.RawMessage `json:"format,omitempty"`
	Options  *options        `json:"options,omitempty"`
}

// options holds generation parameters.
type options struct {
	Temperature float64 `json:"temperature,omitempty"`
}

// chatMessage is the Ollama chat message format.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the Ollama /api/chat response format. Durations are
// reported in nanoseconds.
type chatResponse struct {
	Message            chatMessage `json:"message"`
	Done               bool        `json:"done"`
	TotalDuration      int64       `json:"total_duration"`
	PromptEvalCount    int         `json:"prompt_eval_count"`
	PromptEvalDuration int64       `json:"prompt_eval_duration"`
	EvalCount          int         `json:"eval_count"`
	EvalDuration       int64       `json:"eval_duration"`
}

// NewChatService creates a new Ollama chat service.
func NewChatService(cfg LLMConfig) *ChatService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &ChatService{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}
}

// Chat sends a conversation to Ollama and returns the reply together
// with the token and timing counters the server reports.
func (s *ChatService) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (*driven.ChatResult, error) {
	model := s.model
	if opts.Model != "" {
		model = opts.Model
	}

	chatMessages := make([]chatMessage, len(messages))
	for i, msg := range messages {
		chatMessages[i] = chatMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	reqBody := chatRequest{
		Model:    model,
		Messages: chatMessages,
		Stream:   false,
		Format:   opts.Format,
	}
	if opts.Temperature > 0 {
		reqBody.Options = &options{
			Temperature: opts.Temperature,
		}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.baseURL+"/api/chat",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Correlates client requests with entries in the Ollama server log.
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, s.classify(model, 0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			body = []byte("failed to read response")
		}
		return nil, s.classify(model, resp.StatusCode, string(body), nil)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &driven.ChatResult{
		Content:            chatResp.Message.Content,
		PromptTokens:       chatResp.PromptEvalCount,
		OutputTokens:       chatResp.EvalCount,
		PromptEvalDuration: time.Duration(chatResp.PromptEvalDuration),
		EvalDuration:       time.Duration(chatResp.EvalDuration),
		TotalDuration:      time.Duration(chatResp.TotalDuration),
	}, nil
}

// classify maps a transport error or non-200 reply onto the domain error
// taxonomy, attaching the remediation command for the two common cases:
// daemon not running and model not pulled. Context cancellation passes
// through untouched so callers can tell an interrupt from an outage.
// An empty model disables the model-not-found interpretation.
func (s *ChatService) classify(model string, status int, body string, err error) error {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: cannot connect to Ollama at %s. Run: ollama serve",
			domain.ErrServiceUnavailable, s.baseURL)
	}

	if model != "" && (status == http.StatusNotFound || strings.Contains(strings.ToLower(body), "not found")) {
		return fmt.Errorf("%w: model %q not found. Run: ollama pull %s",
			domain.ErrServiceUnavailable, model, model)
	}

	return fmt.Errorf("%w: ollama error (status %d): %s",
		domain.ErrServiceUnavailable, status, body)
}

// ModelName returns the name of the chat model being used.
func (s *ChatService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by checking the /api/tags endpoint.
// This is a lightweight check that validates connectivity without running inference.
func (s *ChatService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return fmt.Errorf("create ping request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return s.classify("", 0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			body = []byte("failed to read response")
		}
		return s.classify("", resp.StatusCode, string(body), nil)
	}
	return nil
}

// Close releases resources.
func (s *ChatService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
