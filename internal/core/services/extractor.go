package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/folio-labs/pdfmeta-cli/internal/core/domain"
	"github.com/folio-labs/pdfmeta-cli/internal/core/ports/driven"
	"github.com/folio-labs/pdfmeta-cli/internal/core/ports/driving"
	"github.com/folio-labs/pdfmeta-cli/internal/logger"
)

// Ensure ExtractorService implements the interface.
var _ driving.MetadataExtractor = (*ExtractorService)(nil)

// previewChars bounds how much input text the debug trace shows.
const previewChars = 500

// chatTemperature keeps field extraction stable across runs.
const chatTemperature = 0.3

// ExtractorService orchestrates PDF metadata extraction: deterministic
// file properties first, then the optional model stage.
type ExtractorService struct {
	reader driven.DocumentReader
	chat   driven.ChatService
}

// NewExtractorService creates a new extractor service.
// The chat parameter is optional (can be nil); without it only file
// properties can be produced.
func NewExtractorService(reader driven.DocumentReader, chat driven.ChatService) *ExtractorService {
	return &ExtractorService{
		reader: reader,
		chat:   chat,
	}
}

// Extract collects file properties for the PDF at path and, when the
// options ask for it, bibliographic metadata from the model. A document
// without extractable text still succeeds with file properties only.
func (s *ExtractorService) Extract(
	ctx context.Context, path string, opts domain.ExtractOptions,
) (*domain.PDFMetadata, error) {
	logger.Section("Metadata Extraction")
	logger.Debug("File: %s", path)
	logger.Debug("Options: use_llm=%t model=%q language=%q max_pages=%d max_chars=%d",
		opts.UseLLM, opts.Model, opts.Language, opts.MaxPages, opts.MaxChars)

	props, err := s.reader.Properties(ctx, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("File properties: pages=%d size=%d bytes", props.PageCount, props.FileSize)

	meta := &domain.PDFMetadata{File: props}

	if !opts.UseLLM {
		logger.Debug("Model stage disabled, returning file properties only")
		return meta, nil
	}

	text, err := s.reader.Text(ctx, path, driven.TextLimits{
		MaxPages: opts.MaxPages,
		MaxChars: opts.MaxChars,
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Extracted text: %d bytes", len(text))

	if strings.TrimSpace(text) == "" {
		logger.Info("No extractable text (scanned document?), skipping model stage")
		return meta, nil
	}

	llm, err := s.ExtractFromText(ctx, text, opts)
	if err != nil {
		return nil, err
	}
	meta.LLM = llm

	return meta, nil
}

// ExtractFromText runs the model stage over already-extracted text:
// prompt assembly, the chat call with constrained decoding, statistics
// derivation, and reply interpretation. All-or-nothing: any stage error
// fails the whole stage, never a partial result.
func (s *ExtractorService) ExtractFromText(
	ctx context.Context, text string, opts domain.ExtractOptions,
) (*domain.LLMMetadata, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyText
	}
	if s.chat == nil {
		return nil, fmt.Errorf("%w: no chat service configured", domain.ErrServiceUnavailable)
	}

	model := opts.Model
	if model == "" {
		model = s.chat.ModelName()
	}

	language := opts.Language
	if language == "" {
		language = "auto"
	}

	logger.Section("LLM Extraction")
	logger.Debug("Model: %s", model)
	logger.Debug("Output language: %s", language)
	logger.Debug("Input text length: %d chars", len(text))
	logger.Debug("Input text (first %d chars):\n%s", previewChars, preview(text))

	messages := buildMessages(text, opts.Language)
	logger.Debug("System prompt: %s", messages[0].Content)

	res, err := s.chat.Chat(ctx, messages, driven.ChatOptions{
		Model:       model,
		Temperature: chatTemperature,
		Format:      schemaJSON(),
	})
	if err != nil {
		return nil, err
	}

	stats := buildStats(model, res)
	logger.Debug("Raw model response:\n%s", res.Content)
	logger.Debug("Stats: %d prompt + %d output tokens in %.2f ms",
		stats.PromptTokens, stats.OutputTokens, stats.TotalDurationMS)

	meta, err := interpretPayload(res.Content)
	if err != nil {
		return nil, err
	}
	meta.Stats = stats

	return meta, nil
}

func preview(text string) string {
	if len(text) <= previewChars {
		return text
	}
	return text[:previewChars]
}
