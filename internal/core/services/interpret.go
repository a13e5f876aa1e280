package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/folio-labs/pdfmeta-cli/internal/core/domain"
	"github.com/folio-labs/pdfmeta-cli/internal/core/ports/driven"
)

// keywordList tolerates the two keyword shapes models produce: a JSON
// array, or a single comma-separated string from older model behaviour.
type keywordList []string

// UnmarshalJSON accepts ["a", "b"] as well as "a, b" and normalises the
// latter by splitting on commas and trimming each entry.
func (k *keywordList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*k = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("keywords must be an array of strings or a string")
	}

	parts := strings.Split(joined, ",")
	list = make([]string, 0, len(parts))
	for _, part := range parts {
		list = append(list, strings.TrimSpace(part))
	}
	*k = list
	return nil
}

// metadataPayload is the wire shape of a model reply. It mirrors the
// metadata schema exactly; mapping to domain.LLMMetadata happens after
// validation. Non-pointer defaults cannot distinguish absent keys, so
// every field stays a pointer here.
type metadataPayload struct {
	Title    *string     `json:"title"`
	Author   *string     `json:"author"`
	Journal  *string     `json:"journal"`
	Volume   *string     `json:"volume"`
	Number   *string     `json:"number"`
	Pages    *string     `json:"pages"`
	Year     *string     `json:"year"`
	DOI      *string     `json:"doi"`
	Summary  *string     `json:"summary"`
	Keywords keywordList `json:"keywords"`
	Category *string     `json:"category"`
	Language *string     `json:"language"`
}

// validationSchema relaxes the decoding schema for checking replies:
// keys may be absent (defaults fill them in) and keywords may arrive as
// a comma-separated string.
func validationSchema() map[string]any {
	schema := metadataSchema()
	delete(schema, "required")

	props := schema["properties"].(map[string]any)
	props["keywords"] = map[string]any{
		"anyOf": []any{
			map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			map[string]any{"type": "string"},
		},
	}
	return schema
}

// metadataValidator is compiled once at startup from a static schema.
var metadataValidator = mustCompileSchema(validationSchema())

func mustCompileSchema(schema map[string]any) *jsonschema.Schema {
	raw, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("marshal metadata schema: %v", err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("metadata.json", bytes.NewReader(raw)); err != nil {
		panic(fmt.Sprintf("add metadata schema resource: %v", err))
	}

	compiled, err := compiler.Compile("metadata.json")
	if err != nil {
		panic(fmt.Sprintf("compile metadata schema: %v", err))
	}
	return compiled
}

// interpretPayload turns a raw model reply into domain metadata.
// The reply must be valid JSON and fit the metadata schema. Optional
// bibliographic fields collapse to nil when empty or null; summary
// defaults to "" and category/language to "Unknown" when the key is
// missing entirely.
func interpretPayload(content string) (*domain.LLMMetadata, error) {
	var doc any
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", domain.ErrMalformedResponse, err)
	}

	if err := metadataValidator.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	var payload metadataPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	keywords := payload.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	return &domain.LLMMetadata{
		Title:    optional(payload.Title),
		Author:   optional(payload.Author),
		Journal:  optional(payload.Journal),
		Volume:   optional(payload.Volume),
		Number:   optional(payload.Number),
		Pages:    optional(payload.Pages),
		Year:     optional(payload.Year),
		DOI:      optional(payload.DOI),
		Summary:  valueOr(payload.Summary, ""),
		Keywords: keywords,
		Category: valueOr(payload.Category, "Unknown"),
		Language: valueOr(payload.Language, "Unknown"),
	}, nil
}

// optional collapses null and empty-string answers to an absent field.
func optional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// valueOr returns the default when the key was missing from the reply.
func valueOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// round2 keeps human-facing statistics to two decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func durationMS(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// buildStats derives reporting statistics from the raw service counters.
// Throughput guards against zero durations: a service that omits its
// timing counters reports 0.0 tokens/sec rather than dividing by zero.
func buildStats(model string, res *driven.ChatResult) *domain.LLMStats {
	promptPerSec := 0.0
	if res.PromptEvalDuration > 0 {
		promptPerSec = float64(res.PromptTokens) / res.PromptEvalDuration.Seconds()
	}

	outputPerSec := 0.0
	if res.EvalDuration > 0 {
		outputPerSec = float64(res.OutputTokens) / res.EvalDuration.Seconds()
	}

	return &domain.LLMStats{
		Model:                model,
		PromptTokens:         res.PromptTokens,
		OutputTokens:         res.OutputTokens,
		TotalTokens:          res.PromptTokens + res.OutputTokens,
		PromptEvalDurationMS: round2(durationMS(res.PromptEvalDuration)),
		EvalDurationMS:       round2(durationMS(res.EvalDuration)),
		TotalDurationMS:      round2(durationMS(res.TotalDuration)),
		PromptTokensPerSec:   round2(promptPerSec),
		OutputTokensPerSec:   round2(outputPerSec),
	}
}
