package services

import (
	"encoding/json"
	"fmt"

	"github.com/folio-labs/pdfmeta-cli/internal/core/ports/driven"
)

// System prompts steering the model toward strict bibliographic output.
// The auto variant lets the model mirror the document language; the
// forced variant pins every value to one language.
const (
	systemPromptAuto = `Extract bibliographic metadata from the given document text.
Write all output values in the same language as the document.
Use null for fields not found in the text. The summary must not be empty.`

	systemPromptLang = `Extract bibliographic metadata from the given document text.
Write all output values in %s.
Use null for fields not found in the text. The summary must not be empty.`
)

// exampleDocument is the one-shot exemplar shown to the model before the
// real input: a fabricated paper with every field present.
const exampleDocument = `Deep Learning for Natural Language Processing
John Smith, Jane Doe
Department of Computer Science, MIT
Published in: Journal of AI Research, Vol.15, No.3, pp.101-115, 2023
DOI: 10.1234/jair.2023.001
Abstract: This paper presents a novel approach to NLP using transformer architectures...`

// exampleAnswer returns the exemplar's expected JSON reply. It is built
// from the same payload type the interpreter decodes, so the example
// cannot drift from the parse shape.
func exampleAnswer() string {
	payload := metadataPayload{
		Title:   strPtr("Deep Learning for Natural Language Processing"),
		Author:  strPtr("John Smith, Jane Doe"),
		Journal: strPtr("Journal of AI Research"),
		Volume:  strPtr("15"),
		Number:  strPtr("3"),
		Pages:   strPtr("101-115"),
		Year:    strPtr("2023"),
		DOI:     strPtr("10.1234/jair.2023.001"),
		Summary: strPtr("This paper presents a novel approach to NLP using transformer architectures. " +
			"The authors demonstrate improved performance on multiple benchmarks."),
		Keywords: keywordList{"deep learning", "NLP", "transformer", "natural language processing"},
		Category: strPtr("Academic"),
		Language: strPtr("English"),
	}

	// Static literal, cannot fail to marshal.
	raw, _ := json.Marshal(payload)
	return string(raw)
}

// buildMessages assembles the chat sequence: the instruction, a one-shot
// example exchange, then the document text under analysis.
func buildMessages(text, language string) []driven.ChatMessage {
	system := systemPromptAuto
	if language != "" {
		system = fmt.Sprintf(systemPromptLang, language)
	}

	return []driven.ChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: exampleDocument},
		{Role: "assistant", Content: exampleAnswer()},
		{Role: "user", Content: text},
	}
}

// metadataFields lists the schema property names in canonical order.
var metadataFields = []string{
	"title", "author", "journal", "volume", "number", "pages",
	"year", "doi", "summary", "keywords", "category", "language",
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

// metadataSchema returns the JSON schema sent to the service for
// constrained decoding. All twelve fields are required so the model
// cannot omit keys.
func metadataSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":   nullableString(),
			"author":  nullableString(),
			"journal": nullableString(),
			"volume":  nullableString(),
			"number":  nullableString(),
			"pages":   nullableString(),
			"year":    nullableString(),
			"doi":     nullableString(),
			"summary": map[string]any{"type": "string"},
			"keywords": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"category": map[string]any{"type": "string"},
			"language": map[string]any{"type": "string"},
		},
		"required": metadataFields,
	}
}

// schemaJSON marshals the decoding schema for request embedding.
func schemaJSON() json.RawMessage {
	// Static literal, cannot fail to marshal.
	raw, _ := json.Marshal(metadataSchema())
	return raw
}

func strPtr(s string) *string { return &s }
