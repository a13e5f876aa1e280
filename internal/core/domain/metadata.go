package domain

import "time"

// FileProperties holds facts read from the PDF file itself, without any
// model involvement. Optional fields are nil when the document does not
// carry them or they cannot be parsed.
type FileProperties struct {
	// PageCount is the number of pages in the page tree.
	PageCount int `json:"page_count"`

	// FileSize is the size on disk in bytes.
	FileSize int64 `json:"file_size"`

	// PDFVersion is the specification version from the file header,
	// e.g. "PDF 1.7". Nil when the header carries no version digits.
	PDFVersion *string `json:"pdf_version"`

	// CreatedAt is the document creation timestamp from the Info
	// dictionary, parsed from the PDF date format.
	CreatedAt *time.Time `json:"created_at"`

	// ModifiedAt is the last modification timestamp from the Info
	// dictionary.
	ModifiedAt *time.Time `json:"modified_at"`
}

// LLMStats holds token and timing statistics for a single model call.
// Durations are milliseconds and throughput is tokens per second, both
// rounded to two decimals.
type LLMStats struct {
	// Model is the model name the call was made with.
	Model string `json:"model"`

	// PromptTokens is the number of tokens in the evaluated prompt.
	PromptTokens int `json:"prompt_tokens"`

	// OutputTokens is the number of tokens generated.
	OutputTokens int `json:"output_tokens"`

	// TotalTokens is always PromptTokens + OutputTokens.
	TotalTokens int `json:"total_tokens"`

	// PromptEvalDurationMS is the prompt evaluation time.
	PromptEvalDurationMS float64 `json:"prompt_eval_duration_ms"`

	// EvalDurationMS is the generation time.
	EvalDurationMS float64 `json:"eval_duration_ms"`

	// TotalDurationMS is the total wall time reported by the service.
	TotalDurationMS float64 `json:"total_duration_ms"`

	// PromptTokensPerSec is the prompt evaluation throughput.
	// Zero when the corresponding duration is zero.
	PromptTokensPerSec float64 `json:"prompt_tokens_per_sec"`

	// OutputTokensPerSec is the generation throughput.
	// Zero when the corresponding duration is zero.
	OutputTokensPerSec float64 `json:"output_tokens_per_sec"`
}

// LLMMetadata holds the bibliographic fields produced by the model.
// The eight optional fields are nil when the document does not state
// them; absent, null and empty-string model answers all collapse to nil.
type LLMMetadata struct {
	// Title is the document title.
	Title *string `json:"title"`

	// Author is the author line as written, e.g. "John Smith, Jane Doe".
	Author *string `json:"author"`

	// Journal is the publication venue.
	Journal *string `json:"journal"`

	// Volume is the journal volume.
	Volume *string `json:"volume"`

	// Number is the journal issue number.
	Number *string `json:"number"`

	// Pages is the page range as written, e.g. "101-115".
	Pages *string `json:"pages"`

	// Year is the publication year. Kept a string: ranges such as
	// "2023-2024" occur in the wild.
	Year *string `json:"year"`

	// DOI is the digital object identifier.
	DOI *string `json:"doi"`

	// Summary is a short abstract of the document. May be empty when
	// the model ignores the instruction; callers treat that as a
	// data-quality condition, not a failure.
	Summary string `json:"summary"`

	// Keywords are short topic terms. Never nil; empty slice when the
	// model found none.
	Keywords []string `json:"keywords"`

	// Category is a coarse document class, e.g. "Academic".
	// Defaults to "Unknown".
	Category string `json:"category"`

	// Language is the language of the extracted values.
	// Defaults to "Unknown".
	Language string `json:"language"`

	// Stats holds the statistics of the producing call.
	Stats *LLMStats `json:"stats"`
}

// PDFMetadata is the combined extraction result. LLM is nil when model
// extraction was disabled or skipped for lack of text; the JSON shape
// keeps the key with an explicit null so output is uniform.
type PDFMetadata struct {
	// File holds the deterministic file properties.
	File FileProperties `json:"file"`

	// LLM holds the model-extracted bibliographic metadata.
	LLM *LLMMetadata `json:"llm"`
}

// ExtractOptions holds the per-invocation extraction knobs.
type ExtractOptions struct {
	// UseLLM enables the model extraction stage.
	UseLLM bool

	// Model is the model name to request.
	Model string

	// Language forces the output language of the extracted values.
	// Empty means auto-detect from the document.
	Language string

	// MaxPages bounds how many pages contribute text.
	MaxPages int

	// MaxChars bounds the total text length sent to the model.
	MaxChars int
}
