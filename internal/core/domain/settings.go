package domain

const unknownDescription = "Unknown"

// OutputFormat defines how extraction results are rendered.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatText renders a human-readable report.
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON renders the full metadata shape as JSON.
	OutputFormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputFormatText:
		return "Text (human-readable report)"
	case OutputFormatJSON:
		return "JSON (machine-readable, full shape)"
	default:
		return unknownDescription
	}
}

// LLMSettings holds model service configuration.
type LLMSettings struct {
	// Model is the Ollama model name.
	Model string

	// BaseURL is the Ollama API endpoint.
	BaseURL string

	// Language forces the output language of extracted values.
	// Empty means auto-detect from the document.
	Language string

	// TimeoutSecs bounds a single chat call, in seconds.
	TimeoutSecs int
}

// ExtractSettings holds text extraction limits.
type ExtractSettings struct {
	// MaxPages bounds how many pages contribute text.
	MaxPages int

	// MaxChars bounds the total text length sent to the model.
	MaxChars int
}

// OutputSettings holds presentation configuration.
type OutputSettings struct {
	// Format is the default rendering format.
	Format OutputFormat
}

// Settings holds all application settings.
type Settings struct {
	// LLM holds model service settings.
	LLM LLMSettings

	// Extract holds text extraction limits.
	Extract ExtractSettings

	// Output holds presentation settings.
	Output OutputSettings
}

// DefaultSettings returns settings with sensible defaults: a local
// Ollama endpoint and extraction limits that fit common papers.
func DefaultSettings() Settings {
	return Settings{
		LLM: LLMSettings{
			Model:       "llama3.2",
			BaseURL:     "http://localhost:11434",
			Language:    "",
			TimeoutSecs: 120,
		},
		Extract: ExtractSettings{
			MaxPages: 50,
			MaxChars: 50000,
		},
		Output: OutputSettings{
			Format: OutputFormatText,
		},
	}
}
