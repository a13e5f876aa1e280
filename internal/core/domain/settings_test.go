package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestOutputFormat_IsValid tests all valid and invalid output formats
func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		format   OutputFormat
		expected bool
	}{
		{
			name:     "text is valid",
			format:   OutputFormatText,
			expected: true,
		},
		{
			name:     "json is valid",
			format:   OutputFormatJSON,
			expected: true,
		},
		{
			name:     "empty string is invalid",
			format:   OutputFormat(""),
			expected: false,
		},
		{
			name:     "unknown format is invalid",
			format:   OutputFormat("yaml"),
			expected: false,
		},
		{
			name:     "uppercase is invalid",
			format:   OutputFormat("TEXT"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.format.IsValid()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestOutputFormat_String tests string conversion
func TestOutputFormat_String(t *testing.T) {
	assert.Equal(t, "text", OutputFormatText.String())
	assert.Equal(t, "json", OutputFormatJSON.String())
}

// TestOutputFormat_Description tests human-readable descriptions
func TestOutputFormat_Description(t *testing.T) {
	assert.Contains(t, OutputFormatText.Description(), "human-readable")
	assert.Contains(t, OutputFormatJSON.Description(), "JSON")
	assert.Equal(t, unknownDescription, OutputFormat("bogus").Description())
}

// TestDefaultSettings tests the built-in defaults
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "llama3.2", s.LLM.Model)
	assert.Equal(t, "http://localhost:11434", s.LLM.BaseURL)
	assert.Empty(t, s.LLM.Language, "language defaults to auto-detect")
	assert.Equal(t, 120, s.LLM.TimeoutSecs)

	assert.Equal(t, 50, s.Extract.MaxPages)
	assert.Equal(t, 50000, s.Extract.MaxChars)

	assert.Equal(t, OutputFormatText, s.Output.Format)
	assert.True(t, s.Output.Format.IsValid())
}
