package driving

import "github.com/folio-labs/pdfmeta-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, falling back to
	// defaults for keys that were never set.
	Get() (*domain.Settings, error)

	// Save persists application settings.
	Save(settings *domain.Settings) error

	// SetKey updates a single setting addressed by its dot key,
	// e.g. "llm.model". Unknown keys and malformed values are rejected.
	SetKey(key, value string) error

	// Keys returns the known setting keys in display order.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// ValidateLLMConfig validates the current LLM configuration by
	// pinging the service.
	ValidateLLMConfig() error

	// Path returns the configuration file path.
	Path() string
}
