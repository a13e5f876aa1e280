package services

import (
	"fmt"
	"strconv"

	"github.com/folio-labs/pdfmeta-cli/internal/core/domain"
	"github.com/folio-labs/pdfmeta-cli/internal/core/ports/driven"
	"github.com/folio-labs/pdfmeta-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyLLMModel        = "llm.model"
	keyLLMBaseURL      = "llm.base_url"
	keyLLMLanguage     = "llm.language"
	keyLLMTimeoutSecs  = "llm.timeout_secs"
	keyExtractMaxPages = "extract.max_pages"
	keyExtractMaxChars = "extract.max_chars"
	keyOutputFormat    = "output.format"
)

// settingsKeys lists every known key in display order.
var settingsKeys = []string{
	keyLLMModel,
	keyLLMBaseURL,
	keyLLMLanguage,
	keyLLMTimeoutSecs,
	keyExtractMaxPages,
	keyExtractMaxChars,
	keyOutputFormat,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore  driven.ConfigStore
	llmValidator driven.LLMConfigValidator
}

// NewSettingsService creates a new settings service.
// The validator parameter is optional (can be nil); connectivity checks
// then report success without probing.
func NewSettingsService(configStore driven.ConfigStore, llmValidator driven.LLMConfigValidator) *SettingsService {
	return &SettingsService{
		configStore:  configStore,
		llmValidator: llmValidator,
	}
}

// Get retrieves current application settings, falling back to defaults
// for keys that were never set.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		LLM: domain.LLMSettings{
			Model:   s.getString(keyLLMModel, defaults.LLM.Model),
			BaseURL: s.getString(keyLLMBaseURL, defaults.LLM.BaseURL),
			// No default - empty means auto-detect from the document
			Language:    s.configStore.GetString(keyLLMLanguage),
			TimeoutSecs: s.getInt(keyLLMTimeoutSecs, defaults.LLM.TimeoutSecs),
		},
		Extract: domain.ExtractSettings{
			MaxPages: s.getInt(keyExtractMaxPages, defaults.Extract.MaxPages),
			MaxChars: s.getInt(keyExtractMaxChars, defaults.Extract.MaxChars),
		},
		Output: domain.OutputSettings{
			Format: s.getFormat(keyOutputFormat, defaults.Output.Format),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if err := s.configStore.Set(keyLLMBaseURL, settings.LLM.BaseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}
	if err := s.configStore.Set(keyLLMLanguage, settings.LLM.Language); err != nil {
		return fmt.Errorf("save llm language: %w", err)
	}
	if err := s.configStore.Set(keyLLMTimeoutSecs, settings.LLM.TimeoutSecs); err != nil {
		return fmt.Errorf("save llm timeout: %w", err)
	}
	if err := s.configStore.Set(keyExtractMaxPages, settings.Extract.MaxPages); err != nil {
		return fmt.Errorf("save extract max_pages: %w", err)
	}
	if err := s.configStore.Set(keyExtractMaxChars, settings.Extract.MaxChars); err != nil {
		return fmt.Errorf("save extract max_chars: %w", err)
	}
	if err := s.configStore.Set(keyOutputFormat, settings.Output.Format.String()); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}

	return nil
}

// SetKey updates a single setting addressed by its dot key.
// Unknown keys and malformed values are rejected before anything is
// written.
func (s *SettingsService) SetKey(key, value string) error {
	switch key {
	case keyLLMModel, keyLLMBaseURL, keyLLMLanguage:
		return s.configStore.Set(key, value)

	case keyLLMTimeoutSecs, keyExtractMaxPages, keyExtractMaxChars:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", key, value)
		}
		return s.configStore.Set(key, n)

	case keyOutputFormat:
		format := domain.OutputFormat(value)
		if !format.IsValid() {
			return fmt.Errorf("unknown output format %q (valid: %s, %s)",
				value, domain.OutputFormatText, domain.OutputFormatJSON)
		}
		return s.configStore.Set(key, format.String())

	default:
		return fmt.Errorf("unknown setting %q", key)
	}
}

// Keys returns the known setting keys in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingsKeys))
	copy(keys, settingsKeys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// ValidateLLMConfig validates the current LLM configuration by pinging the service.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.llmValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.llmValidator.ValidateLLM(settings.LLM)
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}

func (s *SettingsService) getInt(key string, def int) int {
	if _, ok := s.configStore.Get(key); ok {
		if v := s.configStore.GetInt(key); v > 0 {
			return v
		}
	}
	return def
}

func (s *SettingsService) getFormat(key string, def domain.OutputFormat) domain.OutputFormat {
	if format := domain.OutputFormat(s.configStore.GetString(key)); format.IsValid() {
		return format
	}
	return def
}
