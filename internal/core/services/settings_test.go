package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-labs/pdfmeta-cli/internal/adapters/driven/storage/memory"
	"github.com/folio-labs/pdfmeta-cli/internal/core/domain"
)

// mockLLMValidator implements driven.LLMConfigValidator for testing.
type mockLLMValidator struct {
	validateErr error
	gotConfig   domain.LLMSettings
}

func (m *mockLLMValidator) ValidateLLM(cfg domain.LLMSettings) error {
	m.gotConfig = cfg
	return m.validateErr
}

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)

	assert.Equal(t, "llama3.2", settings.LLM.Model)
	assert.Equal(t, "http://localhost:11434", settings.LLM.BaseURL)
	assert.Empty(t, settings.LLM.Language)
	assert.Equal(t, 120, settings.LLM.TimeoutSecs)
	assert.Equal(t, 50, settings.Extract.MaxPages)
	assert.Equal(t, 50000, settings.Extract.MaxChars)
	assert.Equal(t, domain.OutputFormatText, settings.Output.Format)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("llm.model", "mistral")
	_ = store.Set("llm.language", "German")
	_ = store.Set("llm.timeout_secs", 30)
	_ = store.Set("extract.max_pages", 5)
	_ = store.Set("output.format", "json")

	service := NewSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "mistral", settings.LLM.Model)
	assert.Equal(t, "German", settings.LLM.Language)
	assert.Equal(t, 30, settings.LLM.TimeoutSecs)
	assert.Equal(t, 5, settings.Extract.MaxPages)
	assert.Equal(t, 50000, settings.Extract.MaxChars, "unset key keeps default")
	assert.Equal(t, domain.OutputFormatJSON, settings.Output.Format)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("llm.timeout_secs", -5)
	_ = store.Set("output.format", "yaml")

	service := NewSettingsService(store, nil)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, 120, settings.LLM.TimeoutSecs, "non-positive value falls back to default")
	assert.Equal(t, domain.OutputFormatText, settings.Output.Format, "unknown format falls back to default")
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	settings := &domain.Settings{
		LLM: domain.LLMSettings{
			Model:       "qwen2.5:7b",
			BaseURL:     "http://ollama.local:11434",
			Language:    "English",
			TimeoutSecs: 60,
		},
		Extract: domain.ExtractSettings{
			MaxPages: 20,
			MaxChars: 10000,
		},
		Output: domain.OutputSettings{
			Format: domain.OutputFormatJSON,
		},
	}

	err := service.Save(settings)

	require.NoError(t, err)

	loaded, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestSettingsService_SetKey_Strings(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetKey("llm.model", "mistral"))
	require.NoError(t, service.SetKey("llm.base_url", "http://10.0.0.2:11434"))
	require.NoError(t, service.SetKey("llm.language", "Japanese"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "mistral", settings.LLM.Model)
	assert.Equal(t, "http://10.0.0.2:11434", settings.LLM.BaseURL)
	assert.Equal(t, "Japanese", settings.LLM.Language)
}

func TestSettingsService_SetKey_Integers(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetKey("llm.timeout_secs", "45"))
	require.NoError(t, service.SetKey("extract.max_pages", "3"))
	require.NoError(t, service.SetKey("extract.max_chars", "1000"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 45, settings.LLM.TimeoutSecs)
	assert.Equal(t, 3, settings.Extract.MaxPages)
	assert.Equal(t, 1000, settings.Extract.MaxChars)
}

func TestSettingsService_SetKey_Format(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetKey("output.format", "json"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.OutputFormatJSON, settings.Output.Format)
}

func TestSettingsService_SetKey_InvalidValues(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"timeout not a number", "llm.timeout_secs", "soon"},
		{"timeout zero", "llm.timeout_secs", "0"},
		{"max_pages negative", "extract.max_pages", "-1"},
		{"format unknown", "output.format", "xml"},
		{"unknown key", "llm.flavour", "vanilla"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.SetKey(tt.key, tt.value)
			assert.Error(t, err)
		})
	}

	// Nothing was written.
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(), nil)

	keys := service.Keys()

	assert.Equal(t, []string{
		"llm.model",
		"llm.base_url",
		"llm.language",
		"llm.timeout_secs",
		"extract.max_pages",
		"extract.max_chars",
		"output.format",
	}, keys)

	// Callers get a copy, not the backing slice.
	keys[0] = "mutated"
	assert.Equal(t, "llm.model", service.Keys()[0])
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(), nil)

	defaults := service.GetDefaults()

	assert.Equal(t, domain.DefaultSettings(), defaults)
}

func TestSettingsService_ValidateLLMConfig(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("llm.model", "mistral")
	validator := &mockLLMValidator{}
	service := NewSettingsService(store, validator)

	err := service.ValidateLLMConfig()

	require.NoError(t, err)
	assert.Equal(t, "mistral", validator.gotConfig.Model, "validator sees effective settings")
}

func TestSettingsService_ValidateLLMConfig_Error(t *testing.T) {
	validator := &mockLLMValidator{validateErr: domain.ErrServiceUnavailable}
	service := NewSettingsService(memory.NewConfigStore(), validator)

	err := service.ValidateLLMConfig()

	assert.True(t, errors.Is(err, domain.ErrServiceUnavailable))
}

func TestSettingsService_ValidateLLMConfig_NoValidator(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(), nil)

	assert.NoError(t, service.ValidateLLMConfig())
}

func TestSettingsService_Path(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore(), nil)

	assert.Equal(t, ":memory:", service.Path())
}
