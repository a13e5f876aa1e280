package ai

import (
	"github.com/folio-labs/pdfmeta-cli/internal/core/domain"
	"github.com/folio-labs/pdfmeta-cli/internal/core/ports/driven"
)

// Ensure ConfigValidator implements the interface.
var _ driven.LLMConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator validates chat service configurations.
type ConfigValidator struct{}

// NewConfigValidator creates a new config validator.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// ValidateLLM validates a chat configuration by pinging the service.
func (v *ConfigValidator) ValidateLLM(config domain.LLMSettings) error {
	return ValidateChatConfig(config)
}
