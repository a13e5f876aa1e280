package driven

import "github.com/folio-labs/pdfmeta-cli/internal/core/domain"

// LLMConfigValidator validates model service configuration.
// Implementations verify that a configuration is usable by testing
// connectivity to the underlying service.
type LLMConfigValidator interface {
	// ValidateLLM checks that the configured service is reachable.
	// Returns nil when the service answers.
	ValidateLLM(cfg domain.LLMSettings) error
}
