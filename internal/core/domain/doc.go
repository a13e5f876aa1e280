// Package domain defines the core business entities for pdfmeta.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FileProperties: Facts read from the PDF file itself
//   - LLMMetadata: Bibliographic fields produced by the language model
//   - LLMStats: Token and timing statistics for one model call
//   - PDFMetadata: The combined extraction result
//   - Settings: Persisted application configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
