package driving

import (
	"context"

	"github.com/folio-labs/pdfmeta-cli/internal/core/domain"
)

// MetadataExtractor runs PDF metadata extraction.
type MetadataExtractor interface {
	// Extract collects file properties for the PDF at path and, when
	// enabled by the options, bibliographic metadata from the model.
	// File properties alone are returned when the model stage is
	// disabled or the document yields no text.
	Extract(ctx context.Context, path string, opts domain.ExtractOptions) (*domain.PDFMetadata, error)

	// ExtractFromText runs only the model stage over already-extracted
	// text. The text must not be blank.
	ExtractFromText(ctx context.Context, text string, opts domain.ExtractOptions) (*domain.LLMMetadata, error)
}
