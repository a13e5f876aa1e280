package driven

import (
	"context"

	"github.com/folio-labs/pdfmeta-cli/internal/core/domain"
)

// DocumentReader reads facts and text out of PDF files.
// Implementations must release the underlying file handle before
// returning, on success and error paths alike.
type DocumentReader interface {
	// Properties collects the deterministic file properties: page
	// count, size on disk, specification version and the timestamps
	// from the document information dictionary.
	Properties(ctx context.Context, path string) (domain.FileProperties, error)

	// Text extracts plain text in page order under the given limits.
	// Pages that yield no text are skipped. Scanned or otherwise
	// text-free documents produce "" with a nil error.
	Text(ctx context.Context, path string, limits TextLimits) (string, error)
}

// TextLimits bounds text extraction.
type TextLimits struct {
	// MaxPages bounds how many pages are visited.
	// Non-positive means the adapter default.
	MaxPages int

	// MaxChars bounds the returned text length in bytes, page
	// separators included. Non-positive means the adapter default.
	MaxChars int
}
