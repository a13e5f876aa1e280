// Package pdf provides a document reader adapter using ledongthuc/pdf
// (pure Go, no CGO).
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/folio-labs/pdfmeta-cli/internal/core/domain"
	"github.com/folio-labs/pdfmeta-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// Default extraction limits.
const (
	DefaultMaxPages = 50
	DefaultMaxChars = 50000
)

// pageSeparator joins page texts; its bytes count toward the character cap.
const pageSeparator = "\n\n"

// Reader reads file properties and plain text from PDF documents.
type Reader struct{}

// NewReader creates a new PDF document reader.
func NewReader() *Reader {
	return &Reader{}
}

// Properties collects the deterministic file properties of the PDF at
// path: size, page count, format version and the trailer dates.
func (r *Reader) Properties(ctx context.Context, path string) (domain.FileProperties, error) {
	return withRecovery(func() (domain.FileProperties, error) {
		return r.properties(ctx, path)
	})
}

func (r *Reader) properties(ctx context.Context, path string) (domain.FileProperties, error) {
	if err := ctx.Err(); err != nil {
		return domain.FileProperties{}, err
	}

	f, info, err := openPDF(path)
	if err != nil {
		return domain.FileProperties{}, err
	}
	defer f.Close()

	props := domain.FileProperties{
		FileSize:   info.Size(),
		PDFVersion: sniffVersion(f),
	}

	doc, err := newDocument(f, info.Size())
	if err != nil {
		return domain.FileProperties{}, err
	}

	props.PageCount = doc.NumPage()

	docInfo := doc.Trailer().Key("Info")
	if !docInfo.IsNull() {
		props.CreatedAt = infoDate(docInfo, "CreationDate")
		props.ModifiedAt = infoDate(docInfo, "ModDate")
	}

	return props, nil
}

// Text extracts plain text from the PDF at path, visiting pages in
// document order under the given limits. Unreadable pages are skipped;
// a document without any extractable text yields "" with nil error.
func (r *Reader) Text(ctx context.Context, path string, limits driven.TextLimits) (string, error) {
	return withRecovery(func() (string, error) {
		return r.text(ctx, path, limits)
	})
}

func (r *Reader) text(ctx context.Context, path string, limits driven.TextLimits) (string, error) {
	maxPages := limits.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	maxChars := limits.MaxChars
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	f, info, err := openPDF(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	doc, err := newDocument(f, info.Size())
	if err != nil {
		return "", err
	}

	pages := doc.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if b.Len() >= maxChars {
			break
		}

		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := pageText(page)
		if err != nil || text == "" {
			continue
		}

		if b.Len() > 0 {
			if b.Len()+len(pageSeparator) > maxChars {
				break
			}
			b.WriteString(pageSeparator)
		}

		if room := maxChars - b.Len(); len(text) > room {
			b.WriteString(cut(text, room))
			break
		}
		b.WriteString(text)
	}

	return b.String(), nil
}

// openPDF resolves the path to an open handle. A missing path or a
// non-regular file maps to ErrNotFound.
func openPDF(path string) (*os.File, os.FileInfo, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, info, nil
}

// newDocument parses the document structure, mapping parse failures to
// ErrMalformedDocument.
func newDocument(f *os.File, size int64) (*pdf.Reader, error) {
	doc, err := pdf.NewReader(f, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedDocument, err)
	}
	return doc, nil
}

// sniffVersion reads the format version from the "%PDF-x.y" header
// marker. Unrecognisable headers yield nil rather than an error.
func sniffVersion(f *os.File) *string {
	header := make([]byte, 16)
	n, err := f.ReadAt(header, 0)
	if n == 0 && err != nil {
		return nil
	}

	s := string(header[:n])
	if !strings.HasPrefix(s, "%PDF-") {
		return nil
	}

	digits := strings.TrimPrefix(s, "%PDF-")
	end := 0
	for end < len(digits) && (digits[end] == '.' || (digits[end] >= '0' && digits[end] <= '9')) {
		end++
	}
	if end == 0 {
		return nil
	}

	version := "PDF " + digits[:end]
	return &version
}

// infoDate reads a date entry from the trailer Info dictionary.
// Absent keys and unparseable values yield nil, never an error.
func infoDate(info pdf.Value, key string) *time.Time {
	v := info.Key(key)
	if v.Kind() != pdf.String {
		return nil
	}
	t, ok := domain.ParsePDFDate(v.Text())
	if !ok {
		return nil
	}
	return &t
}

// pageText extracts readable text from a single page.
func pageText(page pdf.Page) (string, error) {
	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// cut truncates s to at most maxBytes without splitting a rune.
func cut(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}

// withRecovery converts parser panics on corrupt input into
// ErrMalformedDocument. ledongthuc/pdf panics on some malformed files
// instead of returning an error.
func withRecovery[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = fmt.Errorf("%w: %v", domain.ErrMalformedDocument, r)
		}
	}()
	return fn()
}
