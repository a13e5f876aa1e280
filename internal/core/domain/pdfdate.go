package domain

import (
	"strings"
	"time"
)

// dateTimeLen is the digit length of a full PDF date-time (yyyymmddHHMMSS).
const dateTimeLen = 14

// pdfDateLayouts are tried in order. Each attempt parses the string
// prefix of the layout's length, so trailing characters never disqualify
// an otherwise valid date.
var pdfDateLayouts = []string{
	"20060102150405",
	"20060102150405-0700",
	"20060102",
}

// ParsePDFDate parses a PDF date string, e.g. "D:20230615120000+08'00'",
// as found in the document information dictionary. Quote characters are
// dropped and "Z" is treated as a zero offset; the offset itself is
// discarded rather than applied, keeping the date portion as written.
// Returns false for empty input and for values matching no known shape.
// It never fails hard: a bad date means an absent timestamp, not an
// unreadable document.
func ParsePDFDate(raw string) (time.Time, bool) {
	s := strings.TrimPrefix(raw, "D:")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "Z", "+0000")

	// Keep only the date portion when a UTC offset suffix is present.
	if parts := strings.Split(s, "+"); len(parts) == 2 {
		s = parts[0]
		if len(s) > dateTimeLen {
			s = s[:dateTimeLen]
		}
	}

	for _, layout := range pdfDateLayouts {
		if len(s) < len(layout) {
			continue
		}
		if t, err := time.Parse(layout, s[:len(layout)]); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
