package domain

import "errors"

// Domain errors represent extraction failures the caller can act on.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates the requested file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrMalformedDocument indicates the file could not be parsed as a PDF.
	ErrMalformedDocument = errors.New("malformed PDF document")

	// ErrEmptyText indicates no text was supplied for model analysis.
	// Callers are expected to check for extractable text before invoking
	// the model, so reaching this error means a contract violation.
	ErrEmptyText = errors.New("empty text for LLM analysis")

	// ErrServiceUnavailable indicates the model service could not be
	// reached or the requested model is not installed. The wrapped
	// message carries the remediation hint.
	ErrServiceUnavailable = errors.New("LLM service unavailable")

	// ErrMalformedResponse indicates the model returned output that is
	// not valid JSON or does not fit the metadata schema.
	ErrMalformedResponse = errors.New("malformed LLM response")
)
