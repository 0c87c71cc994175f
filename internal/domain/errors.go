package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrInvalidQuery signals a query that failed validation.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrUnknownAttribute signals a query over an attribute the index does not carry.
	ErrUnknownAttribute = errors.New("unknown attribute")
	// ErrIndexNotReady signals that no index snapshot has been built yet.
	ErrIndexNotReady = errors.New("index not ready")
	// ErrBatchTooLarge signals an ingest batch over the configured limit.
	ErrBatchTooLarge = errors.New("batch too large")
)
