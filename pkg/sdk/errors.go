package divdex

import "github.com/divdex/divdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound         = domain.ErrNotFound
	ErrDocumentNotFound = domain.ErrDocumentNotFound
	ErrInvalidQuery     = domain.ErrInvalidQuery
	ErrUnknownAttribute = domain.ErrUnknownAttribute
	ErrIndexNotReady    = domain.ErrIndexNotReady
)
