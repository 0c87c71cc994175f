package document

import (
	"context"
	"time"

	domdoc "github.com/divdex/divdex/internal/domain/document"
)

// Repository defines the storage contract for documents.
type Repository interface {
	Upsert(ctx context.Context, doc domdoc.Document) error
	UpsertMulti(ctx context.Context, docs []domdoc.Document) error
	Get(ctx context.Context, id string) (domdoc.Document, error)
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]domdoc.Document, error)
	SetRebuiltAt(ctx context.Context, t time.Time) error
	RebuiltAt(ctx context.Context) (time.Time, error)
}
