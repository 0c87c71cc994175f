package health

import (
	"context"
	"time"

	"github.com/divdex/divdex/internal/index"
)

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// SnapshotProvider hands out the current index snapshot.
type SnapshotProvider interface {
	Snapshot() *index.Index
	RebuiltAt(ctx context.Context) (time.Time, error)
}
