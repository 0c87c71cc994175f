package query

import "github.com/divdex/divdex/internal/index"

// SnapshotProvider hands out the current index snapshot.
type SnapshotProvider interface {
	Snapshot() *index.Index
}
