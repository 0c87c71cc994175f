// Package document handles document ingestion and index snapshot rebuilds.
package document

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/divdex/divdex/internal/domain"
	domdoc "github.com/divdex/divdex/internal/domain/document"
	"github.com/divdex/divdex/internal/index"
	"github.com/divdex/divdex/internal/metrics"
)

// Service stores documents and maintains the in-memory index snapshot the
// query side traverses. Snapshots are immutable; a rebuild swaps the whole
// snapshot atomically, so in-flight queries keep reading the old one.
type Service struct {
	repo         Repository
	maxBatchSize int // 0 = unlimited

	mu       sync.RWMutex
	snapshot *index.Index
}

// New creates a document service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// WithMaxBatchSize caps the number of documents accepted per Ingest call.
func (s *Service) WithMaxBatchSize(n int) *Service {
	s.maxBatchSize = n
	return s
}

// Ingest validates nothing itself (documents arrive already validated),
// persists the batch, and rebuilds the index snapshot. Returns the number
// of documents ingested.
func (s *Service) Ingest(ctx context.Context, docs []domdoc.Document) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	if s.maxBatchSize > 0 && len(docs) > s.maxBatchSize {
		return 0, fmt.Errorf("%w: %d documents, limit %d", domain.ErrBatchTooLarge, len(docs), s.maxBatchSize)
	}
	if err := s.repo.UpsertMulti(ctx, docs); err != nil {
		return 0, fmt.Errorf("store documents: %w", err)
	}
	if err := s.Rebuild(ctx); err != nil {
		return 0, fmt.Errorf("rebuild index: %w", err)
	}
	return len(docs), nil
}

// Get returns a stored document by external id.
func (s *Service) Get(ctx context.Context, id string) (domdoc.Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

// Delete removes a document and rebuilds the index snapshot.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if err := s.Rebuild(ctx); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}
	return nil
}

// Rebuild loads every stored document and seals a fresh index snapshot.
// Documents are indexed in external-id order so internal doc ids are
// deterministic across rebuilds.
func (s *Service) Rebuild(ctx context.Context) error {
	docs, err := s.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("load documents: %w", err)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID() < docs[j].ID() })

	b := index.NewBuilder()
	for _, doc := range docs {
		b.AddDocument(doc.ID(), doc.Fields())
	}
	snapshot := b.Build()

	s.mu.Lock()
	s.snapshot = snapshot
	s.mu.Unlock()

	metrics.IndexDocuments.Set(float64(snapshot.NumDocs()))

	if err := s.repo.SetRebuiltAt(ctx, time.Now()); err != nil {
		return fmt.Errorf("record rebuild time: %w", err)
	}
	return nil
}

// RebuiltAt returns when the index snapshot was last rebuilt, zero if never.
func (s *Service) RebuiltAt(ctx context.Context) (time.Time, error) {
	t, err := s.repo.RebuiltAt(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("rebuild time: %w", err)
	}
	return t, nil
}

// Snapshot returns the current index snapshot, nil before the first rebuild.
func (s *Service) Snapshot() *index.Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
