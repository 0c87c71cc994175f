package divdex

import (
	"context"
	"fmt"
	"time"

	domdoc "github.com/divdex/divdex/internal/domain/document"
)

// DocumentService manages documents through the low-level API.
type DocumentService struct {
	c *Client
}

// Upsert creates or replaces a single document and rebuilds the index.
// An empty ID gets a generated UUID; the stored ID is returned.
func (s *DocumentService) Upsert(ctx context.Context, doc Document) (string, error) {
	start := time.Now()
	d, err := domdoc.New(doc.ID, doc.Fields)
	if err != nil {
		s.c.obs.observe("document.upsert", start, err)
		return "", fmt.Errorf("upsert: %w", err)
	}
	_, err = s.c.docSvc.Ingest(ctx, []domdoc.Document{d})
	s.c.obs.observe("document.upsert", start, err)
	if err != nil {
		return "", fmt.Errorf("upsert: %w", err)
	}
	return d.ID(), nil
}

// UpsertBatch stores documents in one pipelined round-trip and rebuilds the
// index once. Returns the number of documents ingested.
func (s *DocumentService) UpsertBatch(ctx context.Context, docs []Document) (int, error) {
	start := time.Now()
	batch := make([]domdoc.Document, len(docs))
	for i, doc := range docs {
		d, err := domdoc.New(doc.ID, doc.Fields)
		if err != nil {
			err = fmt.Errorf("document %d: %w", i, err)
			s.c.obs.observe("document.upsert_batch", start, err)
			return 0, err
		}
		batch[i] = d
	}
	n, err := s.c.docSvc.Ingest(ctx, batch)
	s.c.obs.observe("document.upsert_batch", start, err)
	if err != nil {
		return 0, fmt.Errorf("upsert batch: %w", err)
	}
	return n, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (Document, error) {
	start := time.Now()
	d, err := s.c.docSvc.Get(ctx, id)
	s.c.obs.observe("document.get", start, err)
	if err != nil {
		return Document{}, fmt.Errorf("get: %w", err)
	}
	return Document{ID: d.ID(), Fields: d.Fields()}, nil
}

// Delete removes a document by ID and rebuilds the index.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.c.docSvc.Delete(ctx, id)
	s.c.obs.observe("document.delete", start, err)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}
