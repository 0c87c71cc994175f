// Package document persists documents as Redis hashes, one hash per
// document keyed by external id.
package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/divdex/divdex/internal/db"
	"github.com/divdex/divdex/internal/domain"
	domdoc "github.com/divdex/divdex/internal/domain/document"
)

// store is the consumer interface for documents (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Repo implements usecase/document.Repository.
type Repo struct {
	store     store
	keyPrefix string
}

// New creates a document repository. keyPrefix namespaces all keys
// (e.g. "divdex:").
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix}
}

// Upsert creates or replaces a document.
func (r *Repo) Upsert(ctx context.Context, doc domdoc.Document) error {
	if err := r.store.HSet(ctx, r.docKey(doc.ID()), doc.Fields()); err != nil {
		return fmt.Errorf("hset %s: %w", doc.ID(), err)
	}
	return nil
}

// UpsertMulti stores a batch of documents in one pipelined round-trip.
func (r *Repo) UpsertMulti(ctx context.Context, docs []domdoc.Document) error {
	if len(docs) == 0 {
		return nil
	}
	items := make([]db.HashSetItem, len(docs))
	for i, doc := range docs {
		items[i] = db.HashSetItem{Key: r.docKey(doc.ID()), Fields: doc.Fields()}
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("hset multi: %w", err)
	}
	return nil
}

// Get returns a document by external id.
func (r *Repo) Get(ctx context.Context, id string) (domdoc.Document, error) {
	fields, err := r.store.HGetAll(ctx, r.docKey(id))
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("hgetall %s: %w", id, err)
	}
	// HGETALL yields an empty map for a missing key.
	if len(fields) == 0 {
		return domdoc.Document{}, domain.ErrDocumentNotFound
	}
	return domdoc.Reconstruct(id, fields), nil
}

// Delete removes a document by external id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	exists, err := r.store.Exists(ctx, r.docKey(id))
	if err != nil {
		return fmt.Errorf("exists %s: %w", id, err)
	}
	if !exists {
		return domain.ErrDocumentNotFound
	}
	if err := r.store.Del(ctx, r.docKey(id)); err != nil {
		return fmt.Errorf("del %s: %w", id, err)
	}
	return nil
}

// All returns every stored document. Used to rebuild the index snapshot.
func (r *Repo) All(ctx context.Context) ([]domdoc.Document, error) {
	keys, err := r.store.Scan(ctx, r.docKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan documents: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	docs := make([]domdoc.Document, 0, len(keys))
	for i, fields := range hashes {
		// A key can vanish between SCAN and HGETALL.
		if len(fields) == 0 {
			continue
		}
		docs = append(docs, domdoc.Reconstruct(r.extractID(keys[i]), fields))
	}
	return docs, nil
}

// SetRebuiltAt records when the index snapshot was last rebuilt.
func (r *Repo) SetRebuiltAt(ctx context.Context, t time.Time) error {
	if err := r.store.Set(ctx, r.metaKey(), []byte(t.UTC().Format(time.RFC3339Nano))); err != nil {
		return fmt.Errorf("set rebuilt_at: %w", err)
	}
	return nil
}

// RebuiltAt returns the last recorded rebuild time, zero if never recorded.
func (r *Repo) RebuiltAt(ctx context.Context) (time.Time, error) {
	data, err := r.store.Get(ctx, r.metaKey())
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("get rebuilt_at: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, string(data))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse rebuilt_at: %w", err)
	}
	return t, nil
}

func (r *Repo) metaKey() string {
	return r.keyPrefix + "meta:rebuilt_at"
}

func (r *Repo) docKey(id string) string {
	return r.keyPrefix + "doc:" + id
}

func (r *Repo) extractID(key string) string {
	return strings.TrimPrefix(key, r.keyPrefix+"doc:")
}
