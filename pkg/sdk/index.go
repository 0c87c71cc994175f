package divdex

import (
	"context"
	"fmt"
)

// TypedIndex is a generic, schema-first view over a divdex Client.
// Schema is inferred from T's struct tags at construction time.
type TypedIndex[T any] struct {
	client *Client
	meta   *schemaMeta
}

// NewIndex creates a typed index handle. T must be a struct with divdex
// tags. Schema is parsed once and cached.
func NewIndex[T any](client *Client) (*TypedIndex[T], error) {
	meta, err := parseSchema[T]()
	if err != nil {
		return nil, fmt.Errorf("new index: %w", err)
	}
	return &TypedIndex[T]{client: client, meta: meta}, nil
}

// Upsert creates or updates a single item. Returns the stored ID.
func (idx *TypedIndex[T]) Upsert(ctx context.Context, item T) (string, error) {
	return idx.client.Documents().Upsert(ctx, idx.meta.toDocument(item))
}

// UpsertBatch creates or updates items in batch. Returns the number stored.
func (idx *TypedIndex[T]) UpsertBatch(ctx context.Context, items []T) (int, error) {
	docs := make([]Document, len(items))
	for i, item := range items {
		docs[i] = idx.meta.toDocument(item)
	}
	return idx.client.Documents().UpsertBatch(ctx, docs)
}

// Get retrieves a typed item by ID.
func (idx *TypedIndex[T]) Get(ctx context.Context, id string) (T, error) {
	doc, err := idx.client.Documents().Get(ctx, id)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("get: %w", err)
	}
	item, ok := idx.meta.fromDocument(doc).(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("get: type assertion failed")
	}
	return item, nil
}

// Delete removes an item by ID.
func (idx *TypedIndex[T]) Delete(ctx context.Context, id string) error {
	return idx.client.Documents().Delete(ctx, id)
}

// Search returns a fluent typed search builder.
func (idx *TypedIndex[T]) Search() *SearchBuilder[T] {
	return &SearchBuilder[T]{idx: idx}
}

// Hit is a typed search result, hydrated from the document store.
type Hit[T any] struct {
	Item  T
	Value string // ordering attribute value
	Group string // grouping attribute value ("" when diversity is off)
}

// SearchBuilder is a fluent builder for typed diversity-bounded queries.
type SearchBuilder[T any] struct {
	idx *TypedIndex[T]
	qb  QueryBuilder
}

// OrderBy sets the attribute whose dictionary order is traversed.
func (b *SearchBuilder[T]) OrderBy(attribute string) *SearchBuilder[T] {
	b.qb.Attribute(attribute)
	return b
}

// From sets the inclusive lower value bound.
func (b *SearchBuilder[T]) From(v string) *SearchBuilder[T] {
	b.qb.From(v)
	return b
}

// To sets the inclusive upper value bound.
func (b *SearchBuilder[T]) To(v string) *SearchBuilder[T] {
	b.qb.To(v)
	return b
}

// Desc traverses the dictionary in descending order.
func (b *SearchBuilder[T]) Desc() *SearchBuilder[T] {
	b.qb.Desc()
	return b
}

// Limit sets the global cap on returned hits.
func (b *SearchBuilder[T]) Limit(n int) *SearchBuilder[T] {
	b.qb.Limit(n)
	return b
}

// DiverseBy enables diversity on the given grouping attribute.
func (b *SearchBuilder[T]) DiverseBy(attribute string) *SearchBuilder[T] {
	b.qb.DiverseBy(attribute)
	return b
}

// MaxPerGroup caps how many hits one group may contribute.
func (b *SearchBuilder[T]) MaxPerGroup(n int) *SearchBuilder[T] {
	b.qb.MaxPerGroup(n)
	return b
}

// MaxGroups bounds the group-tracking table.
func (b *SearchBuilder[T]) MaxGroups(n int) *SearchBuilder[T] {
	b.qb.MaxGroups(n)
	return b
}

// Strict keeps per-group caps enforced for tracked groups after overflow.
func (b *SearchBuilder[T]) Strict() *SearchBuilder[T] {
	b.qb.Strict()
	return b
}

// Do executes the query and hydrates each hit into T.
func (b *SearchBuilder[T]) Do(ctx context.Context) ([]Hit[T], error) {
	b.qb.c = b.idx.client
	res, err := b.qb.Do(ctx)
	if err != nil {
		return nil, err
	}

	hits := make([]Hit[T], 0, len(res.Hits))
	for _, h := range res.Hits {
		doc, err := b.idx.client.Documents().Get(ctx, h.ID)
		if err != nil {
			return nil, fmt.Errorf("hydrate %q: %w", h.ID, err)
		}
		item, ok := b.idx.meta.fromDocument(doc).(T)
		if !ok {
			continue
		}
		hits = append(hits, Hit[T]{Item: item, Value: h.Value, Group: h.Group})
	}
	return hits, nil
}
