package divdex

import (
	"context"
	"testing"

	"github.com/divdex/divdex/internal/domain/query/result"
)

func TestTypedIndex_UpsertAndGet(t *testing.T) {
	doc := newMockDocUC()
	client := newTestClient(doc, nil, nil)

	idx, err := NewIndex[offer](client)
	if err != nil {
		t.Fatalf("new index: %v", err)
	}

	id, err := idx.Upsert(context.Background(), offer{
		ID: "offer-1", Price: 100, Seller: "acme", Rating: 4.5,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if id != "offer-1" {
		t.Errorf("id = %q", id)
	}

	got, err := idx.Get(context.Background(), "offer-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Seller != "acme" || got.Price != 100 {
		t.Errorf("got = %+v", got)
	}
}

func TestTypedIndex_UpsertBatch(t *testing.T) {
	doc := newMockDocUC()
	client := newTestClient(doc, nil, nil)

	idx, err := NewIndex[offer](client)
	if err != nil {
		t.Fatalf("new index: %v", err)
	}

	n, err := idx.UpsertBatch(context.Background(), []offer{
		{ID: "a", Price: 1, Seller: "acme"},
		{ID: "b", Price: 2, Seller: "bolt"},
	})
	if err != nil {
		t.Fatalf("upsert batch: %v", err)
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
}

func TestTypedIndex_InvalidSchema(t *testing.T) {
	type noID struct {
		Name string `divdex:"name"`
	}
	if _, err := NewIndex[noID](newTestClient(nil, nil, nil)); err == nil {
		t.Fatal("expected error for schema without id")
	}
}

func TestSearchBuilder_Do_Hydrates(t *testing.T) {
	doc := newMockDocUC()
	query := &mockQueryUC{
		hits: result.NewHits([]result.Hit{
			result.NewHit("offer-1", "100", "acme"),
		}, 1, false),
	}
	client := newTestClient(doc, query, nil)

	idx, err := NewIndex[offer](client)
	if err != nil {
		t.Fatalf("new index: %v", err)
	}
	if _, err := idx.Upsert(context.Background(), offer{
		ID: "offer-1", Price: 100, Seller: "acme",
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	hits, err := idx.Search().
		OrderBy("price").
		DiverseBy("seller").
		Limit(10).
		Do(context.Background())
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(hits))
	}
	if hits[0].Item.Seller != "acme" || hits[0].Item.Price != 100 {
		t.Errorf("item = %+v", hits[0].Item)
	}
	if hits[0].Value != "100" || hits[0].Group != "acme" {
		t.Errorf("hit = %+v", hits[0])
	}

	if query.gotReq.Attribute() != "price" {
		t.Errorf("request attribute = %q", query.gotReq.Attribute())
	}
	if query.gotReq.Diversity() == nil {
		t.Error("expected diversity on request")
	}
}
