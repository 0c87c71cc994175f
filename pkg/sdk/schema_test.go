package divdex

import "testing"

type offer struct {
	ID     string  `divdex:"id"`
	Price  int     `divdex:"price"`
	Seller string  `divdex:"seller"`
	Rating float64 `divdex:"rating"`
	Note   string  // no tag, not indexed
}

func TestParseSchema_OK(t *testing.T) {
	meta, err := parseSchema[offer]()
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	if meta.idIdx != 0 {
		t.Errorf("id index = %d, want 0", meta.idIdx)
	}
	if len(meta.attrFields) != 3 {
		t.Fatalf("attr fields = %d, want 3", len(meta.attrFields))
	}
	if meta.attrFields[0].name != "price" {
		t.Errorf("field[0] = %q, want price", meta.attrFields[0].name)
	}
}

func TestParseSchema_NoID(t *testing.T) {
	type noID struct {
		Name string `divdex:"name"`
	}
	if _, err := parseSchema[noID](); err == nil {
		t.Fatal("expected error for schema without id")
	}
}

func TestParseSchema_DuplicateID(t *testing.T) {
	type dupID struct {
		A string `divdex:"id"`
		B string `divdex:"id"`
	}
	if _, err := parseSchema[dupID](); err == nil {
		t.Fatal("expected error for duplicate id tag")
	}
}

func TestParseSchema_UnknownModifier(t *testing.T) {
	type bad struct {
		ID   string `divdex:"id"`
		Name string `divdex:"name,vector"`
	}
	if _, err := parseSchema[bad](); err == nil {
		t.Fatal("expected error for unknown modifier")
	}
}

func TestParseSchema_NotStruct(t *testing.T) {
	if _, err := parseSchema[int](); err == nil {
		t.Fatal("expected error for non-struct type")
	}
}

func TestSchema_Roundtrip(t *testing.T) {
	meta, err := parseSchema[offer]()
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}

	in := offer{ID: "offer-1", Price: 100, Seller: "acme", Rating: 4.5, Note: "dropped"}
	doc := meta.toDocument(in)

	if doc.ID != "offer-1" {
		t.Errorf("doc id = %q", doc.ID)
	}
	if doc.Fields["price"] != "100" || doc.Fields["seller"] != "acme" {
		t.Errorf("fields = %v", doc.Fields)
	}
	if _, ok := doc.Fields["Note"]; ok {
		t.Error("untagged field leaked into document")
	}

	out, ok := meta.fromDocument(doc).(offer)
	if !ok {
		t.Fatal("fromDocument returned wrong type")
	}
	if out.ID != in.ID || out.Price != in.Price || out.Seller != in.Seller || out.Rating != in.Rating {
		t.Errorf("roundtrip = %+v, want %+v", out, in)
	}
	if out.Note != "" {
		t.Errorf("untagged field = %q, want empty", out.Note)
	}
}

func TestSchema_PointerType(t *testing.T) {
	meta, err := parseSchema[*offer]()
	if err != nil {
		t.Fatalf("parse schema for pointer type: %v", err)
	}

	doc := meta.toDocument(&offer{ID: "offer-2", Price: 7, Seller: "bolt"})
	if doc.ID != "offer-2" || doc.Fields["seller"] != "bolt" {
		t.Errorf("doc = %+v", doc)
	}
}
