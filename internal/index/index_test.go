package index

import (
	"testing"

	"github.com/divdex/divdex/internal/domain/diversity"
)

func buildTestIndex(t *testing.T) *Index {
	t.Helper()
	b := NewBuilder()
	b.AddDocument("d0", map[string]string{"price": "300", "seller": "acme"})
	b.AddDocument("d1", map[string]string{"price": "100", "seller": "acme"})
	b.AddDocument("d2", map[string]string{"price": "200", "seller": "bolt"})
	b.AddDocument("d3", map[string]string{"price": "100", "seller": "bolt"})
	b.AddDocument("d4", map[string]string{"seller": "core"}) // no price
	return b.Build()
}

func TestBuilder_AssignsDenseDocIDs(t *testing.T) {
	b := NewBuilder()
	if got := b.AddDocument("a", map[string]string{"f": "1"}); got != 0 {
		t.Errorf("first doc id = %d, want 0", got)
	}
	if got := b.AddDocument("b", map[string]string{"f": "2"}); got != 1 {
		t.Errorf("second doc id = %d, want 1", got)
	}
	idx := b.Build()
	if idx.NumDocs() != 2 {
		t.Errorf("NumDocs() = %d", idx.NumDocs())
	}
	if idx.ExternalID(0) != "a" || idx.ExternalID(1) != "b" {
		t.Error("external id mapping broken")
	}
}

func TestIndex_DictionarySortedWithAscendingPostings(t *testing.T) {
	idx := buildTestIndex(t)
	attr, ok := idx.Attribute("price")
	if !ok {
		t.Fatal("price attribute missing")
	}
	d := attr.Dictionary()
	if d.Len() != 3 {
		t.Fatalf("dictionary len = %d, want 3", d.Len())
	}
	wantValues := []string{"100", "200", "300"}
	for i, w := range wantValues {
		if d.Value(i) != w {
			t.Errorf("Value(%d) = %q, want %q", i, d.Value(i), w)
		}
	}

	var got []uint32
	d.EachForward(diversity.NewForwardRange(0, d.Len()), func(docID uint32) bool {
		got = append(got, docID)
		return true
	})
	// 100 -> docs 1,3; 200 -> doc 2; 300 -> doc 0
	want := []uint32{1, 3, 2, 0}
	if len(got) != len(want) {
		t.Fatalf("forward walk = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("forward walk[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDictionary_EachReverse(t *testing.T) {
	idx := buildTestIndex(t)
	attr, _ := idx.Attribute("price")
	d := attr.Dictionary()

	var got []uint32
	d.EachReverse(diversity.NewReverseRange(0, d.Len()), func(docID uint32) bool {
		got = append(got, docID)
		return true
	})
	// 300 -> doc 0; 200 -> doc 2; 100 -> docs 1,3 (doc ids ascend within a value)
	want := []uint32{0, 2, 1, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("reverse walk[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDictionary_WalkStopsWhenYieldReturnsFalse(t *testing.T) {
	idx := buildTestIndex(t)
	attr, _ := idx.Attribute("price")
	d := attr.Dictionary()

	calls := 0
	d.EachForward(diversity.NewForwardRange(0, d.Len()), func(uint32) bool {
		calls++
		return calls < 2
	})
	if calls != 2 {
		t.Errorf("yield called %d times after early stop, want 2", calls)
	}
}

func TestDictionary_Bounds(t *testing.T) {
	idx := buildTestIndex(t)
	attr, _ := idx.Attribute("price")
	d := attr.Dictionary()

	tests := []struct {
		name     string
		from, to string
		lo, hi   int
	}{
		{"open", "", "", 0, 3},
		{"from inclusive", "200", "", 1, 3},
		{"to inclusive", "", "200", 0, 2},
		{"closed", "100", "200", 0, 2},
		{"from between values", "150", "", 1, 3},
		{"to between values", "", "250", 0, 2},
		{"above all", "999", "", 3, 3},
		{"below all", "", "050", 0, 0},
		{"inverted resolves empty", "300", "100", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := d.Bounds(tt.from, tt.to)
			if lo != tt.lo || hi != tt.hi {
				t.Errorf("Bounds(%q, %q) = %d, %d; want %d, %d", tt.from, tt.to, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestAttribute_ValueOf(t *testing.T) {
	idx := buildTestIndex(t)
	seller, _ := idx.Attribute("seller")
	if got := seller.ValueOf(2); got != "bolt" {
		t.Errorf("ValueOf(2) = %q, want bolt", got)
	}

	price, _ := idx.Attribute("price")
	// d4 carries no price; the vector is padded.
	if got := price.ValueOf(4); got != "" {
		t.Errorf("ValueOf(4) = %q, want empty", got)
	}
	if got := price.ValueOf(1000); got != "" {
		t.Errorf("ValueOf out of range = %q, want empty", got)
	}
}

func TestIndex_AttributeNames(t *testing.T) {
	idx := buildTestIndex(t)
	names := idx.AttributeNames()
	if len(names) != 2 || names[0] != "price" || names[1] != "seller" {
		t.Errorf("AttributeNames() = %v", names)
	}
	if _, ok := idx.Attribute("color"); ok {
		t.Error("Attribute(color) found")
	}
}
