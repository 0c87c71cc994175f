package request

import (
	"strings"
	"testing"

	"github.com/divdex/divdex/internal/domain/query/direction"
)

func TestNew_Defaults(t *testing.T) {
	r, err := New("price", "", "", "", 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Direction() != direction.Asc {
		t.Errorf("Direction() = %q, want asc", r.Direction())
	}
	if r.MaxHits() != DefaultMaxHits {
		t.Errorf("MaxHits() = %d, want %d", r.MaxHits(), DefaultMaxHits)
	}
	if r.Diversity() != nil {
		t.Error("Diversity() != nil for plain request")
	}
}

func TestNew_ClampsMaxHits(t *testing.T) {
	r, err := New("price", "", "", direction.Desc, MaxHits+500, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.MaxHits() != MaxHits {
		t.Errorf("MaxHits() = %d, want clamp to %d", r.MaxHits(), MaxHits)
	}
	if r.Direction() != direction.Desc {
		t.Errorf("Direction() = %q", r.Direction())
	}
}

func TestNew_MissingAttribute(t *testing.T) {
	_, err := New("", "", "", direction.Asc, 10, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "attribute is required") {
		t.Errorf("error = %q", err)
	}
}

func TestNew_InvalidDirection(t *testing.T) {
	_, err := New("price", "", "", "sideways", 10, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid direction") {
		t.Errorf("error = %q", err)
	}
}

func TestNew_InvertedBounds(t *testing.T) {
	_, err := New("price", "900", "100", direction.Asc, 10, nil)
	if err == nil {
		t.Fatal("expected error for from > to")
	}
	if !strings.Contains(err.Error(), "exceeds") {
		t.Errorf("error = %q", err)
	}
}

func TestNew_OpenBoundsAllowed(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
	}{
		{"both open", "", ""},
		{"from only", "100", ""},
		{"to only", "", "900"},
		{"closed", "100", "900"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New("price", tt.from, tt.to, direction.Asc, 10, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.From() != tt.from || r.To() != tt.to {
				t.Errorf("bounds = %q..%q", r.From(), r.To())
			}
		})
	}
}

func TestNewDiversity_Defaults(t *testing.T) {
	d, err := NewDiversity("seller", 0, 0, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.MaxPerGroup() != DefaultMaxPerGroup {
		t.Errorf("MaxPerGroup() = %d, want %d", d.MaxPerGroup(), DefaultMaxPerGroup)
	}
	if d.MaxGroups() != DefaultMaxGroups {
		t.Errorf("MaxGroups() = %d, want %d", d.MaxGroups(), DefaultMaxGroups)
	}
	if d.Strict() {
		t.Error("Strict() = true")
	}
}

func TestNewDiversity_ClampsMaxGroups(t *testing.T) {
	d, err := NewDiversity("seller", 3, MaxGroups*2, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.MaxGroups() != MaxGroups {
		t.Errorf("MaxGroups() = %d, want clamp to %d", d.MaxGroups(), MaxGroups)
	}
	if d.MaxPerGroup() != 3 {
		t.Errorf("MaxPerGroup() = %d", d.MaxPerGroup())
	}
	if !d.Strict() {
		t.Error("Strict() = false")
	}
}

func TestNewDiversity_MissingAttribute(t *testing.T) {
	_, err := NewDiversity("", 1, 10, false)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "attribute is required") {
		t.Errorf("error = %q", err)
	}
}
