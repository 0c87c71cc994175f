package index

import (
	"sort"

	"github.com/divdex/divdex/internal/domain/diversity"
)

// Dictionary is one attribute's sorted unique values with a posting list of
// ascending doc ids per value.
type Dictionary struct {
	values   []string
	postings [][]uint32
}

// Len returns the number of distinct values.
func (d *Dictionary) Len() int { return len(d.values) }

// Value returns the value at a cursor position.
func (d *Dictionary) Value(i int) string { return d.values[i] }

// Bounds resolves inclusive value bounds to a half-open cursor pair
// [lo, hi). An empty from means the dictionary start, an empty to means the
// dictionary end.
func (d *Dictionary) Bounds(from, to string) (int, int) {
	lo := 0
	if from != "" {
		lo = sort.SearchStrings(d.values, from)
	}
	hi := len(d.values)
	if to != "" {
		hi = sort.Search(len(d.values), func(i int) bool { return d.values[i] > to })
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// EachForward walks doc ids for the range's values in ascending dictionary
// order, ascending doc id within a value. The walk stops when yield returns
// false.
func (d *Dictionary) EachForward(r diversity.ForwardRange[int], yield func(docID uint32) bool) {
	for i := r.Lower(); i < r.Upper(); i++ {
		for _, docID := range d.postings[i] {
			if !yield(docID) {
				return
			}
		}
	}
}

// EachReverse walks the same range in descending dictionary order, from just
// below the range's upper cursor down to its lower cursor. Doc ids within a
// value stay ascending.
func (d *Dictionary) EachReverse(r diversity.ReverseRange[int], yield func(docID uint32) bool) {
	for i := r.Upper() - 1; i >= r.Lower(); i-- {
		for _, docID := range d.postings[i] {
			if !yield(docID) {
				return
			}
		}
	}
}
