package diversity

// ForwardRange bounds an ascending walk over a dictionary-ordered key
// space: the consumer iterates from Lower up to (but not including) Upper.
// The range owns copies of the two cursor values only; it never touches the
// structure they point into.
type ForwardRange[ITR any] struct {
	lower ITR
	upper ITR
}

// NewForwardRange creates an ascending range over [lower, upper).
func NewForwardRange[ITR any](lower, upper ITR) ForwardRange[ITR] {
	return ForwardRange[ITR]{lower: lower, upper: upper}
}

// Lower returns the inclusive lower cursor.
func (r ForwardRange[ITR]) Lower() ITR { return r.lower }

// Upper returns the exclusive upper cursor.
func (r ForwardRange[ITR]) Upper() ITR { return r.upper }

// ReverseRange bounds a descending walk over the same key space: the
// consumer iterates from just below Upper down to Lower. It carries the same
// two cursors as a ForwardRange; the type is the direction tag, so traversal
// code selects by type rather than by a runtime flag.
type ReverseRange[ITR any] struct {
	lower ITR
	upper ITR
}

// NewReverseRange creates a descending range over [lower, upper).
func NewReverseRange[ITR any](lower, upper ITR) ReverseRange[ITR] {
	return ReverseRange[ITR]{lower: lower, upper: upper}
}

// Lower returns the inclusive lower cursor.
func (r ReverseRange[ITR]) Lower() ITR { return r.lower }

// Upper returns the exclusive upper cursor.
func (r ReverseRange[ITR]) Upper() ITR { return r.upper }
