package result

// Hit is a single admitted document.
type Hit struct {
	id    string
	value string
	group string
}

// NewHit creates a hit: the external document id, the iterated attribute's
// value for the document, and its group key ("" when diversity is off).
func NewHit(id, value, group string) Hit {
	return Hit{id: id, value: value, group: group}
}

// ID returns the external document identifier.
func (h Hit) ID() string { return h.id }

// Value returns the iterated attribute value.
func (h Hit) Value() string { return h.value }

// Group returns the group key the document was accounted under.
func (h Hit) Group() string { return h.group }

// Hits is the outcome of one traversal.
type Hits struct {
	hits      []Hit
	total     uint32
	saturated bool
}

// NewHits creates a traversal outcome.
func NewHits(hits []Hit, total uint32, saturated bool) Hits {
	return Hits{hits: hits, total: total, saturated: saturated}
}

// All returns the admitted hits in traversal order.
func (h Hits) All() []Hit { return h.hits }

// Total returns the number of admitted documents.
func (h Hits) Total() uint32 { return h.total }

// Saturated reports whether the traversal stopped at the global cap.
func (h Hits) Saturated() bool { return h.saturated }
