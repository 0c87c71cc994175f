package divdex

// Direction controls dictionary traversal order.
type Direction string

// Traversal direction constants.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Document is an untyped document for the low-level API.
type Document struct {
	ID     string
	Fields map[string]string
}

// SearchHit is a single query hit.
type SearchHit struct {
	ID    string // external document id
	Value string // ordering attribute value
	Group string // grouping attribute value ("" when diversity is off)
}

// QueryResult is the outcome of one query.
type QueryResult struct {
	Hits []SearchHit
	// Total is the number of admitted documents (equals len(Hits)).
	Total int
	// Saturated reports whether traversal stopped at the global cap.
	Saturated bool
}
