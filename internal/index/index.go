// Package index holds the in-memory per-attribute inverted structure the
// query engine traverses: for every attribute a dictionary of sorted unique
// values with ascending posting lists, plus a value vector mapping internal
// doc ids back to attribute values.
package index

import "sort"

// Index is an immutable snapshot built once and shared read-only across
// queries. Internal doc ids are dense uint32s assigned at build time and
// never leave the index.
type Index struct {
	attrs map[string]*Attribute
	ids   []string
}

// Attribute returns the named attribute.
func (i *Index) Attribute(name string) (*Attribute, bool) {
	a, ok := i.attrs[name]
	return a, ok
}

// AttributeNames returns the indexed attribute names in sorted order.
func (i *Index) AttributeNames() []string {
	names := make([]string, 0, len(i.attrs))
	for name := range i.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExternalID maps an internal doc id to the document's external identifier.
func (i *Index) ExternalID(docID uint32) string { return i.ids[docID] }

// NumDocs returns the number of indexed documents.
func (i *Index) NumDocs() int { return len(i.ids) }

// Attribute is one attribute's dictionary plus its doc-id value vector.
type Attribute struct {
	dict   Dictionary
	values []string
}

// Dictionary returns the attribute's value dictionary.
func (a *Attribute) Dictionary() *Dictionary { return &a.dict }

// ValueOf returns the attribute value of a document, "" when the document
// does not carry the attribute. Pure and deterministic for the snapshot's
// lifetime, which is what the admission filter requires of its group lookup.
func (a *Attribute) ValueOf(docID uint32) string {
	if int(docID) >= len(a.values) {
		return ""
	}
	return a.values[docID]
}
