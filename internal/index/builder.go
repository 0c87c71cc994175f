package index

import "sort"

// Builder accumulates documents and seals them into an immutable Index.
// Doc ids are assigned densely in insertion order, so every posting list is
// ascending by construction; dictionary values are sorted at build time.
type Builder struct {
	ids      []string
	postings map[string]map[string][]uint32
	values   map[string][]string
}

// NewBuilder creates an empty index builder.
func NewBuilder() *Builder {
	return &Builder{
		postings: make(map[string]map[string][]uint32),
		values:   make(map[string][]string),
	}
}

// AddDocument indexes every field of the document and returns the internal
// doc id assigned to it.
func (b *Builder) AddDocument(externalID string, fields map[string]string) uint32 {
	docID := uint32(len(b.ids))
	b.ids = append(b.ids, externalID)

	for attr, value := range fields {
		byValue, ok := b.postings[attr]
		if !ok {
			byValue = make(map[string][]uint32)
			b.postings[attr] = byValue
		}
		byValue[value] = append(byValue[value], docID)

		vec := b.values[attr]
		for len(vec) < int(docID) {
			vec = append(vec, "")
		}
		b.values[attr] = append(vec, value)
	}
	return docID
}

// Build seals the accumulated documents into an Index snapshot. The builder
// must not be reused afterwards.
func (b *Builder) Build() *Index {
	attrs := make(map[string]*Attribute, len(b.postings))
	for name, byValue := range b.postings {
		values := make([]string, 0, len(byValue))
		for v := range byValue {
			values = append(values, v)
		}
		sort.Strings(values)

		postings := make([][]uint32, len(values))
		for i, v := range values {
			postings[i] = byValue[v]
		}

		// Pad the value vector to cover documents added after the last
		// document carrying this attribute.
		vec := b.values[name]
		for len(vec) < len(b.ids) {
			vec = append(vec, "")
		}

		attrs[name] = &Attribute{
			dict:   Dictionary{values: values, postings: postings},
			values: vec,
		}
	}
	return &Index{attrs: attrs, ids: b.ids}
}
