// Package document holds the document value type ingested into the engine.
package document

import (
	"fmt"

	"github.com/google/uuid"
)

// MaxFields is the maximum number of attribute fields per document.
const MaxFields = 64

// Document is a validated, immutable document: an external identifier plus
// flat string attributes. The engine assigns its own internal uint32 doc ids
// at index-build time; those never leave the index.
type Document struct {
	id     string
	fields map[string]string
}

// New validates and creates a Document. An empty id gets a generated UUID.
func New(id string, fields map[string]string) (Document, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if len(fields) == 0 {
		return Document{}, fmt.Errorf("document %s: at least one field is required", id)
	}
	if len(fields) > MaxFields {
		return Document{}, fmt.Errorf("document %s: too many fields (max %d)", id, MaxFields)
	}
	for k, v := range fields {
		if k == "" {
			return Document{}, fmt.Errorf("document %s: empty field name", id)
		}
		if v == "" {
			return Document{}, fmt.Errorf("document %s: field %q has an empty value", id, k)
		}
	}
	return Document{id: id, fields: fields}, nil
}

// Reconstruct rebuilds a Document from storage without validation.
func Reconstruct(id string, fields map[string]string) Document {
	return Document{id: id, fields: fields}
}

// ID returns the external document identifier.
func (d Document) ID() string { return d.id }

// Fields returns the attribute fields.
func (d Document) Fields() map[string]string { return d.fields }

// Field returns the value of a single attribute field.
func (d Document) Field(name string) (string, bool) {
	v, ok := d.fields[name]
	return v, ok
}
