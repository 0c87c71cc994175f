package divdex

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const tagKey = "divdex"

// schemaMeta holds parsed struct tag metadata, cached per TypedIndex.
type schemaMeta struct {
	typ   reflect.Type // struct type for reconstruction
	idIdx int

	// Mapping from struct field index → attribute name.
	attrFields []fieldMapping
}

type fieldMapping struct {
	structIdx int
	name      string
}

// parseSchema reflects on T and extracts divdex struct tag metadata.
func parseSchema[T any]() (*schemaMeta, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("divdex: type %s is not a struct", t)
	}

	meta := &schemaMeta{typ: t, idIdx: -1}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get(tagKey)
		if tag == "" || tag == "-" {
			continue
		}
		if err := applyTag(meta, i, f.Name, tag); err != nil {
			return nil, err
		}
	}

	if meta.idIdx == -1 {
		return nil, fmt.Errorf("divdex: no field with `divdex:\"id\"` tag in %s", t)
	}
	return meta, nil
}

// applyTag processes a single struct field's divdex tag.
func applyTag(meta *schemaMeta, idx int, fieldName, tag string) error {
	name, modifier, _ := strings.Cut(tag, ",")

	if name == "id" && modifier == "" {
		if meta.idIdx != -1 {
			return fmt.Errorf("divdex: duplicate id tag on field %s", fieldName)
		}
		meta.idIdx = idx
		return nil
	}
	if modifier != "" {
		return fmt.Errorf("divdex: unknown modifier %q on field %s", modifier, fieldName)
	}
	meta.attrFields = append(meta.attrFields, fieldMapping{structIdx: idx, name: name})
	return nil
}

// toDocument converts a typed struct to Document using schema metadata.
// Attribute values are their string forms; numeric fields should be stored
// zero-padded by the caller if lexicographic order must match numeric order.
func (m *schemaMeta) toDocument(item any) Document {
	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	fields := make(map[string]string, len(m.attrFields))
	for _, af := range m.attrFields {
		fields[af.name] = fmt.Sprint(v.Field(af.structIdx).Interface())
	}

	return Document{
		ID:     fmt.Sprint(v.Field(m.idIdx).Interface()),
		Fields: fields,
	}
}

// fromDocument converts a Document back to a typed struct using schema metadata.
func (m *schemaMeta) fromDocument(doc Document) any {
	v := reflect.New(m.typ).Elem()

	v.Field(m.idIdx).SetString(doc.ID)
	for _, af := range m.attrFields {
		if val, ok := doc.Fields[af.name]; ok {
			setFromString(v.Field(af.structIdx), val)
		}
	}
	return v.Interface()
}

func setFromString(v reflect.Value, s string) {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			v.SetInt(n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			v.SetUint(n)
		}
	case reflect.Float32, reflect.Float64:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			v.SetFloat(f)
		}
	}
}
