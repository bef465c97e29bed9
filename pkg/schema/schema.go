package schema

import (
	"errors"
	"fmt"
)

// Field value types, matching the OpenAPI 2.0 primitive vocabulary.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

var knownTypes = map[string]struct{}{
	TypeString:  {},
	TypeNumber:  {},
	TypeInteger: {},
	TypeBoolean: {},
	TypeArray:   {},
	TypeObject:  {},
}

// Field describes one argument of a request or one property of a response
// body.
type Field struct {
	Name        string
	Type        string
	Format      string
	Required    bool
	Description string
	Enum        []any
	Default     any

	// In overrides the converter's default location for this field alone,
	// e.g. a header argument inside a mostly-query schema. Empty means
	// "use the default".
	In string
}

// Schema is a named, ordered field list. Order is significant: converters
// emit parameter descriptors in field order, and validation middlewares
// apply schemas in declaration order.
type Schema struct {
	Name   string
	Fields []Field
}

// New constructs a schema from fields, preserving their order.
func New(name string, fields ...Field) Schema {
	return Schema{Name: name, Fields: fields}
}

// Clone deep-copies the schema so callers can mutate their copy without
// affecting records already captured by the annotator.
func (s Schema) Clone() Schema {
	clone := s
	if len(s.Fields) > 0 {
		clone.Fields = make([]Field, len(s.Fields))
		copy(clone.Fields, s.Fields)
		for i, f := range s.Fields {
			if len(f.Enum) > 0 {
				clone.Fields[i].Enum = append([]any(nil), f.Enum...)
			}
		}
	}
	return clone
}

// RequiredFields returns the names of required fields in declaration order.
func (s Schema) RequiredFields() []string {
	var required []string
	for _, f := range s.Fields {
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return required
}

// Validate performs the sanity checks converters rely on.
func (s Schema) Validate() error {
	if len(s.Fields) == 0 {
		return errors.New("schema: at least one field is required")
	}
	for _, f := range s.Fields {
		if f.Name == "" {
			return errors.New("schema: field name is required")
		}
		if _, ok := knownTypes[f.Type]; !ok {
			return fmt.Errorf("schema: field %q has unknown type %q", f.Name, f.Type)
		}
	}
	return nil
}

// Entry pairs a resolved schema with the request locations it applies to.
// The annotator appends one Entry per request-schema annotation, preserving
// call order so validation middleware can replay them as declared. A nil
// Locations slice means the middleware chooses its own defaults.
type Entry struct {
	Schema    Schema
	Locations []string
}
