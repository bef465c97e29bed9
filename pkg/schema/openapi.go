package schema

import (
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// FromOpenAPI derives a field list from a kin-openapi object schema so
// declarations maintained in OpenAPI 3 documents can feed the annotator
// without being restated by hand. Only the top level of the object is
// walked: nested objects and arrays surface as fields of type object/array,
// which the converter embeds as-is.
//
// kin-openapi keeps properties in a map, so fields are ordered by property
// name to stay deterministic across runs.
func FromOpenAPI(name string, ref *openapi3.SchemaRef) (Schema, error) {
	if ref == nil || ref.Value == nil {
		return Schema{}, errors.New("schema: openapi schema is required")
	}
	src := ref.Value
	if src.Type != nil && !src.Type.Is(openapi3.TypeObject) {
		return Schema{}, fmt.Errorf("schema: openapi schema %q is not an object", name)
	}
	if len(src.Properties) == 0 {
		return Schema{}, fmt.Errorf("schema: openapi schema %q has no properties", name)
	}

	required := make(map[string]struct{}, len(src.Required))
	for _, field := range src.Required {
		required[field] = struct{}{}
	}

	names := make([]string, 0, len(src.Properties))
	for propName := range src.Properties {
		names = append(names, propName)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, propName := range names {
		prop := src.Properties[propName]
		field, err := fieldFromProperty(propName, prop)
		if err != nil {
			return Schema{}, err
		}
		if _, ok := required[propName]; ok {
			field.Required = true
		}
		fields = append(fields, field)
	}

	return Schema{Name: name, Fields: fields}, nil
}

func fieldFromProperty(name string, ref *openapi3.SchemaRef) (Field, error) {
	if ref == nil || ref.Value == nil {
		return Field{}, fmt.Errorf("schema: property %q has no schema", name)
	}
	src := ref.Value
	fieldType := firstType(src.Type)
	if fieldType == "" {
		return Field{}, fmt.Errorf("schema: property %q has no type", name)
	}
	if _, ok := knownTypes[fieldType]; !ok {
		return Field{}, fmt.Errorf("schema: property %q has unsupported type %q", name, fieldType)
	}

	field := Field{
		Name:        name,
		Type:        fieldType,
		Format:      src.Format,
		Description: src.Description,
		Default:     src.Default,
	}
	if len(src.Enum) > 0 {
		field.Enum = append([]any(nil), src.Enum...)
	}
	return field, nil
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
