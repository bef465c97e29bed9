// Package convert holds the default schema converter. It mirrors the
// classic Swagger 2.0 split: body schemas collapse into a single body
// parameter carrying a JSON schema object, while every other location emits
// one flat descriptor per field.
package convert

import (
	"fmt"

	"github.com/goliatone/go-apispec/pkg/schema"
	"github.com/goliatone/go-apispec/pkg/spec"
)

// Converter implements schema.Converter.
type Converter struct{}

// Ensure the implementation satisfies the public interface.
var _ schema.Converter = (*Converter)(nil)

// New constructs the default converter.
func New() schema.Converter {
	return &Converter{}
}

// Parameters converts a schema into OpenAPI 2.0 parameter descriptors. An
// empty DefaultIn is treated as body.
func (c *Converter) Parameters(s schema.Schema, opts schema.ConvertOptions) ([]spec.Parameter, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}

	defaultIn := opts.DefaultIn
	if defaultIn == "" {
		defaultIn = spec.InBody
	}
	if defaultIn == spec.InBody {
		return []spec.Parameter{bodyParameter(s, opts.Required)}, nil
	}

	params := make([]spec.Parameter, 0, len(s.Fields))
	for _, field := range s.Fields {
		params = append(params, fieldParameter(field, defaultIn))
	}
	return params, nil
}

// bodyParameter folds the whole schema into one body descriptor. Field-level
// location overrides do not apply here: a body schema is a single JSON
// document.
func bodyParameter(s schema.Schema, required bool) spec.Parameter {
	properties := make(map[string]any, len(s.Fields))
	for _, field := range s.Fields {
		properties[field.Name] = propertySchema(field)
	}

	bodySchema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if requiredFields := s.RequiredFields(); len(requiredFields) > 0 {
		bodySchema["required"] = requiredFields
	}

	return spec.Parameter{
		"in":       spec.InBody,
		"name":     spec.InBody,
		"required": required,
		"schema":   bodySchema,
	}
}

func fieldParameter(field schema.Field, defaultIn string) spec.Parameter {
	location := defaultIn
	if field.In != "" {
		location = field.In
	}

	param := spec.Parameter{
		"name":     field.Name,
		"in":       location,
		"type":     field.Type,
		"required": field.Required,
	}
	if field.Format != "" {
		param["format"] = field.Format
	}
	if field.Description != "" {
		param["description"] = field.Description
	}
	if len(field.Enum) > 0 {
		param["enum"] = append([]any(nil), field.Enum...)
	}
	if field.Default != nil {
		param["default"] = field.Default
	}
	return param
}

func propertySchema(field schema.Field) map[string]any {
	prop := map[string]any{"type": field.Type}
	if field.Format != "" {
		prop["format"] = field.Format
	}
	if field.Description != "" {
		prop["description"] = field.Description
	}
	if len(field.Enum) > 0 {
		prop["enum"] = append([]any(nil), field.Enum...)
	}
	if field.Default != nil {
		prop["default"] = field.Default
	}
	return prop
}
