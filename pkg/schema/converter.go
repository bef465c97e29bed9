package schema

import "github.com/goliatone/go-apispec/pkg/spec"

// ConvertOptions tune a single conversion call.
type ConvertOptions struct {
	// Required marks the produced body parameter as required. It has no
	// effect on non-body locations, where each field carries its own flag.
	Required bool

	// DefaultIn is the request part assumed for fields that do not override
	// their location. Empty means the converter's own default (body).
	DefaultIn string
}

// Converter turns a schema into an ordered sequence of OpenAPI parameter
// descriptors. Implementations must emit descriptors in field order and must
// not retain the schema. The default implementation lives in
// internal/convert; callers may substitute their own via the registry
// options.
type Converter interface {
	Parameters(s Schema, opts ConvertOptions) ([]spec.Parameter, error)
}
