// Package apispec annotates HTTP handlers with OpenAPI 2.0 request and
// response metadata and aggregates the result into a Swagger document.
// Annotation records live in a registry side table; the package-level
// decorators below share one default registry, which suits the common case
// of a single API per process. Applications embedding several independent
// APIs construct their own registries via NewRegistry.
package apispec

import (
	"github.com/goliatone/go-apispec/internal/convert"
	"github.com/goliatone/go-apispec/pkg/annotation"
	"github.com/goliatone/go-apispec/pkg/schema"
	"github.com/goliatone/go-apispec/pkg/swagger"
)

// Handler aliases the annotated unit for callers that stay on the root
// package.
type Handler = annotation.Handler

// Decorator annotates a handler and returns it unchanged.
type Decorator = annotation.Decorator

// Registry is the per-handler record side table.
type Registry = annotation.Registry

// Route binds a handler to a method and path for document generation.
type Route = swagger.Route

var defaultRegistry = annotation.NewRegistry()

// DefaultRegistry returns the registry the package-level decorators write
// to. Hand it to swagger.New when generating the document.
func DefaultRegistry() *annotation.Registry {
	return defaultRegistry
}

// NewRegistry constructs an independent registry.
func NewRegistry(opts ...annotation.RegistryOption) *annotation.Registry {
	return annotation.NewRegistry(opts...)
}

// NewConverter exposes the default schema converter so custom registries and
// tests can wrap or replace it.
func NewConverter() schema.Converter {
	return convert.New()
}

// Docs annotates a handler with general documentation fields on the default
// registry.
func Docs(opts ...annotation.DocOption) Decorator {
	return defaultRegistry.Docs(opts...)
}

// RequestSchema documents a handler's request arguments and queues the
// schema for validation middleware, on the default registry.
func RequestSchema(src schema.Source, opts ...annotation.RequestOption) Decorator {
	return defaultRegistry.RequestSchema(src, opts...)
}

// ResponseSchema documents one response of a handler on the default
// registry.
func ResponseSchema(src schema.Source, code int, opts ...annotation.ResponseOption) Decorator {
	return defaultRegistry.ResponseSchema(src, code, opts...)
}

// NewGenerator constructs a document generator reading from the default
// registry.
func NewGenerator(opts ...swagger.GeneratorOption) *swagger.Generator {
	return swagger.New(defaultRegistry, opts...)
}
