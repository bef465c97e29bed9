package swagger

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-apispec/pkg/annotation"
	"github.com/goliatone/go-apispec/pkg/spec"
)

// Route binds a handler to a method and path so its accumulated metadata
// can be placed in the document.
type Route struct {
	Method  string
	Path    string
	Handler annotation.Handler
}

// Generator builds Swagger documents from one registry's records.
type Generator struct {
	registry *annotation.Registry
	info     openapi3.Info
	host     string
	basePath string
	sanitize bool
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithInfo sets the document title and version.
func WithInfo(title, version string) GeneratorOption {
	return func(g *Generator) {
		g.info.Title = title
		g.info.Version = version
	}
}

// WithDescription sets the document-level description.
func WithDescription(description string) GeneratorOption {
	return func(g *Generator) {
		g.info.Description = description
	}
}

// WithHost sets the API host.
func WithHost(host string) GeneratorOption {
	return func(g *Generator) {
		g.host = host
	}
}

// WithBasePath sets the path prefix all routes share.
func WithBasePath(basePath string) GeneratorOption {
	return func(g *Generator) {
		g.basePath = basePath
	}
}

// WithSanitizedDescriptions strips HTML markup from summary and description
// strings before they enter the document. Annotations often echo docstrings
// that were written for rendered output; the generated document should carry
// plain text.
func WithSanitizedDescriptions() GeneratorOption {
	return func(g *Generator) {
		g.sanitize = true
	}
}

// New constructs a Generator reading from the given registry.
func New(registry *annotation.Registry, opts ...GeneratorOption) *Generator {
	gen := &Generator{
		registry: registry,
		info:     openapi3.Info{Title: "API", Version: "0.0.1"},
	}
	for _, opt := range opts {
		opt(gen)
	}
	return gen
}

// Generate assembles the document for the given routing table. Routes whose
// handlers carry no annotations are skipped; annotated handlers are marked
// docked once their operation has been emitted. Route order decides nothing:
// paths and methods key the result.
func (g *Generator) Generate(routes []Route) (*openapi2.T, error) {
	if g.registry == nil {
		return nil, errors.New("swagger: registry is required")
	}

	doc := &openapi2.T{
		Swagger:  "2.0",
		Info:     g.info,
		Host:     g.host,
		BasePath: g.basePath,
		Paths:    map[string]*openapi2.PathItem{},
	}

	for _, route := range routes {
		record, ok := g.registry.DocsFor(route.Handler)
		if !ok {
			continue
		}

		operation, err := g.buildOperation(record.Clone())
		if err != nil {
			return nil, fmt.Errorf("swagger: %s %s: %w", route.Method, route.Path, err)
		}

		item := doc.Paths[route.Path]
		if item == nil {
			item = &openapi2.PathItem{}
			doc.Paths[route.Path] = item
		}
		if err := setOperation(item, route.Method, operation); err != nil {
			return nil, fmt.Errorf("swagger: %s: %w", route.Path, err)
		}

		g.registry.Dock(route.Handler)
	}

	return doc, nil
}

// buildOperation flattens a handler record into the operation's wire shape,
// then round-trips it through JSON so kin-openapi's own unmarshaling
// distributes known keys into struct fields and everything else into
// extensions.
func (g *Generator) buildOperation(record *spec.OperationDocs) (*openapi2.Operation, error) {
	raw := map[string]any{}
	for k, v := range record.Extra {
		raw[k] = v
	}
	if len(record.Parameters) > 0 {
		raw["parameters"] = record.Parameters
	}
	if len(record.Responses) > 0 {
		raw["responses"] = record.Responses
	}
	if g.sanitize {
		sanitizeOperation(raw)
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode operation: %w", err)
	}
	var operation openapi2.Operation
	if err := json.Unmarshal(encoded, &operation); err != nil {
		return nil, fmt.Errorf("decode operation: %w", err)
	}
	return &operation, nil
}

func setOperation(item *openapi2.PathItem, method string, operation *openapi2.Operation) error {
	switch strings.ToUpper(method) {
	case "GET":
		item.Get = operation
	case "PUT":
		item.Put = operation
	case "POST":
		item.Post = operation
	case "DELETE":
		item.Delete = operation
	case "PATCH":
		item.Patch = operation
	case "HEAD":
		item.Head = operation
	case "OPTIONS":
		item.Options = operation
	default:
		return fmt.Errorf("unsupported method %q", method)
	}
	return nil
}
