package apispec

import (
	"net/http"
	"testing"

	"github.com/goliatone/go-apispec/pkg/annotation"
	"github.com/goliatone/go-apispec/pkg/schema"
	"github.com/goliatone/go-apispec/pkg/spec"
	"github.com/goliatone/go-apispec/pkg/swagger"
)

func statusHandler(w http.ResponseWriter, r *http.Request) {}

func TestPackageLevelDecoratorsShareTheDefaultRegistry(t *testing.T) {
	t.Cleanup(DefaultRegistry().Reset)

	Docs(annotation.WithSummary("Service status"))(statusHandler)
	RequestSchema(
		schema.Value(schema.New("StatusFilter",
			schema.Field{Name: "verbose", Type: schema.TypeBoolean},
		)),
		annotation.WithLocations(spec.InQuery),
	)(statusHandler)
	ResponseSchema(
		schema.Value(schema.New("Status",
			schema.Field{Name: "ok", Type: schema.TypeBoolean, Required: true},
		)), 200)(statusHandler)

	record, ok := DefaultRegistry().DocsFor(statusHandler)
	if !ok {
		t.Fatalf("expected the default registry to hold the record")
	}
	if record.Extra["summary"] != "Service status" {
		t.Fatalf("summary mismatch: %v", record.Extra["summary"])
	}
	if len(record.Parameters) != 1 || len(record.Responses) != 1 {
		t.Fatalf("unexpected record shape: %+v", record)
	}

	doc, err := NewGenerator(swagger.WithInfo("Status API", "1.0.0")).Generate([]Route{
		{Method: "GET", Path: "/status", Handler: statusHandler},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if doc.Paths["/status"] == nil || doc.Paths["/status"].Get == nil {
		t.Fatalf("expected a GET /status operation")
	}
}

func TestNewRegistryIsIndependentOfDefault(t *testing.T) {
	t.Cleanup(DefaultRegistry().Reset)

	reg := NewRegistry()
	reg.Docs(annotation.WithSummary("isolated"))(statusHandler)

	if _, ok := DefaultRegistry().DocsFor(statusHandler); ok {
		t.Fatalf("custom registry records must not leak into the default registry")
	}
	if _, ok := reg.DocsFor(statusHandler); !ok {
		t.Fatalf("expected the custom registry to hold the record")
	}
}

func TestNewConverterMatchesRegistryDefault(t *testing.T) {
	conv := NewConverter()
	params, err := conv.Parameters(schema.New("Ping",
		schema.Field{Name: "token", Type: schema.TypeString},
	), schema.ConvertOptions{DefaultIn: spec.InHeader})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(params) != 1 || params[0]["in"] != spec.InHeader {
		t.Fatalf("unexpected descriptors: %v", params)
	}
}
