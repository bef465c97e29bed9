// Package annotation attaches OpenAPI documentation metadata to HTTP
// handlers without changing their behaviour. Handlers cannot carry extra
// fields the way objects in dynamic runtimes do, so the per-handler records
// live in an explicit side table: a Registry mapping handler identity to the
// accumulated documentation and validation schemas. Decoration is a
// definition-time activity — annotate handlers during setup, then hand the
// registry to the aggregation stage or a validation middleware.
package annotation
