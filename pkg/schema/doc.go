// Package schema defines the declarative request/response shape the
// annotator consumes: an ordered field list, a Source variant that resolves
// either a ready instance or a zero-argument factory, and the Converter
// contract that turns a schema into OpenAPI parameter descriptors. The
// default converter lives under internal/convert to keep implementations
// swappable.
package schema
