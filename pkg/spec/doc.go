// Package spec defines the OpenAPI 2.0 descriptor vocabulary shared by the
// annotation and swagger packages: parameter and response objects kept as
// open maps so converter-produced keys survive untouched, plus the
// per-handler records the annotator accumulates. Downstream stages (document
// aggregation, request validation) read these records; nothing in this
// package mutates them.
package spec
