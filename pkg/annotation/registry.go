package annotation

import (
	"net/http"
	"reflect"
	"sync"

	"github.com/goliatone/go-apispec/internal/convert"
	"github.com/goliatone/go-apispec/pkg/schema"
	"github.com/goliatone/go-apispec/pkg/spec"
)

// Handler is the annotated unit. The alias keeps decorators composable with
// net/http registration without adapter shims.
type Handler = http.HandlerFunc

// Decorator annotates a handler and returns it unchanged. Decorators from
// the same registry compose in any order.
type Decorator func(Handler) Handler

// Registry is the side table holding every annotated handler's records. One
// registry typically serves the whole process; tests create their own.
//
// Records are keyed by the handler function's code pointer, so each handler
// should be a distinct function. Closures produced by the same function
// literal share a code pointer and therefore share a record.
type Registry struct {
	mu        sync.RWMutex
	converter schema.Converter
	docs      map[uintptr]*spec.OperationDocs
	schemas   map[uintptr][]schema.Entry
}

// RegistryOption configures a Registry during construction.
type RegistryOption func(*Registry)

// WithConverter substitutes the schema converter used by request and
// response annotations.
func WithConverter(c schema.Converter) RegistryOption {
	return func(r *Registry) {
		if c != nil {
			r.converter = c
		}
	}
}

// NewRegistry constructs an empty registry backed by the default converter.
func NewRegistry(opts ...RegistryOption) *Registry {
	reg := &Registry{
		converter: convert.New(),
		docs:      map[uintptr]*spec.OperationDocs{},
		schemas:   map[uintptr][]schema.Entry{},
	}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// DocsFor returns the documentation record accumulated for the handler. The
// record is live: annotations applied later mutate it. Callers needing a
// snapshot should Clone it.
func (r *Registry) DocsFor(h Handler) (*spec.OperationDocs, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.docs[handlerKey(h)]
	return record, ok
}

// SchemasFor returns the ordered validation-schema entries recorded for the
// handler, in annotation order. The returned slice is a copy.
func (r *Registry) SchemasFor(h Handler) []schema.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.schemas[handlerKey(h)]
	if len(entries) == 0 {
		return nil
	}
	return append([]schema.Entry(nil), entries...)
}

// Dock marks the handler's record as bound into a route definition. It
// reports whether a record existed. The aggregation stage calls this after
// emitting the handler's operation.
func (r *Registry) Dock(h Handler) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.docs[handlerKey(h)]
	if !ok {
		return false
	}
	record.Docked["route"] = true
	return true
}

// Reset clears every record. Intended for test teardown; production
// registries live for the process lifetime.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.docs = map[uintptr]*spec.OperationDocs{}
	r.schemas = map[uintptr][]schema.Entry{}
}

// ensureDocsLocked returns the handler's record, creating an empty one on
// first use. Callers hold the write lock.
func (r *Registry) ensureDocsLocked(key uintptr) *spec.OperationDocs {
	record, ok := r.docs[key]
	if !ok {
		record = spec.NewOperationDocs()
		r.docs[key] = record
	}
	return record
}

func handlerKey(h Handler) uintptr {
	if h == nil {
		panic("annotation: handler is required")
	}
	return reflect.ValueOf(h).Pointer()
}
