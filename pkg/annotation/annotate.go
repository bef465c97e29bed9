package annotation

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-apispec/pkg/schema"
	"github.com/goliatone/go-apispec/pkg/spec"
)

// Docs returns a decorator that merges general documentation fields (tags,
// summary, description, …) into the handler's record. Every application
// forces produces to ["application/json"] and resets the docked flags to
// {route: false}, signalling to the aggregation stage that the metadata has
// not yet been bound into a route.
//
// Merging is a shallow update: keys from this call overwrite identically
// named keys from earlier calls, keys set only by earlier calls persist.
// See WithField for the parameters/responses clobber caveat.
func (r *Registry) Docs(opts ...DocOption) Decorator {
	fields := map[string]any{}
	for _, opt := range opts {
		opt(fields)
	}
	fields["produces"] = []string{"application/json"}

	return func(h Handler) Handler {
		key := handlerKey(h)

		r.mu.Lock()
		defer r.mu.Unlock()

		record := r.ensureDocsLocked(key)
		for k, v := range fields {
			switch k {
			case "parameters":
				record.Parameters = asParameters(v)
			case "responses":
				record.Responses = asResponses(v)
			case "docked":
				// forced below, caller values never survive
			default:
				record.Extra[k] = v
			}
		}
		record.Docked = map[string]bool{"route": false}
		return h
	}
}

// RequestSchema returns a decorator that documents the handler's request
// arguments and queues the schema for validation middleware. The source is
// resolved once, when RequestSchema is called; conversion runs per
// decorated handler. Each application appends the produced parameter
// descriptors to the handler's documentation record and one schema entry to
// its validation list, preserving call order. Nothing is deduplicated.
//
// Conversion failures panic: annotation happens at definition time, and a
// malformed schema is a programming error, not a runtime condition.
func (r *Registry) RequestSchema(src schema.Source, opts ...RequestOption) Decorator {
	if src == nil {
		panic("annotation: schema source is required")
	}
	cfg := requestOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}
	resolved := src.Resolve()
	locations := cfg.resolveLocations()

	convertOpts := schema.ConvertOptions{Required: cfg.required}
	if len(locations) > 0 {
		convertOpts.DefaultIn = locations[0]
	}

	return func(h Handler) Handler {
		key := handlerKey(h)

		parameters, err := r.converter.Parameters(resolved, convertOpts)
		if err != nil {
			panic(err)
		}

		r.mu.Lock()
		defer r.mu.Unlock()

		record := r.ensureDocsLocked(key)
		record.Parameters = append(record.Parameters, parameters...)
		r.schemas[key] = append(r.schemas[key], schema.Entry{Schema: resolved, Locations: locations})
		return h
	}
}

// ResponseSchema returns a decorator that documents one response of the
// handler. The converter's first descriptor is filtered down to the
// response-object keys (schema, description, headers, examples); an explicit
// description overrides whatever the converter produced. The result is
// stored under the status code, replacing any earlier entry for that code.
func (r *Registry) ResponseSchema(src schema.Source, code int, opts ...ResponseOption) Decorator {
	if src == nil {
		panic("annotation: schema source is required")
	}
	cfg := responseOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}
	resolved := src.Resolve()

	return func(h Handler) Handler {
		key := handlerKey(h)

		parameters, err := r.converter.Parameters(resolved, schema.ConvertOptions{Required: cfg.required})
		if err != nil {
			panic(err)
		}
		if len(parameters) == 0 {
			panic(fmt.Sprintf("annotation: converter produced no descriptor for schema %q", resolved.Name))
		}

		response := spec.FilterResponse(parameters[0])
		if cfg.description != "" {
			response["description"] = cfg.description
		}

		r.mu.Lock()
		defer r.mu.Unlock()

		record := r.ensureDocsLocked(key)
		record.Responses[strconv.Itoa(code)] = response
		return h
	}
}

func asParameters(v any) []spec.Parameter {
	switch parameters := v.(type) {
	case []spec.Parameter:
		return parameters
	case nil:
		return []spec.Parameter{}
	default:
		panic(fmt.Sprintf("annotation: parameters field must be []spec.Parameter, got %T", v))
	}
}

func asResponses(v any) map[string]spec.Response {
	switch responses := v.(type) {
	case map[string]spec.Response:
		return responses
	case nil:
		return map[string]spec.Response{}
	default:
		panic(fmt.Sprintf("annotation: responses field must be map[string]spec.Response, got %T", v))
	}
}
