package spec

// Request part names recognised across the module. They match the OpenAPI
// 2.0 parameter `in` vocabulary; validation middlewares may accept further
// values without this package needing to know about them.
const (
	InBody     = "body"
	InQuery    = "query"
	InHeader   = "header"
	InPath     = "path"
	InFormData = "formData"
	InCookie   = "cookie"
)

// Parameter is a single OpenAPI 2.0 parameter object. It stays an open map
// rather than a struct so that whatever keys the schema converter produces
// (name, in, type, required, schema, description, …) are carried verbatim
// into the aggregate document.
type Parameter map[string]any

// Clone returns a shallow copy of the parameter. Nested values are shared;
// descriptors are treated as immutable once produced.
func (p Parameter) Clone() Parameter {
	if p == nil {
		return nil
	}
	clone := make(Parameter, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}

// Response is a single OpenAPI 2.0 response object. Only the keys listed in
// responseFields are legal; FilterResponse enforces the whitelist.
type Response map[string]any

// Clone returns a shallow copy of the response descriptor.
func (r Response) Clone() Response {
	if r == nil {
		return nil
	}
	clone := make(Response, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}

// responseFields is the OpenAPI 2.0 response-object key whitelist. Converter
// output routinely carries parameter-object keys (name, in, required) that
// have no place in a response; they are dropped here.
var responseFields = map[string]struct{}{
	"schema":      {},
	"description": {},
	"headers":     {},
	"examples":    {},
}

// FilterResponse narrows a converter-produced parameter descriptor down to
// the keys a response object may carry. Keys outside the whitelist never
// reach the stored record.
func FilterResponse(p Parameter) Response {
	out := make(Response, len(responseFields))
	for k, v := range p {
		if _, ok := responseFields[k]; ok {
			out[k] = v
		}
	}
	return out
}
