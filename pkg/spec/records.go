package spec

// OperationDocs is the documentation record accumulated for one handler. It
// is created lazily on the first annotation and mutated in place by every
// later annotation of the same handler:
//
//   - Parameters is append-only and never deduplicated; annotating the same
//     schema twice produces duplicate entries.
//   - Responses is keyed by status code as a string; the last annotation for
//     a given code wins.
//   - Extra carries free-form documentation fields (tags, summary,
//     description, produces, …) and is shallow-updated key by key.
//   - Docked holds binding flags for the aggregation stage; every general
//     annotation resets it to {route: false}.
type OperationDocs struct {
	Parameters []Parameter
	Responses  map[string]Response
	Extra      map[string]any
	Docked     map[string]bool
}

// NewOperationDocs returns an empty record with all maps initialised.
func NewOperationDocs() *OperationDocs {
	return &OperationDocs{
		Parameters: []Parameter{},
		Responses:  map[string]Response{},
		Extra:      map[string]any{},
		Docked:     map[string]bool{},
	}
}

// Clone copies the record one level deep. Descriptor values are shared; use
// it when a consumer needs a stable snapshot while annotations may still run.
func (d *OperationDocs) Clone() *OperationDocs {
	if d == nil {
		return nil
	}
	clone := NewOperationDocs()
	clone.Parameters = append(clone.Parameters, d.Parameters...)
	for code, resp := range d.Responses {
		clone.Responses[code] = resp.Clone()
	}
	for k, v := range d.Extra {
		clone.Extra[k] = v
	}
	for k, v := range d.Docked {
		clone.Docked[k] = v
	}
	return clone
}
