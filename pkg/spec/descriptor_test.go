package spec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterResponseDropsParameterKeys(t *testing.T) {
	param := Parameter{
		"name":        "body",
		"in":          "body",
		"required":    true,
		"type":        "object",
		"schema":      map[string]any{"type": "object"},
		"description": "payload",
		"headers":     map[string]any{},
		"examples":    map[string]any{},
		"x-order":     3,
	}

	want := Response{
		"schema":      map[string]any{"type": "object"},
		"description": "payload",
		"headers":     map[string]any{},
		"examples":    map[string]any{},
	}
	if diff := cmp.Diff(want, FilterResponse(param)); diff != "" {
		t.Fatalf("filtered response mismatch (-want +got):\n%s", diff)
	}
}

func TestOperationDocsCloneIsDetached(t *testing.T) {
	record := NewOperationDocs()
	record.Parameters = append(record.Parameters, Parameter{"name": "id"})
	record.Responses["200"] = Response{"description": "ok"}
	record.Extra["summary"] = "before"
	record.Docked["route"] = false

	clone := record.Clone()
	clone.Extra["summary"] = "after"
	clone.Responses["200"] = Response{"description": "changed"}
	clone.Parameters = append(clone.Parameters, Parameter{"name": "extra"})
	clone.Docked["route"] = true

	if record.Extra["summary"] != "before" {
		t.Fatalf("clone mutation leaked into extras")
	}
	if record.Responses["200"]["description"] != "ok" {
		t.Fatalf("clone mutation leaked into responses")
	}
	if len(record.Parameters) != 1 {
		t.Fatalf("clone mutation leaked into parameters")
	}
	if record.Docked["route"] {
		t.Fatalf("clone mutation leaked into docked flags")
	}
}
