package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate(t *testing.T) {
	valid := New("User",
		Field{Name: "email", Type: TypeString, Required: true},
		Field{Name: "age", Type: TypeInteger},
	)
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid schema, got %v", err)
	}

	if err := New("Empty").Validate(); err == nil {
		t.Fatalf("expected error for schema without fields")
	}
	if err := New("Bad", Field{Type: TypeString}).Validate(); err == nil {
		t.Fatalf("expected error for unnamed field")
	}
	if err := New("Bad", Field{Name: "x", Type: "money"}).Validate(); err == nil {
		t.Fatalf("expected error for unknown field type")
	}
}

func TestRequiredFields(t *testing.T) {
	s := New("User",
		Field{Name: "email", Type: TypeString, Required: true},
		Field{Name: "age", Type: TypeInteger},
		Field{Name: "name", Type: TypeString, Required: true},
	)
	if diff := cmp.Diff([]string{"email", "name"}, s.RequiredFields()); diff != "" {
		t.Fatalf("required fields mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := New("User",
		Field{Name: "role", Type: TypeString, Enum: []any{"admin", "member"}},
	)
	clone := original.Clone()
	clone.Fields[0].Name = "changed"
	clone.Fields[0].Enum[0] = "changed"

	if original.Fields[0].Name != "role" {
		t.Fatalf("clone mutation leaked into the original field")
	}
	if original.Fields[0].Enum[0] != "admin" {
		t.Fatalf("clone mutation leaked into the original enum")
	}
}

func TestSourceVariants(t *testing.T) {
	s := New("User", Field{Name: "email", Type: TypeString})

	if got := Value(s).Resolve(); got.Name != "User" {
		t.Fatalf("value source returned %q", got.Name)
	}

	calls := 0
	src := Factory(func() Schema {
		calls++
		return s
	})
	if got := src.Resolve(); got.Name != "User" {
		t.Fatalf("factory source returned %q", got.Name)
	}
	if calls != 1 {
		t.Fatalf("expected one factory invocation per resolve, got %d", calls)
	}
}
