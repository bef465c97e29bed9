package schema

// Source supplies a schema to an annotation call. It replaces the implicit
// "construct it if it is callable" convention with an explicit two-case
// variant: a ready value, or a factory invoked once when the annotation is
// applied.
type Source interface {
	Resolve() Schema
}

type valueSource struct {
	schema Schema
}

// Value wraps an already-constructed schema.
func Value(s Schema) Source {
	return valueSource{schema: s}
}

// Resolve returns the wrapped schema.
func (v valueSource) Resolve() Schema {
	return v.schema
}

type factorySource struct {
	build func() Schema
}

// Factory defers schema construction until the annotation is applied. The
// function is invoked exactly once per annotation call.
func Factory(build func() Schema) Source {
	return factorySource{build: build}
}

// Resolve invokes the factory.
func (f factorySource) Resolve() Schema {
	return f.build()
}
