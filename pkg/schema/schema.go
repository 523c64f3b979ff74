// Package schema declares the contracts between the form binding core and the
// validation engine behind it: field descriptors, typed values, and the
// violation error type. Implementations live elsewhere (pkg/openapi ships the
// kin-openapi-backed pair); binders and widget builders depend only on this
// package.
package schema

// Schema exposes the declared fields of one typed record. Fields are returned
// in declaration order and must not be mutated by callers.
type Schema interface {
	// Name identifies the schema; values report the same name so binders can
	// check conformance of an initial value.
	Name() string
	Fields() []Field
	Field(name string) (Field, bool)
}

// Value is a validated, schema-conformant record.
type Value interface {
	// SchemaName reports the schema the value was validated against.
	SchemaName() string
	Get(name string) (any, bool)
	// FieldMapping flattens the value back to raw-field form. The returned map
	// is a copy the caller may overlay freely.
	FieldMapping() map[string]any
}

// Engine validates a raw field mapping against a schema. It either returns a
// fully-typed Value or an error; validation failures must be reported as
// Violations so callers can tell them apart from engine malfunction.
type Engine interface {
	Validate(s Schema, values map[string]any) (Value, error)
}
