package openapi

import (
	"maps"
)

// Record is the schema.Value produced by the engine: the schema name plus the
// normalized field values of one validated submission.
type Record struct {
	schemaName string
	values     map[string]any
}

// NewRecord wraps already-normalized values in a Record. Useful for seeding a
// binder with an initial value.
func NewRecord(schemaName string, values map[string]any) *Record {
	return &Record{schemaName: schemaName, values: maps.Clone(values)}
}

// SchemaName reports the schema the record was validated against.
func (r *Record) SchemaName() string {
	return r.schemaName
}

// Get returns one field value.
func (r *Record) Get(name string) (any, bool) {
	value, ok := r.values[name]
	return value, ok
}

// FieldMapping flattens the record back to raw-field form. The returned map
// is a copy.
func (r *Record) FieldMapping() map[string]any {
	return maps.Clone(r.values)
}
