package forms

import "errors"

// Configuration errors. These are fatal caller mistakes, raised immediately
// and never absorbed by the binder: they are disjoint from the
// schema.Violations class that Validate reports for bad input data.
var (
	// ErrInitialValue marks an initial value that does not conform to the
	// binder's schema. Checked once, at construction.
	ErrInitialValue = errors.New("forms: initial value does not conform to schema")

	// ErrUnknownField marks a Field lookup for a name the schema does not
	// declare.
	ErrUnknownField = errors.New("forms: unknown field")

	// ErrNoRenderer marks a render attempt on a form whose configuration
	// carries no renderer.
	ErrNoRenderer = errors.New("forms: no renderer configured")
)
