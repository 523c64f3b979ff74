package forms

import (
	"errors"
	"fmt"
	"maps"

	"github.com/goliatone/go-formbind/pkg/schema"
)

// bindState tracks the binder's validation memo. The terminal states never
// regress to stateUnbound; once validation has run, every later call
// short-circuits to the stored outcome.
type bindState int

const (
	stateUnbound bindState = iota
	stateValid
	stateInvalid
)

// Processor is the pre-validation hook applied to the effective raw data.
// The default is identity.
type Processor func(data map[string]any) map[string]any

// Option customises a Binder at construction.
type Option func(*Binder)

// WithData supplies the raw input mapping.
func WithData(data map[string]any) Option {
	return func(b *Binder) {
		b.data = data
	}
}

// WithInitial supplies a pre-existing typed value whose fields seed the
// effective data. The value must conform to the binder's schema; a mismatch
// is a configuration error reported by New.
func WithInitial(initial schema.Value) Option {
	return func(b *Binder) {
		b.initial = initial
	}
}

// WithProcessor installs a hook that can reshape the effective raw data just
// before it is handed to the validation engine.
func WithProcessor(process Processor) Option {
	return func(b *Binder) {
		if process != nil {
			b.process = process
		}
	}
}

// Binder is the validation state machine for one bind-validate-render cycle.
// It holds the raw input, the optional initial value, the memoized validation
// outcome, and the per-field bound-field cache. A Binder is instance-local
// mutable state: create one per request and discard it afterwards; it is not
// safe for concurrent use.
type Binder struct {
	schema schema.Schema
	engine schema.Engine
	config *EffectiveConfig

	data    map[string]any
	initial schema.Value
	process Processor

	state      bindState
	value      schema.Value
	violations schema.Violations
	engineErr  error

	// snapshot is the effective raw data: initial field values overlaid by
	// raw input, refreshed to the normalized values after a successful
	// validation.
	snapshot map[string]any

	fields map[string]*BoundField
}

// New constructs a Binder. The initial value, when supplied, is checked for
// schema conformance exactly once, here; a mismatch wraps ErrInitialValue.
func New(s schema.Schema, engine schema.Engine, config *EffectiveConfig, options ...Option) (*Binder, error) {
	if config == nil {
		config = ResolveConfig(Config{})
	}
	b := &Binder{
		schema:  s,
		engine:  engine,
		config:  config,
		process: func(data map[string]any) map[string]any { return data },
		fields:  make(map[string]*BoundField),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}

	if b.initial != nil && b.initial.SchemaName() != s.Name() {
		return nil, fmt.Errorf("%w: have %q, want %q", ErrInitialValue, b.initial.SchemaName(), s.Name())
	}

	b.snapshot = b.effectiveData()
	return b, nil
}

// Schema returns the schema this binder validates against.
func (b *Binder) Schema() schema.Schema {
	return b.schema
}

// Config returns the effective configuration in use.
func (b *Binder) Config() *EffectiveConfig {
	return b.config
}

// Validate runs the validation engine at most once. It returns nil after a
// successful run, the stored schema.Violations after a failed one, and any
// other engine error unmodified. The outcome is memoized: later calls
// perform no further work.
func (b *Binder) Validate() error {
	switch b.state {
	case stateValid:
		return nil
	case stateInvalid:
		if b.engineErr != nil {
			return b.engineErr
		}
		return b.violations
	}

	data := b.process(b.effectiveData())

	value, err := b.engine.Validate(b.schema, data)
	if err != nil {
		b.state = stateInvalid
		var violations schema.Violations
		if errors.As(err, &violations) {
			b.violations = violations
			return b.violations
		}
		// Not a validation failure: remember and keep propagating it.
		b.engineErr = err
		return err
	}

	b.state = stateValid
	b.value = value
	b.snapshot = value.FieldMapping()
	return nil
}

// Value validates and returns the typed value. A validation failure (or any
// engine error) propagates.
func (b *Binder) Value() (schema.Value, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b.value, nil
}

// Errors validates and regroups the violation set per field, report order
// preserved within each field. Only the validation failure itself is
// absorbed into the mapping; any other error propagates through the error
// result. A nil map means the form is valid.
func (b *Binder) Errors() (map[string][]schema.Violation, error) {
	err := b.Validate()
	if err == nil {
		return nil, nil
	}
	var violations schema.Violations
	if !errors.As(err, &violations) {
		return nil, err
	}
	return violations.ByField(), nil
}

// IsValid validates and reports the outcome as a boolean. It is the one
// operation that fully absorbs the validation failure; any other error still
// propagates.
func (b *Binder) IsValid() (bool, error) {
	err := b.Validate()
	if err == nil {
		return true, nil
	}
	var violations schema.Violations
	if errors.As(err, &violations) {
		return false, nil
	}
	return false, err
}

// Field binds a declared field by name, validating first so widget values
// reflect normalized data. Undeclared names wrap ErrUnknownField; a
// validation failure propagates, as it does from Validate. The bound field
// is cached: repeated lookups return the identical instance.
func (b *Binder) Field(name string) (*BoundField, error) {
	field, ok := b.schema.Field(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	if bound, ok := b.fields[name]; ok {
		return bound, nil
	}
	bound := &BoundField{field: field, form: b}
	b.fields[name] = bound
	return bound, nil
}

// valueOf resolves the current value of a field: effective data first,
// descriptor default second.
func (b *Binder) valueOf(name string) any {
	if value, ok := b.snapshot[name]; ok {
		return value
	}
	if field, ok := b.schema.Field(name); ok {
		return field.Default
	}
	return nil
}

func (b *Binder) effectiveData() map[string]any {
	data := make(map[string]any)
	if b.initial != nil {
		maps.Copy(data, b.initial.FieldMapping())
	}
	maps.Copy(data, b.data)
	return data
}
