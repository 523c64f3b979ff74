// Package formbind binds raw input data to a typed schema, validates it once,
// and exposes per-field widgets whose type and attributes are inferred from
// schema metadata. This root package re-exports the pieces most callers need;
// the implementations live under pkg/.
package formbind

import (
	"github.com/goliatone/go-formbind/pkg/forms"
	"github.com/goliatone/go-formbind/pkg/render"
	"github.com/goliatone/go-formbind/pkg/schema"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

// Core binding types.
type (
	Config          = forms.Config
	EffectiveConfig = forms.EffectiveConfig
	Binder          = forms.Binder
	BoundField      = forms.BoundField
	Option          = forms.Option
)

// Schema boundary types.
type (
	Field      = schema.Field
	FieldType  = schema.FieldType
	Schema     = schema.Schema
	Value      = schema.Value
	Engine     = schema.Engine
	Violation  = schema.Violation
	Violations = schema.Violations
	Secret     = schema.Secret
)

// Widget and renderer types.
type (
	Widget     = widgets.Instance
	WidgetType = widgets.Type
	Renderer   = render.Renderer
)

// Configuration errors surfaced by the binder.
var (
	ErrInitialValue = forms.ErrInitialValue
	ErrUnknownField = forms.ErrUnknownField
)

// ResolveConfig merges a form type's declared configuration with its
// ancestors' configurations; see forms.ResolveConfig.
func ResolveConfig(own Config, bases ...Config) *EffectiveConfig {
	return forms.ResolveConfig(own, bases...)
}

// New constructs a binder for one bind-validate-render cycle; see forms.New.
func New(s Schema, engine Engine, config *EffectiveConfig, options ...Option) (*Binder, error) {
	return forms.New(s, engine, config, options...)
}

// WithData supplies the raw input mapping.
func WithData(data map[string]any) Option {
	return forms.WithData(data)
}

// WithInitial supplies a pre-existing typed value.
func WithInitial(initial Value) Option {
	return forms.WithInitial(initial)
}
