package forms

import (
	"github.com/goliatone/go-formbind/pkg/schema"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

// BoundField joins one field descriptor to its owning binder. It exposes the
// field's current value and a lazily-built widget instance. The widget is
// memoized: once computed, its attributes do not change even if the
// underlying raw data is mutated afterwards.
type BoundField struct {
	field schema.Field
	form  *Binder

	widget *widgets.Instance
}

// Descriptor returns the static field descriptor.
func (f *BoundField) Descriptor() schema.Field {
	return f.field
}

// Name returns the unprefixed field name.
func (f *BoundField) Name() string {
	return f.field.Name
}

// Required reports the descriptor's required flag.
func (f *BoundField) Required() bool {
	return f.field.Required
}

// Value returns the field's current value: initial data overlaid by raw
// input, replaced by the normalized value after a successful validation,
// falling back to the descriptor default.
func (f *BoundField) Value() any {
	return f.form.valueOf(f.field.Name)
}

// Widget resolves and caches the field's widget instance. Resolution
// consults the explicit per-field override from the effective configuration
// first, then type inference.
func (f *BoundField) Widget() *widgets.Instance {
	if f.widget == nil {
		config := f.form.config
		f.widget = widgets.Build(f.field, f.Value(), widgets.BuildOptions{
			Prefix:      config.Prefix(),
			Override:    config.Widget(f.field.Name),
			Extra:       config.FieldAttrs(f.field.Name),
			MaskSecrets: config.MaskSecrets(),
		})
	}
	return f.widget
}

// Render hands the widget to the configured renderer. Renderer errors
// propagate unmodified.
func (f *BoundField) Render() (string, error) {
	renderer := f.form.config.Renderer()
	if renderer == nil {
		return "", ErrNoRenderer
	}
	return renderer.Render(f.Widget())
}
