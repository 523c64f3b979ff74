// Package forms holds the binding core: per-form-type configuration with
// inheritance, the memoized validation state machine, and the bound-field
// cache that hands widgets to renderers.
package forms

import (
	"maps"

	"github.com/goliatone/go-formbind/pkg/render"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

// Config is the declared configuration for one form type. Zero values mean
// "inherit": ResolveConfig fills anything left unset from the base
// configurations or the documented defaults.
type Config struct {
	// Prefix is prepended to every widget name (and id).
	Prefix string
	// Renderer turns widget instances into output text. Defaults to the
	// reference string renderer.
	Renderer render.Renderer
	// Widgets maps field names to explicit widget-type overrides, consulted
	// before type inference.
	Widgets map[string]widgets.Type
	// Attrs maps field names to extra widget attributes merged over the
	// widget's own defaults.
	Attrs map[string]map[string]any
	// MaskSecrets renders password widget values masked instead of revealing
	// the literal secret text.
	MaskSecrets bool
}

// EffectiveConfig is the fully merged configuration for a form type. Computed
// once per form type, immutable afterwards, safe to share across concurrent
// binders.
type EffectiveConfig struct {
	prefix      string
	renderer    render.Renderer
	widgets     map[string]widgets.Type
	attrs       map[string]map[string]any
	maskSecrets bool
}

// ResolveConfig folds the base configurations left to right (most general
// first) and applies own last, so declarations closer to the concrete form
// type win on a per-key basis. Pure: the inputs are not retained and the
// result holds its own copies.
func ResolveConfig(own Config, bases ...Config) *EffectiveConfig {
	effective := &EffectiveConfig{
		widgets: make(map[string]widgets.Type),
		attrs:   make(map[string]map[string]any),
	}
	for _, base := range bases {
		effective.apply(base)
	}
	effective.apply(own)

	if effective.renderer == nil {
		effective.renderer = render.NewString()
	}
	return effective
}

func (c *EffectiveConfig) apply(layer Config) {
	if layer.Prefix != "" {
		c.prefix = layer.Prefix
	}
	if layer.Renderer != nil {
		c.renderer = layer.Renderer
	}
	if layer.MaskSecrets {
		c.maskSecrets = true
	}
	for field, widget := range layer.Widgets {
		c.widgets[field] = widget
	}
	for field, attrs := range layer.Attrs {
		if len(attrs) == 0 {
			continue
		}
		merged, ok := c.attrs[field]
		if !ok {
			merged = make(map[string]any, len(attrs))
			c.attrs[field] = merged
		}
		maps.Copy(merged, attrs)
	}
}

// Prefix returns the controls prefix, empty by default.
func (c *EffectiveConfig) Prefix() string {
	return c.prefix
}

// Renderer returns the configured renderer.
func (c *EffectiveConfig) Renderer() render.Renderer {
	return c.renderer
}

// Widget returns the explicit widget-type override for a field, empty when
// the field has none.
func (c *EffectiveConfig) Widget(field string) widgets.Type {
	return c.widgets[field]
}

// FieldAttrs returns a copy of the extra widget attributes declared for a
// field.
func (c *EffectiveConfig) FieldAttrs(field string) map[string]any {
	attrs, ok := c.attrs[field]
	if !ok {
		return nil
	}
	return maps.Clone(attrs)
}

// MaskSecrets reports whether password widget values render masked.
func (c *EffectiveConfig) MaskSecrets() bool {
	return c.maskSecrets
}
