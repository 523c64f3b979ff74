// Package template renders widgets through pongo2 templates so applications
// can own the markup per control without reimplementing attribute handling.
package template

import (
	"fmt"
	"html"
	"strings"

	"github.com/flosch/pongo2/v6"
	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formbind/pkg/render"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

// DefaultTemplate mirrors the reference string renderer's output.
const DefaultTemplate = `<input {{ attrs }} />`

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	source  string
	globals map[string]any
}

// WithTemplate overrides the template source. The template receives "type"
// (the widget kind), "attrs" (the pre-rendered attribute string, already
// escaped), and "widget" (the raw attribute map).
func WithTemplate(source string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(source); trimmed != "" {
			cfg.source = source
		}
	}
}

// WithGlobals seeds context values available to every render.
func WithGlobals(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// WithGoTemplateOptions exists for compatibility with go-template based
// callers and is currently a no-op.
func WithGoTemplateOptions(_ ...gotemplatepkg.Option) Option {
	return func(*config) {}
}

// Renderer renders one widget per template execution.
type Renderer struct {
	template *pongo2.Template
	globals  pongo2.Context
}

var _ render.Renderer = (*Renderer)(nil)

// New compiles the template and constructs the renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{source: DefaultTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	compiled, err := pongo2.FromString(cfg.source)
	if err != nil {
		return nil, fmt.Errorf("template: compile: %w", err)
	}

	renderer := &Renderer{template: compiled}
	if len(cfg.globals) > 0 {
		renderer.globals = pongo2.Context(cfg.globals)
	}
	return renderer, nil
}

// Render implements render.Renderer.
func (r *Renderer) Render(widget *widgets.Instance) (string, error) {
	if widget == nil {
		return "", render.ErrNilWidget
	}

	ctx := pongo2.Context{}
	for key, value := range r.globals {
		ctx[key] = value
	}
	ctx["type"] = string(widget.Type)
	ctx["attrs"] = pongo2.AsSafeValue(attrString(widget))
	ctx["widget"] = widget.Attrs

	output, err := r.template.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("template: render %s widget: %w", widget.Type, err)
	}
	return output, nil
}

// attrString formats the attribute set the same way the reference renderer
// does: bare flags for boolean true, key="value" otherwise, nil and false
// omitted.
func attrString(widget *widgets.Instance) string {
	var parts []string
	for _, name := range widget.AttrNames() {
		switch v := widget.Attrs[name].(type) {
		case nil:
			continue
		case bool:
			if v {
				parts = append(parts, name)
			}
		case string:
			parts = append(parts, fmt.Sprintf("%s=%q", name, html.EscapeString(v)))
		default:
			parts = append(parts, fmt.Sprintf("%s=%q", name, html.EscapeString(fmt.Sprintf("%v", v))))
		}
	}
	return strings.Join(parts, " ")
}
