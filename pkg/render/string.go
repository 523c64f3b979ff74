package render

import (
	"errors"
	"fmt"
	"html"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbind/pkg/widgets"
)

// ErrNilWidget is returned when a renderer receives a nil widget instance.
var ErrNilWidget = errors.New("render: nil widget instance")

// Option customises the string renderer.
type Option func(*String)

// WithSanitizer strips markup from rendered attribute values using the
// supplied bluemonday policy. Pass nil to use the strict policy.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(r *String) {
		if policy == nil {
			policy = bluemonday.StrictPolicy()
		}
		r.sanitizer = policy
	}
}

// WithTheme injects a CSS class from a go-theme renderer configuration. The
// token keyed by the widget kind wins; the "input" token is the fallback. A
// class the widget already carries is left alone.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *String) {
		r.theme = cfg
	}
}

// String is the reference renderer: one self-closing input tag, boolean-true
// attributes as bare flags, everything else as key="value" pairs. Attributes
// whose value is nil, false, or an empty optional are omitted.
type String struct {
	sanitizer *bluemonday.Policy
	theme     *theme.RendererConfig
}

// NewString constructs the reference string renderer.
func NewString(options ...Option) *String {
	r := &String{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Render implements Renderer.
func (r *String) Render(widget *widgets.Instance) (string, error) {
	if widget == nil {
		return "", ErrNilWidget
	}

	var builder strings.Builder
	builder.WriteString("<input")

	for _, name := range r.attrNames(widget) {
		value := r.attrValue(widget, name)
		switch v := value.(type) {
		case nil:
			continue
		case bool:
			if !v {
				continue
			}
			builder.WriteByte(' ')
			builder.WriteString(name)
		default:
			builder.WriteByte(' ')
			builder.WriteString(name)
			builder.WriteString(`="`)
			builder.WriteString(html.EscapeString(r.formatAttr(v)))
			builder.WriteString(`"`)
		}
	}

	builder.WriteString(" />")
	return builder.String(), nil
}

func (r *String) attrNames(widget *widgets.Instance) []string {
	names := widget.AttrNames()
	if class := r.themeClass(widget); class != "" {
		if _, ok := widget.Attrs["class"]; !ok {
			names = append(names, "class")
		}
	}
	return names
}

func (r *String) attrValue(widget *widgets.Instance, name string) any {
	if value, ok := widget.Attrs[name]; ok {
		return value
	}
	if name == "class" {
		if class := r.themeClass(widget); class != "" {
			return class
		}
	}
	return nil
}

func (r *String) themeClass(widget *widgets.Instance) string {
	if r.theme == nil || len(r.theme.Tokens) == 0 {
		return ""
	}
	if class := r.theme.Tokens[string(widget.Type)]; class != "" {
		return class
	}
	return r.theme.Tokens["input"]
}

func (r *String) formatAttr(value any) string {
	text, ok := value.(string)
	if !ok {
		text = fmt.Sprintf("%v", value)
	}
	if r.sanitizer != nil {
		text = r.sanitizer.Sanitize(text)
	}
	return text
}
