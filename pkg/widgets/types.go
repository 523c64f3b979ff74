// Package widgets resolves schema fields into renderable input controls. A
// widget is a closed, serialisable attribute set; everything behavioural
// (validation, markup) happens elsewhere.
package widgets

import (
	"slices"
)

// Type identifies a widget kind. The set is closed; renderers that need
// custom controls register per-field overrides in the form configuration
// instead of extending it.
type Type string

const (
	TypeText     Type = "text"
	TypeCheckbox Type = "checkbox"
	TypeNumber   Type = "number"
	TypeDate     Type = "date"
	TypeTime     Type = "time"
	TypeDateTime Type = "datetime"
	TypePassword Type = "password"
)

// HTMLType returns the HTML input type attribute for the widget kind. The
// datetime kind maps to datetime-local, the only variant browsers accept.
func (t Type) HTMLType() string {
	if t == TypeDateTime {
		return "datetime-local"
	}
	return string(t)
}

// Valid reports whether t is one of the declared widget kinds.
func (t Type) Valid() bool {
	switch t {
	case TypeText, TypeCheckbox, TypeNumber, TypeDate, TypeTime, TypeDateTime, TypePassword:
		return true
	}
	return false
}

// Display layouts per temporal widget kind.
const (
	LayoutDate     = "2006-01-02"
	LayoutTime     = "15:04:05"
	LayoutDateTime = "2006-01-02T15:04:05"
)

// Layout returns the display format for temporal widget kinds and the empty
// string for everything else.
func (t Type) Layout() string {
	switch t {
	case TypeDate:
		return LayoutDate
	case TypeTime:
		return LayoutTime
	case TypeDateTime:
		return LayoutDateTime
	}
	return ""
}

// Instance is one resolved widget: its kind plus the finished attribute set.
// Instances are frozen once built; renderers read Attrs but must not mutate
// it.
type Instance struct {
	Type  Type
	Attrs map[string]any
}

// Attr returns the named attribute, nil when absent.
func (i *Instance) Attr(name string) any {
	if i == nil {
		return nil
	}
	return i.Attrs[name]
}

// Well-known attributes rendered before everything else so output stays
// stable across runs.
var canonicalAttrOrder = []string{
	"type", "name", "id", "value", "checked", "required",
	"min", "max", "step", "format", "placeholder", "class",
}

// AttrNames returns the attribute keys in canonical order: well-known keys
// first, the remainder sorted.
func (i *Instance) AttrNames() []string {
	if i == nil || len(i.Attrs) == 0 {
		return nil
	}
	names := make([]string, 0, len(i.Attrs))
	for _, known := range canonicalAttrOrder {
		if _, ok := i.Attrs[known]; ok {
			names = append(names, known)
		}
	}
	rest := make([]string, 0, len(i.Attrs))
	for name := range i.Attrs {
		if !slices.Contains(canonicalAttrOrder, name) {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	return append(names, rest...)
}
