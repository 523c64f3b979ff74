package widgets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formbind/pkg/schema"
)

// Infer maps a field type tag to a widget kind. The match order is fixed:
// boolean is checked ahead of the numeric kinds because some schema systems
// classify booleans as 0/1 numerics, and a boolean field must never resolve
// to a number control.
func Infer(t schema.FieldType) Type {
	switch t {
	case schema.FieldTypeBoolean:
		return TypeCheckbox
	case schema.FieldTypeInteger, schema.FieldTypeNumber:
		return TypeNumber
	case schema.FieldTypeDate:
		return TypeDate
	case schema.FieldTypeTime:
		return TypeTime
	case schema.FieldTypeDateTime:
		return TypeDateTime
	case schema.FieldTypeSecret:
		return TypePassword
	}
	return TypeText
}

// BuildOptions carry the configuration slice relevant to one field: the form
// prefix, an explicit widget override (empty means infer from the type tag),
// extra attributes declared for the field, and the secret masking switch.
type BuildOptions struct {
	Prefix      string
	Override    Type
	Extra       map[string]any
	MaskSecrets bool
}

// Build constructs the widget instance for a field holding the given current
// value. An explicit override always wins over type inference; extra
// attributes from configuration win over the widget's own defaults.
func Build(field schema.Field, value any, opts BuildOptions) *Instance {
	kind := opts.Override
	if kind == "" {
		kind = Infer(field.Type)
	}

	name := opts.Prefix + field.Name
	attrs := map[string]any{
		"type":     kind.HTMLType(),
		"name":     name,
		"id":       "id_" + name,
		"required": field.Required,
	}

	if kind == TypeCheckbox {
		attrs["checked"] = truthy(value)
	} else {
		attrs["value"] = formatValue(kind, value, opts.MaskSecrets)
	}

	if kind == TypeNumber {
		if field.Minimum != nil {
			attrs["min"] = formatBound(*field.Minimum)
		}
		if field.Maximum != nil {
			attrs["max"] = formatBound(*field.Maximum)
		}
	}

	for key, extra := range opts.Extra {
		attrs[key] = extra
	}

	return &Instance{Type: kind, Attrs: attrs}
}

// formatValue renders a field value for display. Absent values become the
// empty string; temporal values use the widget's display layout; secrets are
// revealed as literal text unless masking is enabled, matching the library's
// documented behaviour.
func formatValue(kind Type, value any, maskSecrets bool) string {
	if value == nil {
		return ""
	}

	if kind == TypePassword {
		if secret, ok := value.(schema.Secret); ok {
			if maskSecrets {
				return secret.String()
			}
			return secret.Reveal()
		}
	}

	if layout := kind.Layout(); layout != "" {
		if ts, ok := value.(time.Time); ok {
			return ts.Format(layout)
		}
	}

	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatBound(bound float64) string {
	return strconv.FormatFloat(bound, 'f', -1, 64)
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "on", "yes":
			return true
		}
		return false
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	}
	return false
}
