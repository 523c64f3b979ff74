package openapi

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbind/pkg/schema"
	"github.com/goliatone/go-formbind/pkg/widgets"
)

// Violation kinds the engine reports alongside the kin-openapi schema-field
// kinds (minimum, maximum, pattern, enum, ...).
const (
	ViolationRequired = "required"
	ViolationType     = "type"
)

// ErrSchemaKind is returned when the engine is handed a schema this package
// did not build. It is an engine malfunction, not a validation failure.
var ErrSchemaKind = errors.New("openapi: engine requires a schema built by this package")

// Engine validates raw field mappings against an adapter-built Schema. Raw
// values may be typed (decoded JSON) or strings (HTML form submissions);
// the engine coerces per field type before enforcing constraints through
// kin-openapi. The zero value is ready to use.
type Engine struct{}

var _ schema.Engine = Engine{}

// NewEngine returns a ready engine.
func NewEngine() Engine {
	return Engine{}
}

// Validate implements schema.Engine. Declared fields only: unknown raw keys
// are ignored. Absent optional fields take their schema default when one is
// declared; absent required fields violate. On any violation the full
// ordered set is returned as schema.Violations.
func (Engine) Validate(s schema.Schema, values map[string]any) (schema.Value, error) {
	adapted, ok := s.(*Schema)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrSchemaKind, s)
	}

	var violations schema.Violations
	out := make(map[string]any, len(adapted.fields))

	for _, field := range adapted.fields {
		raw, present := values[field.Name]
		if !present {
			if field.Default != nil {
				if typed, violation := coerce(field, field.Default); violation == nil {
					out[field.Name] = typed
				}
				continue
			}
			if field.Required {
				violations = append(violations, schema.Violation{
					Field:   field.Name,
					Kind:    ViolationRequired,
					Message: fmt.Sprintf("field %q is required", field.Name),
				})
			}
			continue
		}

		typed, violation := coerce(field, raw)
		if violation != nil {
			violations = append(violations, *violation)
			continue
		}

		if errs := checkConstraints(adapted.property(field.Name), field, typed); len(errs) > 0 {
			violations = append(violations, errs...)
			continue
		}
		out[field.Name] = typed
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return &Record{schemaName: adapted.name, values: out}, nil
}

// checkConstraints runs the property's own validation (bounds, pattern,
// enum, lengths) via kin-openapi. Boolean and temporal fields carry no
// constraints kin-openapi can express beyond the type itself.
func checkConstraints(prop *openapi3.Schema, field schema.Field, typed any) schema.Violations {
	if prop == nil {
		return nil
	}

	var value any
	switch field.Type {
	case schema.FieldTypeInteger:
		value = float64(typed.(int64))
	case schema.FieldTypeNumber:
		value = typed.(float64)
	case schema.FieldTypeString:
		value = typed.(string)
	case schema.FieldTypeSecret:
		value = typed.(schema.Secret).Reveal()
	default:
		return nil
	}

	err := prop.VisitJSON(value, openapi3.MultiErrors())
	if err == nil {
		return nil
	}
	return violationsFromErr(field.Name, err)
}

func violationsFromErr(fieldName string, err error) schema.Violations {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var out schema.Violations
		for _, nested := range multi {
			out = append(out, violationsFromErr(fieldName, nested)...)
		}
		return out
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		kind := schemaErr.SchemaField
		if kind == "" {
			kind = "invalid"
		}
		message := schemaErr.Reason
		if message == "" {
			message = schemaErr.Error()
		}
		return schema.Violations{{Field: fieldName, Kind: kind, Message: message}}
	}

	return schema.Violations{{Field: fieldName, Kind: "invalid", Message: err.Error()}}
}

// coerce converts one raw value to the field's typed form. String inputs are
// parsed the way HTML form submissions arrive; already-typed inputs pass
// through. Failure produces a type violation, never an error.
func coerce(field schema.Field, raw any) (any, *schema.Violation) {
	switch field.Type {
	case schema.FieldTypeBoolean:
		return coerceBool(field, raw)
	case schema.FieldTypeInteger:
		return coerceInt(field, raw)
	case schema.FieldTypeNumber:
		return coerceFloat(field, raw)
	case schema.FieldTypeDate:
		return coerceTime(field, raw, widgets.LayoutDate)
	case schema.FieldTypeTime:
		return coerceTime(field, raw, widgets.LayoutTime)
	case schema.FieldTypeDateTime:
		return coerceTime(field, raw, widgets.LayoutDateTime)
	case schema.FieldTypeSecret:
		return coerceSecret(field, raw)
	default:
		return coerceString(field, raw)
	}
}

func coerceBool(field schema.Field, raw any) (any, *schema.Violation) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "on", "yes":
			return true, nil
		case "false", "0", "off", "no", "":
			return false, nil
		}
	case float64:
		return v != 0, nil
	case int:
		return v != 0, nil
	}
	return nil, typeViolation(field, raw, "boolean")
}

func coerceInt(field schema.Field, raw any) (any, *schema.Violation) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return nil, typeViolation(field, raw, "integer")
		}
		return int64(v), nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, typeViolation(field, raw, "integer")
		}
		return parsed, nil
	}
	return nil, typeViolation(field, raw, "integer")
}

func coerceFloat(field schema.Field, raw any) (any, *schema.Violation) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, typeViolation(field, raw, "number")
		}
		return parsed, nil
	}
	return nil, typeViolation(field, raw, "number")
}

func coerceTime(field schema.Field, raw any, layout string) (any, *schema.Violation) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
		if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
			return parsed, nil
		}
	}
	return nil, typeViolation(field, raw, string(field.Type))
}

func coerceSecret(field schema.Field, raw any) (any, *schema.Violation) {
	switch v := raw.(type) {
	case schema.Secret:
		return v, nil
	case string:
		return schema.Secret(v), nil
	}
	return nil, typeViolation(field, raw, "secret")
}

func coerceString(field schema.Field, raw any) (any, *schema.Violation) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case bool, int, int64, float64:
		return fmt.Sprintf("%v", v), nil
	}
	return nil, typeViolation(field, raw, "string")
}

func typeViolation(field schema.Field, raw any, want string) *schema.Violation {
	return &schema.Violation{
		Field:   field.Name,
		Kind:    ViolationType,
		Message: fmt.Sprintf("field %q: cannot interpret %v as %s", field.Name, raw, want),
	}
}
