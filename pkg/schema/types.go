package schema

// FieldType is the closed enumeration of form-friendly field kinds. Widget
// inference dispatches on it; anything a schema cannot classify should be
// reported as FieldTypeString.
type FieldType string

const (
	FieldTypeString   FieldType = "string"
	FieldTypeInteger  FieldType = "integer"
	FieldTypeNumber   FieldType = "number"
	FieldTypeBoolean  FieldType = "boolean"
	FieldTypeDate     FieldType = "date"
	FieldTypeTime     FieldType = "time"
	FieldTypeDateTime FieldType = "datetime"
	FieldTypeSecret   FieldType = "secret"
)

// Field is the static, schema-derived descriptor for one named value. Owned
// by the schema; binders and widget builders only read it.
type Field struct {
	Name     string            `json:"name"`
	Type     FieldType         `json:"type"`
	Required bool              `json:"required"`
	Default  any               `json:"default,omitempty"`
	Minimum  *float64          `json:"minimum,omitempty"`
	Maximum  *float64          `json:"maximum,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}
