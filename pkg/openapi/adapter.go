// Package openapi ships the batteries-included collaborators for the binding
// core: a schema adapter that turns an OpenAPI object schema into field
// descriptors and a validation engine that enforces its constraints through
// kin-openapi.
package openapi

import (
	"fmt"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbind/pkg/schema"
)

// Schema adapts one OpenAPI object schema to the schema.Schema contract.
// Fields are ordered by property name so widget iteration stays
// deterministic.
type Schema struct {
	name   string
	fields []schema.Field
	index  map[string]int
	props  map[string]*openapi3.Schema
}

var _ schema.Schema = (*Schema)(nil)

// FromSchema builds a Schema from an openapi3 object schema. Only object
// schemas with at least one property can back a form.
func FromSchema(name string, src *openapi3.Schema) (*Schema, error) {
	if src == nil {
		return nil, fmt.Errorf("openapi: schema %q: nil source", name)
	}
	if src.Type != nil && !src.Type.Is(openapi3.TypeObject) {
		return nil, fmt.Errorf("openapi: schema %q: expected an object schema, got %s", name, firstType(src.Type))
	}
	if len(src.Properties) == 0 {
		return nil, fmt.Errorf("openapi: schema %q: object schema has no properties", name)
	}

	required := make(map[string]bool, len(src.Required))
	for _, field := range src.Required {
		required[field] = true
	}

	names := make([]string, 0, len(src.Properties))
	for propName := range src.Properties {
		names = append(names, propName)
	}
	slices.Sort(names)

	built := &Schema{
		name:  name,
		index: make(map[string]int, len(names)),
		props: make(map[string]*openapi3.Schema, len(names)),
	}
	for _, propName := range names {
		ref := src.Properties[propName]
		if ref == nil || ref.Value == nil {
			return nil, fmt.Errorf("openapi: schema %q: property %q is unresolved", name, propName)
		}
		prop := ref.Value
		field := schema.Field{
			Name:     propName,
			Type:     fieldType(prop),
			Required: required[propName],
			Default:  prop.Default,
		}
		if prop.Min != nil {
			value := *prop.Min
			field.Minimum = &value
		}
		if prop.Max != nil {
			value := *prop.Max
			field.Maximum = &value
		}
		built.index[propName] = len(built.fields)
		built.fields = append(built.fields, field)
		built.props[propName] = prop
	}
	return built, nil
}

// FromRef builds a Schema from a resolved schema reference.
func FromRef(name string, ref *openapi3.SchemaRef) (*Schema, error) {
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: schema %q: unresolved reference", name)
	}
	return FromSchema(name, ref.Value)
}

// Name implements schema.Schema.
func (s *Schema) Name() string {
	return s.name
}

// Fields implements schema.Schema, declaration order preserved.
func (s *Schema) Fields() []schema.Field {
	return slices.Clone(s.fields)
}

// Field implements schema.Schema.
func (s *Schema) Field(name string) (schema.Field, bool) {
	idx, ok := s.index[name]
	if !ok {
		return schema.Field{}, false
	}
	return s.fields[idx], true
}

func (s *Schema) property(name string) *openapi3.Schema {
	return s.props[name]
}

// fieldType maps an OpenAPI type/format pair onto the closed field-type
// enumeration. Unclassifiable properties fall back to the generic string tag.
func fieldType(prop *openapi3.Schema) schema.FieldType {
	switch {
	case prop.Type.Is(openapi3.TypeBoolean):
		return schema.FieldTypeBoolean
	case prop.Type.Is(openapi3.TypeInteger):
		return schema.FieldTypeInteger
	case prop.Type.Is(openapi3.TypeNumber):
		return schema.FieldTypeNumber
	case prop.Type.Is(openapi3.TypeString):
		switch prop.Format {
		case "date":
			return schema.FieldTypeDate
		case "time":
			return schema.FieldTypeTime
		case "date-time":
			return schema.FieldTypeDateTime
		case "password":
			return schema.FieldTypeSecret
		}
		return schema.FieldTypeString
	}
	return schema.FieldTypeString
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
