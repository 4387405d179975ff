package catalog

import (
	"fmt"

	"github.com/jonwraymond/dbroute/backend"
)

// FieldType is the declared type of a tool argument, following JSON type
// conventions.
type FieldType string

const (
	TypeString FieldType = "string"
	TypeInt    FieldType = "integer"
	TypeFloat  FieldType = "number"
	TypeBool   FieldType = "boolean"
	TypeObject FieldType = "object"
	TypeArray  FieldType = "array"
)

// String returns the JSON-schema name of the type.
func (t FieldType) String() string {
	return string(t)
}

// Valid reports whether t is one of the declared field types.
func (t FieldType) Valid() bool {
	switch t {
	case TypeString, TypeInt, TypeFloat, TypeBool, TypeObject, TypeArray:
		return true
	}
	return false
}

// Field describes one argument of a tool.
type Field struct {
	// Name is the argument key.
	Name string

	// Type is the declared argument type.
	Type FieldType

	// Description documents the argument for discovery and prompting.
	Description string

	// Default is substituted when an optional field is absent.
	// Must be nil for required fields.
	Default any

	// Required marks the field as mandatory.
	Required bool
}

// Spec describes one tool in the catalogue.
type Spec struct {
	// Name uniquely identifies the tool within a catalogue.
	Name string

	// Description documents what the tool does.
	Description string

	// Affinity is the backend kind the tool is bound to.
	// backend.KindUnknown marks the tool as backend-agnostic; Register
	// normalizes an empty value to it.
	Affinity backend.Kind

	// Fields declares the tool's arguments, in schema order.
	Fields []Field
}

// validate checks structural soundness of the spec itself: a usable name,
// well-formed fields, and defaults that match their declared types.
func (s Spec) validate() error {
	if s.Name == "" {
		return fmt.Errorf("tool spec has no name")
	}
	if s.Affinity != backend.KindUnknown && !s.Affinity.Valid() {
		return fmt.Errorf("tool %q: invalid affinity %q", s.Name, s.Affinity)
	}

	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("tool %q: field with no name", s.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("tool %q: duplicate field %q", s.Name, f.Name)
		}
		seen[f.Name] = true
		if !f.Type.Valid() {
			return fmt.Errorf("tool %q: field %q has invalid type %q", s.Name, f.Name, f.Type)
		}
		if f.Required && f.Default != nil {
			return fmt.Errorf("tool %q: required field %q has a default", s.Name, f.Name)
		}
		if f.Default != nil && !matchesType(f.Default, f.Type) {
			return fmt.Errorf("tool %q: field %q default %v does not match type %s",
				s.Name, f.Name, f.Default, f.Type)
		}
	}
	return nil
}

// InputSchema renders the spec's fields as a JSON-schema object of the shape
// MCP tools declare.
func (s Spec) InputSchema() map[string]any {
	properties := make(map[string]any, len(s.Fields))
	var required []string
	for _, f := range s.Fields {
		prop := map[string]any{
			"type":        f.Type.String(),
			"description": f.Description,
		}
		if f.Default != nil {
			prop["default"] = f.Default
		}
		properties[f.Name] = prop
		if f.Required {
			required = append(required, f.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
