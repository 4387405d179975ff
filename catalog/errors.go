package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for error classification.
var (
	// ErrSchema indicates that call arguments violated a tool's schema.
	ErrSchema = errors.New("schema violation")

	// ErrToolNotFound indicates a lookup for a tool the catalogue does
	// not contain.
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolExists indicates an attempt to register a duplicate tool name.
	ErrToolExists = errors.New("tool already registered")
)

// TypeError records one mistyped argument.
type TypeError struct {
	// Field is the argument name.
	Field string

	// Want is the declared type.
	Want FieldType

	// Got describes the Go type that was supplied.
	Got string
}

func (e TypeError) String() string {
	return fmt.Sprintf("%s: want %s, got %s", e.Field, e.Want, e.Got)
}

// SchemaError reports every way a set of call arguments violated a tool's
// schema. It aggregates rather than failing fast so callers can surface all
// problems at once.
type SchemaError struct {
	// Tool is the tool whose schema was violated.
	Tool string

	// Missing lists required fields that were absent, in schema order.
	Missing []string

	// TypeErrors lists mistyped fields, in schema order.
	TypeErrors []TypeError

	// Unexpected lists supplied keys the schema does not declare, sorted.
	Unexpected []string
}

// Error returns a single-line summary of all violations.
func (e *SchemaError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing required %v", e.Missing))
	}
	for _, te := range e.TypeErrors {
		parts = append(parts, te.String())
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, fmt.Sprintf("unexpected %v", e.Unexpected))
	}
	return fmt.Sprintf("tool %q: %s: %s", e.Tool, ErrSchema, strings.Join(parts, "; "))
}

// Is reports whether this error matches the target.
// SchemaError matches ErrSchema to allow sentinel-style error checking.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// empty reports whether no violations were recorded.
func (e *SchemaError) empty() bool {
	return len(e.Missing) == 0 && len(e.TypeErrors) == 0 && len(e.Unexpected) == 0
}
