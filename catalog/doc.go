// Package catalog defines the schema-typed tool catalogue: the set of named
// operations a dispatcher may invoke against a backing store, each with a
// declared argument schema.
//
// # Specs
//
// A Spec describes one tool: its name, the backend kind it is bound to
// (Affinity), and its argument fields. Fields carry a FieldType, an optional
// default, and a required flag. Specs are plain data; they perform no I/O.
//
// # Catalogue
//
// A Catalog holds registered Specs and validates call arguments against
// them. Validation is strict: missing required fields, mistyped values, and
// unexpected keys are all rejected with a field-level *SchemaError.
// Arguments are never coerced; defaults are substituted only for absent
// optional fields.
//
// Default returns the built-in catalogue covering the document store and
// the relational store.
//
// # Discovery export
//
// Specs convert to the tool model used by the discovery index via
// Spec.ModelTool, and RegisterIndex loads an entire catalogue into an
// index.Index so callers can search tools by description.
package catalog
