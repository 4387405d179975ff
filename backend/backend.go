package backend

import (
	"context"
	"errors"
)

// Common errors for connection registry operations.
var (
	ErrConnectionExists = errors.New("connection already registered for backend")
	ErrUnknownKind      = errors.New("unknown backend kind")
)

// Kind identifies which external data store a query or tool targets.
// The set is closed at compile time.
type Kind string

const (
	// KindDocument is the document-oriented store.
	KindDocument Kind = "document"

	// KindRelational is the relational store.
	KindRelational Kind = "relational"

	// KindUnknown means routing could not determine a target. For catalogue
	// tools it doubles as the backend-agnostic affinity.
	KindUnknown Kind = "unknown"
)

// String returns the kind's wire name.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDocument, KindRelational, KindUnknown:
		return true
	default:
		return false
	}
}

// Connection is the capability a caller supplies to execute an operation
// against a store. Implementations wrap the real drivers (document-store
// session, relational session); this module never constructs one.
//
// Contract:
// - Context: Execute must honor cancellation/deadlines.
// - Errors: failures are returned, not panicked; the dispatcher still
//   recovers a panicking connection rather than crash the caller.
// - Concurrency: if an implementation is not safe for concurrent use,
//   serialization is the caller's responsibility, not the dispatcher's.
type Connection interface {
	// Execute runs a named operation with the given arguments and returns
	// the raw, driver-shaped result.
	Execute(ctx context.Context, operation string, args map[string]any) (any, error)
}

// ConnectionFunc adapts a function to the Connection interface.
type ConnectionFunc func(ctx context.Context, operation string, args map[string]any) (any, error)

// Execute calls f.
func (f ConnectionFunc) Execute(ctx context.Context, operation string, args map[string]any) (any, error) {
	return f(ctx, operation, args)
}
