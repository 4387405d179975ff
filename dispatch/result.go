package dispatch

import (
	"time"

	"github.com/jonwraymond/dbroute/backend"
	"github.com/jonwraymond/dbroute/catalog"
)

// FailureKind classifies why an invocation failed.
type FailureKind string

const (
	// KindUnknownTool means the catalogue has no tool by that name.
	KindUnknownTool FailureKind = "unknown tool"

	// KindBackendMismatch means the tool is bound to a different backend
	// kind than the one it was invoked against.
	KindBackendMismatch FailureKind = "backend mismatch"

	// KindSchema means the arguments violated the tool's schema.
	KindSchema FailureKind = "schema violation"

	// KindBackendError means the connection returned an error or panicked.
	KindBackendError FailureKind = "backend error"

	// KindTimeout means the connection reported a deadline overrun.
	KindTimeout FailureKind = "timeout"
)

// String returns the failure kind's wire name.
func (k FailureKind) String() string {
	return string(k)
}

// Failure describes a failed invocation. Failures are values, never
// panics; the zero Failure is not meaningful.
type Failure struct {
	// Kind classifies the failure.
	Kind FailureKind

	// Message is a human-readable description.
	Message string

	// Schema carries field-level detail for KindSchema failures,
	// nil otherwise.
	Schema *catalog.SchemaError
}

// Result is the outcome of a single invocation.
type Result struct {
	// Tool is the invoked tool name.
	Tool string

	// Backend is the kind the invocation targeted.
	Backend backend.Kind

	// Payload is the raw value returned by the connection.
	Payload any

	// Records holds the row projection of a collection-shaped payload,
	// truncated to the effective limit. Nil for scalar payloads.
	Records []map[string]any

	// Truncated reports whether Records dropped rows to honor the limit.
	Truncated bool

	// Duration is how long the connection's Execute call took. Zero when
	// the invocation failed before reaching the connection.
	Duration time.Duration

	// Failure is non-nil if the invocation failed.
	Failure *Failure
}

// OK reports whether the invocation succeeded.
func (r Result) OK() bool {
	return r.Failure == nil
}
