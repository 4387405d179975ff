package dispatch

// Logger is an optional interface for observability during dispatch.
// The Dispatcher emits one line per invocation: tool name, backend kind,
// duration and record counts on success, failure kind and message otherwise.
//
// Contract:
// - Concurrency: Invoke may run from many goroutines; implementations must
//   be safe for concurrent use.
// - Errors: logging is best-effort and must not panic; a logging failure
//   never fails the invocation.
// - Ownership: format/args are read-only.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...any)
}
