// Package dispatch executes catalogue tools against backend connections.
//
// # Dispatcher
//
// A Dispatcher binds a tool catalogue to a default result limit and an
// optional logger. Invoke resolves the tool, checks its backend affinity,
// validates arguments against the schema, and makes exactly one Execute
// call on the supplied connection. There are no retries and no caching.
//
// # Failures
//
// Every failure is a value: Result.Failure carries a FailureKind
// (unknown tool, backend mismatch, schema violation, backend error,
// timeout) and, for schema violations, the field-level *catalog.SchemaError.
// A panicking connection is recovered into a backend-error failure and
// never propagates to the caller.
//
// # Normalization
//
// Collection-shaped payloads are projected into Result.Records and
// truncated to the caller's limit argument, or the dispatcher's default
// when the tool declares no limit. Result.Truncated reports whether rows
// were dropped. Scalar payloads pass through untouched in Result.Payload.
package dispatch
