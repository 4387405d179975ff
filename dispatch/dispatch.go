package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonwraymond/dbroute/backend"
	"github.com/jonwraymond/dbroute/catalog"
)

// Dispatcher executes catalogue tools against backend connections. It is
// read-only after New and safe for concurrent use.
type Dispatcher struct {
	catalog      *catalog.Catalog
	defaultLimit int
	logger       Logger
}

// New creates a Dispatcher with the given options.
func New(opts Options) (*Dispatcher, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.applyDefaults()

	return &Dispatcher{
		catalog:      opts.Catalog,
		defaultLimit: opts.DefaultLimit,
		logger:       opts.Logger,
	}, nil
}

// Invoke executes the named tool against conn. It never returns an error
// and never panics: every failure mode is reported through Result.Failure.
// The connection's Execute method is called at most once per invocation.
func (d *Dispatcher) Invoke(ctx context.Context, kind backend.Kind, tool string, args map[string]any, conn backend.Connection) Result {
	result := Result{Tool: tool, Backend: kind}

	spec, err := d.catalog.Get(tool)
	if err != nil {
		return d.fail(result, &Failure{
			Kind:    KindUnknownTool,
			Message: err.Error(),
		})
	}

	if spec.Affinity != backend.KindUnknown && spec.Affinity != kind {
		return d.fail(result, &Failure{
			Kind:    KindBackendMismatch,
			Message: fmt.Sprintf("tool %q is bound to %s, invoked against %s", tool, spec.Affinity, kind),
		})
	}

	normalized, err := d.catalog.Validate(tool, args)
	if err != nil {
		var serr *catalog.SchemaError
		errors.As(err, &serr)
		return d.fail(result, &Failure{
			Kind:    KindSchema,
			Message: err.Error(),
			Schema:  serr,
		})
	}

	if conn == nil {
		return d.fail(result, &Failure{
			Kind:    KindBackendError,
			Message: fmt.Sprintf("no connection for backend %s", kind),
		})
	}

	payload, duration, err := d.execute(ctx, conn, tool, normalized)
	result.Duration = duration
	if err != nil {
		fk := KindBackendError
		if errors.Is(err, context.DeadlineExceeded) {
			fk = KindTimeout
		}
		return d.fail(result, &Failure{Kind: fk, Message: err.Error()})
	}

	result.Payload = payload
	if records, ok := collectRecords(payload); ok {
		result.Records, result.Truncated = truncate(records, effectiveLimit(normalized, d.defaultLimit))
	}

	d.logf("dispatch: tool=%s backend=%s duration=%s records=%d truncated=%v",
		tool, kind, result.Duration, len(result.Records), result.Truncated)
	return result
}

// execute runs the connection call with panic containment. A panicking
// connection surfaces as an ordinary error.
func (d *Dispatcher) execute(ctx context.Context, conn backend.Connection, tool string, args map[string]any) (payload any, duration time.Duration, err error) {
	start := time.Now()
	defer func() {
		duration = time.Since(start)
		if r := recover(); r != nil {
			payload = nil
			err = fmt.Errorf("connection panic: %v", r)
		}
	}()

	payload, err = conn.Execute(ctx, tool, args)
	return payload, time.Since(start), err
}

func (d *Dispatcher) fail(result Result, f *Failure) Result {
	result.Failure = f
	d.logf("dispatch: tool=%s backend=%s failed: %s: %s", result.Tool, result.Backend, f.Kind, f.Message)
	return result
}

func (d *Dispatcher) logf(format string, args ...any) {
	if d.logger != nil {
		d.logger.Logf(format, args...)
	}
}
