package gateway

import (
	"context"

	"github.com/jonwraymond/tooldiscovery/index"

	"github.com/jonwraymond/dbroute/backend"
	"github.com/jonwraymond/dbroute/catalog"
	"github.com/jonwraymond/dbroute/dispatch"
	"github.com/jonwraymond/dbroute/route"
)

// Gateway is the unified facade for query routing and tool dispatch.
// It is read-only after New and safe for concurrent use.
type Gateway struct {
	catalog    *catalog.Catalog
	conns      *backend.Registry
	router     *route.Router
	dispatcher *dispatch.Dispatcher
	index      index.Index
}

// New creates a Gateway with the given options. The catalogue is registered
// into the discovery index as part of construction.
func New(opts Options) (*Gateway, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.applyDefaults()

	dispatcher, err := dispatch.New(dispatch.Options{
		Catalog:      opts.Catalog,
		DefaultLimit: opts.DefaultLimit,
		Logger:       opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	if err := catalog.RegisterIndex(opts.Catalog, opts.Index); err != nil {
		return nil, err
	}

	return &Gateway{
		catalog:    opts.Catalog,
		conns:      opts.Connections,
		router:     opts.Router,
		dispatcher: dispatcher,
		index:      opts.Index,
	}, nil
}

// Route decides which backend should serve the query.
func (g *Gateway) Route(query string) route.Decision {
	return g.router.Route(query)
}

// ClassifyOperation determines the operation kind of a query.
func (g *Gateway) ClassifyOperation(query string) route.Op {
	return g.router.ClassifyOperation(query)
}

// IsWrite reports whether the query contains a write verb.
func (g *Gateway) IsWrite(query string) bool {
	return g.router.IsWrite(query)
}

// SuggestClarification produces a disambiguation prompt for the query.
func (g *Gateway) SuggestClarification(query string) string {
	return g.router.SuggestClarification(query)
}

// ListTools returns all catalogue specs in registration order.
func (g *Gateway) ListTools() []catalog.Spec {
	return g.catalog.List()
}

// SearchTools finds catalogue tools matching a query via the discovery
// index.
func (g *Gateway) SearchTools(ctx context.Context, query string, limit int) ([]index.Summary, error) {
	_ = ctx // reserved for future context-aware search
	return g.index.Search(query, limit)
}

// Invoke executes the named tool against the registered connection for
// kind. A missing connection surfaces as a backend-error failure on the
// result, never as a Go error.
func (g *Gateway) Invoke(ctx context.Context, kind backend.Kind, tool string, args map[string]any) dispatch.Result {
	conn, _ := g.conns.Get(kind)
	return g.dispatcher.Invoke(ctx, kind, tool, args, conn)
}

// Backends returns the static descriptions of the known stores.
func (g *Gateway) Backends() []backend.Info {
	return backend.DescribeAll()
}

// Catalog returns the underlying tool catalogue.
func (g *Gateway) Catalog() *catalog.Catalog {
	return g.catalog
}

// Index returns the underlying discovery index.
// This allows advanced usage patterns like registering extra tools.
func (g *Gateway) Index() index.Index {
	return g.index
}

// Resolution is the full classification of one query.
type Resolution struct {
	// Decision is the routing outcome.
	Decision route.Decision

	// Operation is the query's operation kind.
	Operation route.Op

	// Write reports whether the query contains a write verb.
	Write bool

	// NeedsClarification is set when routing was ambiguous.
	NeedsClarification bool

	// Clarification is the disambiguation prompt; empty unless
	// NeedsClarification is set.
	Clarification string
}

// Resolve classifies a query in one call: routing decision, operation
// kind, write flag, and a clarification prompt when the decision is
// ambiguous.
func (g *Gateway) Resolve(query string) Resolution {
	res := Resolution{
		Decision:  g.router.Route(query),
		Operation: g.router.ClassifyOperation(query),
		Write:     g.router.IsWrite(query),
	}
	if g.router.Ambiguous(query) {
		res.NeedsClarification = true
		res.Clarification = g.router.SuggestClarification(query)
	}
	return res
}
