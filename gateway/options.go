package gateway

import (
	"errors"

	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/tooldiscovery/search"

	"github.com/jonwraymond/dbroute/backend"
	"github.com/jonwraymond/dbroute/catalog"
	"github.com/jonwraymond/dbroute/dispatch"
	"github.com/jonwraymond/dbroute/route"
)

// Errors returned by Options validation.
var (
	ErrConnectionsRequired = errors.New("gateway: Connections registry is required")
)

// Options configures a Gateway.
type Options struct {
	// Connections holds the backend connections invocations run against.
	// Required.
	Connections *backend.Registry

	// Catalog is the tool catalogue.
	// Default: catalog.Default().
	Catalog *catalog.Catalog

	// Router classifies queries.
	// Default: route.New().
	Router *route.Router

	// Index is the discovery index the catalogue is registered into.
	// Default: an in-memory index with a BM25 searcher.
	Index index.Index

	// DefaultLimit caps dispatched record sets when a call carries no
	// limit argument. Default: dispatch.DefaultLimit.
	DefaultLimit int

	// Logger is an optional logger for observability.
	Logger dispatch.Logger
}

// validate checks that required fields are set.
func (o *Options) validate() error {
	if o.Connections == nil {
		return ErrConnectionsRequired
	}
	return nil
}

// applyDefaults sets default values for unset optional fields.
func (o *Options) applyDefaults() {
	if o.Catalog == nil {
		o.Catalog = catalog.Default()
	}
	if o.Router == nil {
		o.Router = route.New()
	}
	if o.Index == nil {
		o.Index = index.NewInMemoryIndex(index.IndexOptions{
			Searcher: search.NewBM25Searcher(search.BM25Config{}),
		})
	}
	if o.DefaultLimit <= 0 {
		o.DefaultLimit = dispatch.DefaultLimit
	}
}
