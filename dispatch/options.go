package dispatch

import (
	"errors"

	"github.com/jonwraymond/dbroute/catalog"
)

// DefaultLimit is the record cap applied when neither the tool's arguments
// nor the Options specify one.
const DefaultLimit = 100

// Errors returned by Options validation.
var (
	ErrCatalogRequired = errors.New("dispatch: Catalog is required")
)

// Options configures a Dispatcher.
type Options struct {
	// Catalog resolves tool names to specs and validates arguments.
	// Required.
	Catalog *catalog.Catalog

	// DefaultLimit caps Records when the call carries no limit argument.
	// Default: 100.
	DefaultLimit int

	// Logger is an optional logger for observability.
	Logger Logger
}

// validate checks that required fields are set.
func (o *Options) validate() error {
	if o.Catalog == nil {
		return ErrCatalogRequired
	}
	return nil
}

// applyDefaults sets default values for unset optional fields.
func (o *Options) applyDefaults() {
	if o.DefaultLimit <= 0 {
		o.DefaultLimit = DefaultLimit
	}
}
