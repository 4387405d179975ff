package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jonwraymond/dbroute/backend"
)

// Catalog is a registry of tool specs keyed by name. The zero value is not
// usable; construct with New. A Catalog is safe for concurrent use.
type Catalog struct {
	mu    sync.RWMutex
	specs map[string]Spec
	order []string
}

// New creates an empty catalogue.
func New() *Catalog {
	return &Catalog{specs: make(map[string]Spec)}
}

// Register adds a spec to the catalogue. It returns ErrToolExists for a
// duplicate name and a structural error for a malformed spec. An empty
// affinity is normalized to backend.KindUnknown (agnostic).
func (c *Catalog) Register(spec Spec) error {
	if spec.Affinity == "" {
		spec.Affinity = backend.KindUnknown
	}
	if err := spec.validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.specs[spec.Name]; ok {
		return fmt.Errorf("tool %q: %w", spec.Name, ErrToolExists)
	}
	c.specs[spec.Name] = spec
	c.order = append(c.order, spec.Name)
	return nil
}

// Get returns the spec registered under name.
func (c *Catalog) Get(name string) (Spec, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	spec, ok := c.specs[name]
	if !ok {
		return Spec{}, fmt.Errorf("tool %q: %w", name, ErrToolNotFound)
	}
	return spec, nil
}

// List returns all registered specs in registration order.
func (c *Catalog) List() []Spec {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Spec, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.specs[name])
	}
	return out
}

// Len returns the number of registered specs.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Validate checks args against the named tool's schema and returns a new
// argument map with defaults substituted for absent optional fields. The
// input map is never modified. Violations are reported through a
// *SchemaError that matches ErrSchema; an unknown tool returns
// ErrToolNotFound.
func (c *Catalog) Validate(name string, args map[string]any) (map[string]any, error) {
	spec, err := c.Get(name)
	if err != nil {
		return nil, err
	}

	verr := &SchemaError{Tool: name}
	normalized := make(map[string]any, len(spec.Fields))

	declared := make(map[string]bool, len(spec.Fields))
	for _, f := range spec.Fields {
		declared[f.Name] = true
		value, ok := args[f.Name]
		if !ok || value == nil {
			switch {
			case f.Required:
				verr.Missing = append(verr.Missing, f.Name)
			case f.Default != nil:
				normalized[f.Name] = f.Default
			}
			continue
		}
		if !matchesType(value, f.Type) {
			verr.TypeErrors = append(verr.TypeErrors, TypeError{
				Field: f.Name,
				Want:  f.Type,
				Got:   fmt.Sprintf("%T", value),
			})
			continue
		}
		normalized[f.Name] = value
	}

	for key := range args {
		if !declared[key] {
			verr.Unexpected = append(verr.Unexpected, key)
		}
	}
	sort.Strings(verr.Unexpected)

	if !verr.empty() {
		return nil, verr
	}
	return normalized, nil
}
