package backend

import (
	"fmt"
	"sync"
)

// Registry holds one connection per backend kind. It is a convenience for
// composition roots; the dispatcher itself takes a connection per call and
// never reaches into a registry.
type Registry struct {
	mu    sync.RWMutex
	conns map[Kind]Connection
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[Kind]Connection),
	}
}

// Register associates a connection with a backend kind.
func (r *Registry) Register(kind Kind, conn Connection) error {
	if !kind.Valid() || kind == KindUnknown {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if conn == nil {
		return fmt.Errorf("connection is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.conns[kind]; exists {
		return fmt.Errorf("%w: %s", ErrConnectionExists, kind)
	}
	r.conns[kind] = conn
	return nil
}

// Unregister removes the connection for a kind, if any.
func (r *Registry) Unregister(kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, kind)
}

// Get retrieves the connection for a kind.
func (r *Registry) Get(kind Kind) (Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.conns[kind]
	return c, ok
}

// Kinds returns the kinds with a registered connection, in a fixed order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Kind, 0, len(r.conns))
	for _, k := range []Kind{KindDocument, KindRelational} {
		if _, ok := r.conns[k]; ok {
			out = append(out, k)
		}
	}
	return out
}
