package cache

import "sync"

// Invalidator is the part of a Query the registry needs.
type Invalidator interface {
	Invalidate()
}

// Registry maps resource keys to their cache entries so mutation handlers
// can invalidate by name without knowing the entry's element type.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Invalidator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Invalidator)}
}

// Register adds an entry under key, replacing any previous one.
func (r *Registry) Register(key string, inv Invalidator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = inv
}

// Invalidate marks the entry for key stale. Unknown keys are ignored.
func (r *Registry) Invalidate(key string) {
	r.mu.RLock()
	inv, ok := r.entries[key]
	r.mu.RUnlock()
	if ok {
		inv.Invalidate()
	}
}
