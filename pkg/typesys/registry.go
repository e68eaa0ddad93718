package typesys

// ABOUTME: Thread-safe name-to-descriptor registry with a singleton type index
// ABOUTME: Central registration and lookup mechanism backing search contexts

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry is the central registration and lookup mechanism for loadable
// types. Search contexts resolve fully-qualified names through a Registry,
// and the bean builder resolves receiver slots against its singleton index.
type Registry struct {
	mu         sync.RWMutex
	entries    map[string]*Descriptor
	singletons map[reflect.Type]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:    make(map[string]*Descriptor),
		singletons: make(map[reflect.Type]*Descriptor),
	}
}

// Register adds a descriptor to the registry.
func (r *Registry) Register(d *Descriptor) error {
	if d == nil {
		return fmt.Errorf("descriptor cannot be nil")
	}
	if d.name == "" {
		return fmt.Errorf("descriptor name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[d.name]; exists {
		return fmt.Errorf("type '%s' is already registered", d.name)
	}

	r.entries[d.name] = d
	if d.hasSingleton {
		r.singletons[d.typ] = d
	}
	return nil
}

// Get retrieves a descriptor by fully-qualified name.
func (r *Registry) Get(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.entries[name]
	return d, exists
}

// MustGet retrieves a descriptor by name or panics if not found.
func (r *Registry) MustGet(name string) *Descriptor {
	d, exists := r.Get(name)
	if !exists {
		panic(fmt.Sprintf("type '%s' not found in registry", name))
	}
	return d
}

// List returns all registered descriptors in unspecified order.
func (r *Registry) List() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descs := make([]*Descriptor, 0, len(r.entries))
	for _, d := range r.entries {
		descs = append(descs, d)
	}
	return descs
}

// SingletonFor returns the sole instance of the singleton-style type
// registered for t, if any. Used to resolve receiver slots from their
// declared type.
func (r *Registry) SingletonFor(t reflect.Type) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.singletons[t]
	if !exists {
		return nil, false
	}
	return d.singleton, true
}

// Clear removes all entries. Useful for tests.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]*Descriptor)
	r.singletons = make(map[reflect.Type]*Descriptor)
}
