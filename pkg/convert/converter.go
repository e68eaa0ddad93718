package convert

// ABOUTME: Converter interface and priority-ordered registry for text deserialization
// ABOUTME: Registry implements the Deserializer contract consumed by the bean builder

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/udonne/kara/pkg/internal/debug"
	"github.com/udonne/kara/pkg/typesys"
)

// LoaderContext is the slice of a search context deserialization can see:
// resolving a fully-qualified name to a registered type. Converters that
// produce plain Go values ignore it.
type LoaderContext interface {
	LoadType(fqn string) (*typesys.Descriptor, error)
}

// Deserializer turns raw parameter text into a value of the target type.
// A nil return means the text could not be deserialized; callers treat
// that as parameter absence, never as a silent null.
type Deserializer interface {
	Deserialize(text string, target reflect.Type, ctx LoaderContext) any
}

// Converter handles deserialization into some family of target types.
type Converter interface {
	// Name returns a human-readable name for diagnostics
	Name() string

	// Priority orders converters; higher runs first
	Priority() int

	// CanConvert checks whether this converter handles the target type
	CanConvert(target reflect.Type) bool

	// Convert deserializes text into a value of exactly the target type
	Convert(text string, target reflect.Type) (any, error)
}

// Registry is a priority-ordered collection of converters implementing
// Deserializer. Converters registered later with a higher priority take
// precedence; on a conversion failure the next matching converter is
// tried.
type Registry struct {
	mu         sync.RWMutex
	converters []Converter
}

// NewRegistry creates an empty converter registry.
func NewRegistry() *Registry {
	return &Registry{converters: make([]Converter, 0)}
}

// RegisterConverter adds a converter, keeping the set sorted by priority
// (highest first).
func (r *Registry) RegisterConverter(c Converter) error {
	if c == nil {
		return fmt.Errorf("converter cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.converters = append(r.converters, c)
	sort.SliceStable(r.converters, func(i, j int) bool {
		return r.converters[i].Priority() > r.converters[j].Priority()
	})
	return nil
}

// Converters returns the registered converters in dispatch order.
func (r *Registry) Converters() []Converter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Converter, len(r.converters))
	copy(out, r.converters)
	return out
}

// Deserialize implements Deserializer. Pointer targets deserialize their
// element type and return a freshly allocated pointer, so nullable
// parameters can carry a concrete value.
func (r *Registry) Deserialize(text string, target reflect.Type, ctx LoaderContext) any {
	if target == nil {
		return nil
	}

	if target.Kind() == reflect.Ptr {
		inner := r.Deserialize(text, target.Elem(), ctx)
		if inner == nil {
			return nil
		}
		pv := reflect.New(target.Elem())
		pv.Elem().Set(reflect.ValueOf(inner))
		return pv.Interface()
	}

	// Dispatch over a copy: RegisterConverter re-sorts the backing array
	// in place, so iterating the live slice outside the lock would race.
	for _, c := range r.Converters() {
		if !c.CanConvert(target) {
			continue
		}
		v, err := c.Convert(text, target)
		if err != nil {
			debug.Printf("convert", "%s failed on %q -> %v: %v\n", c.Name(), text, target, err)
			continue
		}
		if v == nil || !reflect.TypeOf(v).AssignableTo(target) {
			continue
		}
		return v
	}
	return nil
}
