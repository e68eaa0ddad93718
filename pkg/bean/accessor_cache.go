package bean

// ABOUTME: Memoizes per (type, property) the accessor used to read a named field
// ABOUTME: Caches confirmed misses behind a mask value so repeat misses never re-scan

import (
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/udonne/kara/pkg/errors"
	"github.com/udonne/kara/pkg/internal/debug"
)

// Accessor reads one named property off instances of a specific type.
type Accessor struct {
	index    int
	name     string
	jsonName string
	typ      reflect.Type
}

// Read returns the property value from an instance. The instance must be
// of (or point to) the type the accessor was resolved for.
func (a *Accessor) Read(instance any) any {
	v := reflect.ValueOf(instance)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return v.Field(a.index).Interface()
}

// notFoundMask is the value cached for properties confirmed absent. It is
// distinct from a missing cache entry, so "confirmed absent" and "never
// queried" are distinguishable and both O(1) on repeat.
var notFoundMask = &Accessor{index: -1}

type accessorKey struct {
	typ      reflect.Type
	property string
}

// AccessorCache memoizes, per (type, property name) pair, the accessor
// used to read the property. Entries are immutable once written; the
// member set of a loaded type never changes, so nothing is ever evicted
// or recomputed. Safe for concurrent use.
type AccessorCache struct {
	entries  sync.Map // map[accessorKey]*Accessor
	hits     atomic.Uint64
	computes atomic.Uint64
}

// NewAccessorCache creates an empty cache. Most callers want the shared
// process-wide cache via the package-level ReadProperty instead.
func NewAccessorCache() *AccessorCache {
	return &AccessorCache{}
}

// GetAccessor resolves the accessor for a property of t. The first lookup
// for a key scans the declared field list; the outcome, found or not, is
// memoized. Returns false when the type has no such property.
func (c *AccessorCache) GetAccessor(t reflect.Type, property string) (*Accessor, bool) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	key := accessorKey{typ: t, property: property}
	if cached, ok := c.entries.Load(key); ok {
		c.hits.Add(1)
		a := cached.(*Accessor)
		return a, a != notFoundMask
	}

	c.computes.Add(1)
	a := resolveAccessor(t, property)
	cached, _ := c.entries.LoadOrStore(key, a)
	a = cached.(*Accessor)
	return a, a != notFoundMask
}

// ReadProperty reads a named property off an instance, resolving the
// accessor through the cache. A name the type does not declare fails with
// an invalid-property error naming both.
func (c *AccessorCache) ReadProperty(instance any, property string) (any, error) {
	t := reflect.TypeOf(instance)
	a, ok := c.GetAccessor(t, property)
	if !ok {
		return nil, errors.NewInvalidProperty(t.String(), property)
	}
	return a.Read(instance), nil
}

// Stats returns cache performance counters: lookups served from the cache,
// field-list scans performed, and the number of populated entries.
func (c *AccessorCache) Stats() (hits, computes uint64, size int) {
	c.entries.Range(func(_, _ any) bool {
		size++
		return true
	})
	return c.hits.Load(), c.computes.Load(), size
}

// resolveAccessor scans the declared field list of a struct type for a
// property name, matching the json tag name first and the Go field name
// second. Unexported fields are never readable.
func resolveAccessor(t reflect.Type, property string) *Accessor {
	if t.Kind() != reflect.Struct {
		return notFoundMask
	}

	debug.Printf("accessor_cache", "scanning %v for property %q\n", t, property)

	var byName *Accessor
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}

		jsonName := field.Name
		if tag := field.Tag.Get("json"); tag != "" {
			if name := strings.Split(tag, ",")[0]; name != "" && name != "-" {
				jsonName = name
			}
		}

		a := &Accessor{index: i, name: field.Name, jsonName: jsonName, typ: field.Type}
		if jsonName == property {
			return a
		}
		if byName == nil && field.Name == property {
			byName = a
		}
	}
	if byName != nil {
		return byName
	}
	return notFoundMask
}

// globalAccessors is the shared process-wide cache, visible to all callers
// across concurrent use.
var globalAccessors = NewAccessorCache()

// ReadProperty reads a named property off an instance using the shared
// process-wide accessor cache.
func ReadProperty(instance any, property string) (any, error) {
	return globalAccessors.ReadProperty(instance, property)
}
