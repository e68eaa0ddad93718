package typesys

// ABOUTME: Descriptor and Param types describing a registered loadable type
// ABOUTME: Carries name, constructor metadata, singleton instance and assignability

import (
	"reflect"
	"strings"
)

// Role tags a constructor parameter as either an ordinary named parameter
// or the implicit receiver slot of a bound callable.
type Role int

const (
	// RoleOrdinary is a named parameter bound from the parameter map.
	RoleOrdinary Role = iota

	// RoleReceiver is the implicit first parameter of a bound callable. It
	// is never bound from the parameter map: it resolves to the callable's
	// pre-bound receiver or to the sole instance of the singleton-style
	// type it declares.
	RoleReceiver
)

// Param describes one constructor parameter. The shape is resolved once at
// registration time and never re-derived per call.
type Param struct {
	Name       string
	Type       reflect.Type
	Nullable   bool
	HasDefault bool
	Default    any
	Role       Role
}

// Descriptor is an opaque handle to a registered type definition. The
// library never constructs or destroys the underlying Go type, only
// queries it; descriptors live for the process lifetime once registered.
type Descriptor struct {
	name         string
	typ          reflect.Type
	ctor         *Callable
	singleton    any
	hasSingleton bool
}

// Name returns the fully-qualified dotted name the type was registered
// under, e.g. "com.acme.widgets.Spinner".
func (d *Descriptor) Name() string { return d.name }

// SimpleName returns the segment after the last dot.
func (d *Descriptor) SimpleName() string {
	if i := strings.LastIndex(d.name, "."); i >= 0 {
		return d.name[i+1:]
	}
	return d.name
}

// Type returns the Go type instances of this descriptor have.
func (d *Descriptor) Type() reflect.Type { return d.typ }

// Constructor returns the designated constructor, or nil for a pure
// singleton-style type.
func (d *Descriptor) Constructor() *Callable { return d.ctor }

// IsSingleton reports whether the type is singleton-style: exactly one
// runtime instance, retrievable without invoking a constructor.
func (d *Descriptor) IsSingleton() bool { return d.hasSingleton }

// SingletonInstance returns the sole instance of a singleton-style type,
// or nil if the type is not singleton-style.
func (d *Descriptor) SingletonInstance() any {
	if !d.hasSingleton {
		return nil
	}
	return d.singleton
}

// AssignableTo reports whether instances of this type satisfy the given
// capability. For an interface capability both the value and its pointer
// method set are considered.
func (d *Descriptor) AssignableTo(capability reflect.Type) bool {
	if capability == nil {
		return false
	}
	if capability.Kind() == reflect.Interface {
		if d.typ.Implements(capability) {
			return true
		}
		return d.typ.Kind() != reflect.Ptr && reflect.PtrTo(d.typ).Implements(capability)
	}
	return d.typ.AssignableTo(capability)
}

// isNilable reports whether the zero value of t is a usable nil. Parameters
// of these kinds accept an explicit null binding.
func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
