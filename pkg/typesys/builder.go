package typesys

// ABOUTME: Fluent registration API for declaring loadable types at startup
// ABOUTME: Derives constructor parameter shape once and panics on structural misuse

import (
	"fmt"
	"reflect"
)

// TypeBuilder declares a loadable type step by step before registering it.
// A type has either a designated constructor, a singleton instance, or
// both (construction then short-circuits to the instance).
//
//	desc, err := typesys.NewType("com.acme.widgets.Spinner").
//		Constructor(NewSpinner).
//		Param("label").
//		Param("speed", typesys.Default(3)).
//		Register(registry)
type TypeBuilder struct {
	fqn         string
	ctorFn      any
	params      []Param
	hasReceiver bool
	singleton   any
	isSingleton bool
}

// ParamOption configures a declared parameter.
type ParamOption func(*Param)

// Default registers a default value for the parameter. A parameter with a
// default may be omitted from the parameter map; the invocation then
// supplies this value itself.
func Default(v any) ParamOption {
	return func(p *Param) {
		p.HasDefault = true
		p.Default = v
	}
}

// NewType starts declaring a type under the given fully-qualified dotted
// name. Panics if the name is empty.
func NewType(fqn string) *TypeBuilder {
	if fqn == "" {
		panic("type name cannot be empty")
	}
	return &TypeBuilder{fqn: fqn}
}

// Constructor sets the designated constructor function. Subsequent Param
// calls describe its parameters in declaration order.
func (b *TypeBuilder) Constructor(fn any) *TypeBuilder {
	b.ctorFn = fn
	return b
}

// Receiver marks the constructor's first parameter as the implicit
// receiver slot. It is resolved from a pre-bound receiver or from the
// singleton instance of its declared type, never from the parameter map.
// Must be called before any Param.
func (b *TypeBuilder) Receiver() *TypeBuilder {
	if len(b.params) > 0 {
		panic("Receiver must be declared before any Param")
	}
	b.hasReceiver = true
	return b
}

// Param describes the next constructor parameter.
func (b *TypeBuilder) Param(name string, opts ...ParamOption) *TypeBuilder {
	p := Param{Name: name, Role: RoleOrdinary}
	for _, opt := range opts {
		opt(&p)
	}
	b.params = append(b.params, p)
	return b
}

// Singleton marks the type as singleton-style with the given sole
// instance. Build requests return the instance directly, parameters
// ignored.
func (b *TypeBuilder) Singleton(instance any) *TypeBuilder {
	if instance == nil {
		panic(fmt.Sprintf("singleton instance for %s cannot be nil", b.fqn))
	}
	b.singleton = instance
	b.isSingleton = true
	return b
}

// Build finalizes the descriptor without registering it. Panics if the
// declaration is structurally unusable.
func (b *TypeBuilder) Build() *Descriptor {
	d := &Descriptor{name: b.fqn}

	if b.isSingleton {
		d.singleton = b.singleton
		d.hasSingleton = true
		d.typ = reflect.TypeOf(b.singleton)
	}

	if b.ctorFn != nil {
		params := b.params
		if b.hasReceiver {
			params = append([]Param{{Role: RoleReceiver}}, params...)
		}
		d.ctor = NewCallable(b.ctorFn, params)

		fnType := d.ctor.fnType
		if fnType.NumOut() == 0 {
			panic(fmt.Sprintf("constructor for %s must return the constructed value", b.fqn))
		}
		ctorType := fnType.Out(0)
		if d.typ == nil {
			d.typ = ctorType
		} else if d.typ != ctorType {
			panic(fmt.Sprintf("constructor for %s returns %v, singleton instance is %v", b.fqn, ctorType, d.typ))
		}
	}

	if d.typ == nil {
		panic(fmt.Sprintf("type %s declares neither a constructor nor a singleton instance", b.fqn))
	}
	return d
}

// Register builds the descriptor and adds it to the registry. Structural
// problems panic; a duplicate name is an ordinary error.
func (b *TypeBuilder) Register(r *Registry) (*Descriptor, error) {
	d := b.Build()
	if err := r.Register(d); err != nil {
		return nil, err
	}
	return d, nil
}
