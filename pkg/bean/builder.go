package bean

// ABOUTME: Reflective bean builder binding flat string maps to designated constructors
// ABOUTME: Per-parameter resolution protocol with singleton, null, value and default bindings

import (
	"fmt"
	"reflect"

	"github.com/udonne/kara/pkg/convert"
	"github.com/udonne/kara/pkg/errors"
	"github.com/udonne/kara/pkg/internal/debug"
	"github.com/udonne/kara/pkg/typesys"
)

// Builder constructs instances of registered types from flat string
// parameter maps. Safe for concurrent use.
type Builder struct {
	registry     *typesys.Registry
	deserializer convert.Deserializer
}

// Option configures a Builder.
type Option func(*Builder)

// WithDeserializer replaces the default converter registry.
func WithDeserializer(d convert.Deserializer) Option {
	return func(b *Builder) {
		b.deserializer = d
	}
}

// NewBuilder creates a builder resolving receiver slots against the given
// registry and deserializing values with convert.Default() unless
// overridden.
func NewBuilder(registry *typesys.Registry, opts ...Option) *Builder {
	b := &Builder{
		registry:     registry,
		deserializer: convert.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build constructs an instance of the described type from the parameter
// map. Singleton-style types return their sole instance directly, params
// ignored. A type with neither a designated constructor nor a singleton
// instance is a structural fault and panics.
func (b *Builder) Build(d *typesys.Descriptor, params map[string]string, ctx convert.LoaderContext) (any, error) {
	if d.IsSingleton() {
		return d.SingletonInstance(), nil
	}

	ctor := d.Constructor()
	if ctor == nil {
		panic(fmt.Sprintf("type %s has no designated constructor and is not a singleton", d.Name()))
	}
	return b.ResolveAndCall(ctor, params, ctx)
}

// ResolveAndCall resolves every declared parameter of the callable from
// the parameter map and invokes it. Works for any callable, not only
// constructors.
//
// Per parameter, in declaration order: the receiver slot binds the
// pre-bound receiver or the singleton of its declared type; the literal
// "null" binds nil where the parameter accepts it; an empty string on a
// non-textual parameter binds nil where the parameter accepts it and
// otherwise counts as absence; any other present value is deserialized,
// with an undeserializable value reported as missing rather than silently
// null; an absent key takes the registered default, then nil for nullable
// parameters, and otherwise fails.
func (b *Builder) ResolveAndCall(c *typesys.Callable, params map[string]string, ctx convert.LoaderContext) (any, error) {
	declared := c.Params()
	bindings := make([]typesys.Binding, len(declared))

	for i, p := range declared {
		if p.Role == typesys.RoleReceiver {
			bindings[i] = typesys.Binding{Set: true, Value: b.resolveReceiver(c, p)}
			continue
		}

		raw, present := params[p.Name]
		if present && raw == "" && !isTextual(p.Type) {
			// Empty string carries no value for non-string parameters:
			// an explicit null where the parameter accepts one, ahead of
			// any registered default; otherwise resolved as if the key
			// were absent.
			if p.Nullable {
				bindings[i] = nullBinding(p)
				continue
			}
			present = false
		}
		switch {
		case present && raw == "null" && p.Nullable:
			bindings[i] = nullBinding(p)

		case present:
			v := b.deserializer.Deserialize(raw, p.Type, ctx)
			if v == nil {
				return nil, errors.NewBadArgument(p.Name, raw)
			}
			rv := reflect.ValueOf(v)
			if !rv.Type().AssignableTo(p.Type) {
				return nil, errors.NewBadArgument(p.Name, raw)
			}
			bindings[i] = typesys.Binding{Set: true, Value: rv}

		case p.HasDefault:
			// Omitted from the explicit binding set; the callable
			// substitutes its registered default itself.
			debug.Printf("bean", "parameter %q takes its default\n", p.Name)

		case p.Nullable:
			bindings[i] = nullBinding(p)

		default:
			return nil, errors.NewMissingArgument(p.Name, params)
		}
	}

	return c.Call(bindings)
}

// resolveReceiver binds the receiver slot: the callable's pre-bound
// receiver if it is a bound member reference, otherwise the sole instance
// of the singleton-style type the slot declares. The receiver must always
// resolve; failure is API misuse, not user input.
func (b *Builder) resolveReceiver(c *typesys.Callable, p typesys.Param) reflect.Value {
	recv := c.BoundReceiver()
	if recv == nil {
		instance, ok := b.registry.SingletonFor(p.Type)
		if !ok {
			panic(fmt.Sprintf("cannot resolve receiver: no singleton of type %v registered", p.Type))
		}
		recv = instance
	}

	rv := reflect.ValueOf(recv)
	if !rv.Type().AssignableTo(p.Type) {
		panic(fmt.Sprintf("receiver of type %v is not assignable to declared type %v", rv.Type(), p.Type))
	}
	return rv
}

func nullBinding(p typesys.Param) typesys.Binding {
	return typesys.Binding{Set: true, Value: reflect.Zero(p.Type)}
}

// isTextual reports whether the declared type is the string type or a
// pointer to it; the empty-string-means-null rule does not apply to these.
func isTextual(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.String
}
