package typesys

// ABOUTME: Callable wraps a constructor or factory function with resolved parameter metadata
// ABOUTME: Invokes via reflection, substituting registered defaults for omitted bindings

import (
	"fmt"
	"reflect"
)

// Callable pairs a function with its resolved parameter metadata. A
// Callable is usually a type's designated constructor, but any function
// whose parameters are described by []Param can be resolved and called
// through the bean builder.
type Callable struct {
	fnValue reflect.Value
	fnType  reflect.Type
	params  []Param
	bound   any
}

// NewCallable wraps fn with the given parameter descriptions. The params
// supply names, roles and defaults; declared types are taken from the
// function signature itself. Panics if fn is not a function, is variadic,
// or if the parameter count does not match the signature.
func NewCallable(fn any, params []Param) *Callable {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic("callable target must be a function")
	}
	fnType := fnValue.Type()
	if fnType.IsVariadic() {
		panic(fmt.Sprintf("callable %v must not be variadic", fnType))
	}
	if fnType.NumIn() != len(params) {
		panic(fmt.Sprintf("callable %v takes %d parameters, %d described", fnType, fnType.NumIn(), len(params)))
	}

	resolved := make([]Param, len(params))
	for i, p := range params {
		p.Type = fnType.In(i)
		p.Nullable = isNilable(p.Type)
		if p.HasDefault {
			if err := checkDefault(p); err != nil {
				panic(err.Error())
			}
		}
		resolved[i] = p
	}

	return &Callable{fnValue: fnValue, fnType: fnType, params: resolved}
}

// checkDefault verifies a registered default is usable for the parameter.
func checkDefault(p Param) error {
	if p.Default == nil {
		if !p.Nullable {
			return fmt.Errorf("parameter '%s' has nil default but type %v is not nilable", p.Name, p.Type)
		}
		return nil
	}
	dt := reflect.TypeOf(p.Default)
	if !dt.AssignableTo(p.Type) && !dt.ConvertibleTo(p.Type) {
		return fmt.Errorf("default for parameter '%s' has type %v, want %v", p.Name, dt, p.Type)
	}
	// reflect treats any integer as convertible to string (rune
	// conversion); a numeric default for a string parameter is a mistake,
	// not a conversion.
	if p.Type.Kind() == reflect.String && dt.Kind() != reflect.String {
		return fmt.Errorf("default for parameter '%s' has type %v, want %v", p.Name, dt, p.Type)
	}
	return nil
}

// Params returns the resolved parameter descriptions in declaration order.
func (c *Callable) Params() []Param { return c.params }

// Bind returns a copy of the callable with a pre-bound receiver. The
// receiver slot, if any, resolves to this value instead of a singleton
// lookup.
func (c *Callable) Bind(receiver any) *Callable {
	dup := *c
	dup.bound = receiver
	return &dup
}

// BoundReceiver returns the pre-bound receiver, or nil.
func (c *Callable) BoundReceiver() any { return c.bound }

// Binding is one explicit argument for Call. An unset binding means the
// callable substitutes the parameter's registered default itself.
type Binding struct {
	Set   bool
	Value reflect.Value
}

// Call invokes the function with the given bindings, one per parameter in
// declaration order. Unset bindings take the registered default; a
// parameter that is unset and has no default is a structural fault.
// Functions may return (T) or (T, error).
func (c *Callable) Call(bindings []Binding) (any, error) {
	if len(bindings) != len(c.params) {
		panic(fmt.Sprintf("callable %v: %d bindings for %d parameters", c.fnType, len(bindings), len(c.params)))
	}

	args := make([]reflect.Value, len(c.params))
	for i, binding := range bindings {
		if binding.Set {
			args[i] = binding.Value
			continue
		}
		p := c.params[i]
		if !p.HasDefault {
			panic(fmt.Sprintf("parameter '%s' left unbound and has no default", p.Name))
		}
		args[i] = defaultValue(p)
	}

	results := c.fnValue.Call(args)
	if len(results) == 0 {
		return nil, nil
	}

	var result any
	if results[0].IsValid() {
		result = results[0].Interface()
	}

	var err error
	if len(results) > 1 && results[1].IsValid() && !results[1].IsNil() {
		err = results[1].Interface().(error)
	}

	return result, err
}

// defaultValue materializes a parameter's registered default as an
// argument value, converting where the registered literal's type differs
// from the declared one.
func defaultValue(p Param) reflect.Value {
	if p.Default == nil {
		return reflect.Zero(p.Type)
	}
	v := reflect.ValueOf(p.Default)
	if v.Type() == p.Type {
		return v
	}
	return v.Convert(p.Type)
}
