package typesys_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udonne/kara/pkg/typesys"
)

type gadget struct {
	Label string
	Speed int
}

func newGadget(label string, speed int) *gadget {
	return &gadget{Label: label, Speed: speed}
}

type clock struct {
	zone string
}

func TestTypeBuilder_RegistersConstructorMetadata(t *testing.T) {
	reg := typesys.NewRegistry()

	d, err := typesys.NewType("com.acme.Gadget").
		Constructor(newGadget).
		Param("label").
		Param("speed", typesys.Default(3)).
		Register(reg)
	require.NoError(t, err)

	assert.Equal(t, "com.acme.Gadget", d.Name())
	assert.Equal(t, "Gadget", d.SimpleName())
	assert.Equal(t, reflect.TypeOf(&gadget{}), d.Type())
	assert.False(t, d.IsSingleton())

	params := d.Constructor().Params()
	require.Len(t, params, 2)

	assert.Equal(t, "label", params[0].Name)
	assert.Equal(t, reflect.TypeOf(""), params[0].Type)
	assert.False(t, params[0].Nullable)
	assert.False(t, params[0].HasDefault)

	assert.Equal(t, "speed", params[1].Name)
	assert.True(t, params[1].HasDefault)
	assert.Equal(t, 3, params[1].Default)
}

func TestTypeBuilder_NullableDerivedFromNilableKinds(t *testing.T) {
	reg := typesys.NewRegistry()

	d, err := typesys.NewType("com.acme.Tagged").
		Constructor(func(name *string, tags []string, count int) *gadget { return &gadget{} }).
		Param("name").
		Param("tags").
		Param("count").
		Register(reg)
	require.NoError(t, err)

	params := d.Constructor().Params()
	assert.True(t, params[0].Nullable, "pointer parameter accepts null")
	assert.True(t, params[1].Nullable, "slice parameter accepts null")
	assert.False(t, params[2].Nullable, "int parameter does not accept null")
}

func TestTypeBuilder_DuplicateRegistration(t *testing.T) {
	reg := typesys.NewRegistry()

	_, err := typesys.NewType("com.acme.Gadget").
		Constructor(newGadget).Param("label").Param("speed").
		Register(reg)
	require.NoError(t, err)

	_, err = typesys.NewType("com.acme.Gadget").
		Constructor(newGadget).Param("label").Param("speed").
		Register(reg)
	assert.ErrorContains(t, err, "already registered")
}

func TestTypeBuilder_PanicsOnStructuralMisuse(t *testing.T) {
	assert.Panics(t, func() {
		typesys.NewType("com.acme.Bad").Constructor(42).Build()
	}, "non-function constructor")

	assert.Panics(t, func() {
		typesys.NewType("com.acme.Bad").Constructor(newGadget).Param("label").Build()
	}, "parameter count mismatch")

	assert.Panics(t, func() {
		typesys.NewType("com.acme.Bad").Build()
	}, "neither constructor nor singleton")

	assert.Panics(t, func() {
		typesys.NewType("com.acme.Bad").
			Constructor(newGadget).
			Param("label", typesys.Default(7)).
			Param("speed").
			Build()
	}, "default not convertible to parameter type")
}

func TestSingletonDescriptor(t *testing.T) {
	reg := typesys.NewRegistry()
	instance := &clock{zone: "UTC"}

	d, err := typesys.NewType("com.acme.Clock").Singleton(instance).Register(reg)
	require.NoError(t, err)

	assert.True(t, d.IsSingleton())
	assert.Same(t, instance, d.SingletonInstance())

	got, ok := reg.SingletonFor(reflect.TypeOf(instance))
	require.True(t, ok)
	assert.Same(t, instance, got)
}

func TestRegistry_Lookup(t *testing.T) {
	reg := typesys.NewRegistry()
	_, err := typesys.NewType("com.acme.Gadget").
		Constructor(newGadget).Param("label").Param("speed").
		Register(reg)
	require.NoError(t, err)

	d, ok := reg.Get("com.acme.Gadget")
	require.True(t, ok)
	assert.Equal(t, "com.acme.Gadget", d.Name())

	_, ok = reg.Get("com.acme.Missing")
	assert.False(t, ok)
	assert.Panics(t, func() { reg.MustGet("com.acme.Missing") })

	assert.Len(t, reg.List(), 1)
	reg.Clear()
	assert.Empty(t, reg.List())
}

func TestCallable_CallSubstitutesDefaults(t *testing.T) {
	c := typesys.NewCallable(newGadget, []typesys.Param{
		{Name: "label"},
		{Name: "speed", HasDefault: true, Default: 3},
	})

	result, err := c.Call([]typesys.Binding{
		{Set: true, Value: reflect.ValueOf("dial")},
		{}, // unset: the callable supplies its own default
	})
	require.NoError(t, err)

	g := result.(*gadget)
	assert.Equal(t, "dial", g.Label)
	assert.Equal(t, 3, g.Speed)
}

func TestCallable_ErrorReturn(t *testing.T) {
	fails := func(label string) (*gadget, error) {
		return nil, fmt.Errorf("no gadget named %s", label)
	}
	c := typesys.NewCallable(fails, []typesys.Param{{Name: "label"}})

	_, err := c.Call([]typesys.Binding{{Set: true, Value: reflect.ValueOf("x")}})
	assert.ErrorContains(t, err, "no gadget named x")
}

type area interface {
	Area() float64
}

type square struct{ side float64 }

func (s *square) Area() float64 { return s.side * s.side }

func TestDescriptor_AssignableTo(t *testing.T) {
	d := typesys.NewType("com.acme.Square").
		Constructor(func(side float64) *square { return &square{side: side} }).
		Param("side").
		Build()

	capability := reflect.TypeOf((*area)(nil)).Elem()
	assert.True(t, d.AssignableTo(capability))

	other := typesys.NewType("com.acme.Gadget").
		Constructor(newGadget).Param("label").Param("speed").
		Build()
	assert.False(t, other.AssignableTo(capability))
	assert.False(t, other.AssignableTo(nil))
}
