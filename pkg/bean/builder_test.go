package bean_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udonne/kara/pkg/bean"
	"github.com/udonne/kara/pkg/errors"
	"github.com/udonne/kara/pkg/typesys"
)

// widget mirrors a constructor shaped T(name: nullable string, age: int
// with default 9, tag: required string).
type widget struct {
	name *string
	age  int
	tag  string
}

func newWidget(name *string, age int, tag string) *widget {
	return &widget{name: name, age: age, tag: tag}
}

func widgetFixture(t *testing.T) (*bean.Builder, *typesys.Descriptor) {
	t.Helper()
	reg := typesys.NewRegistry()
	d, err := typesys.NewType("com.acme.Widget").
		Constructor(newWidget).
		Param("name").
		Param("age", typesys.Default(9)).
		Param("tag").
		Register(reg)
	require.NoError(t, err)
	return bean.NewBuilder(reg), d
}

func TestBuild_NullLiteralEmptyStringAndDefault(t *testing.T) {
	b, d := widgetFixture(t)

	got, err := b.Build(d, map[string]string{"name": "null", "age": "", "tag": "x"}, nil)
	require.NoError(t, err)

	w := got.(*widget)
	assert.Nil(t, w.name, `"null" binds explicit null`)
	assert.Equal(t, 9, w.age, `"" takes the declared default for non-string params`)
	assert.Equal(t, "x", w.tag)
}

// tally has a parameter that is both nullable and defaulted, so the two
// signals can conflict.
type tally struct {
	count *int
}

func TestBuild_EmptyStringBindsNullAheadOfDefault(t *testing.T) {
	reg := typesys.NewRegistry()
	seven := 7
	d, err := typesys.NewType("com.acme.Tally").
		Constructor(func(count *int) *tally { return &tally{count: count} }).
		Param("count", typesys.Default(&seven)).
		Register(reg)
	require.NoError(t, err)
	b := bean.NewBuilder(reg)

	got, err := b.Build(d, map[string]string{"count": ""}, nil)
	require.NoError(t, err)
	assert.Nil(t, got.(*tally).count, `"" on a nullable param binds explicit null, not the default`)

	got, err = b.Build(d, map[string]string{}, nil)
	require.NoError(t, err)
	require.NotNil(t, got.(*tally).count)
	assert.Equal(t, 7, *got.(*tally).count, "absence still takes the default")
}

func TestBuild_AbsentKeys(t *testing.T) {
	b, d := widgetFixture(t)

	got, err := b.Build(d, map[string]string{"tag": "x"}, nil)
	require.NoError(t, err)

	w := got.(*widget)
	assert.Nil(t, w.name, "absent nullable binds null")
	assert.Equal(t, 9, w.age, "absent optional takes default")
}

func TestBuild_DeserializedValues(t *testing.T) {
	b, d := widgetFixture(t)

	got, err := b.Build(d, map[string]string{"name": "bob", "age": "12", "tag": "y"}, nil)
	require.NoError(t, err)

	w := got.(*widget)
	require.NotNil(t, w.name)
	assert.Equal(t, "bob", *w.name)
	assert.Equal(t, 12, w.age)

	// empty string IS a value for textual params
	got, err = b.Build(d, map[string]string{"name": "", "tag": "y"}, nil)
	require.NoError(t, err)
	w = got.(*widget)
	require.NotNil(t, w.name)
	assert.Equal(t, "", *w.name)
}

func TestBuild_UndeserializableIsMissing(t *testing.T) {
	b, d := widgetFixture(t)

	_, err := b.Build(d, map[string]string{"age": "notanumber", "tag": "x"}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsMissingArgument(err))
	assert.Contains(t, err.Error(), "bad argument age='notanumber'")
}

func TestBuild_RequiredParamAbsent(t *testing.T) {
	b, d := widgetFixture(t)

	_, err := b.Build(d, map[string]string{"name": "bob"}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsMissingArgument(err))
	assert.Contains(t, err.Error(), "required argument 'tag' is missing")
	assert.Contains(t, err.Error(), "available params")
}

func TestBuild_SingletonShortCircuit(t *testing.T) {
	reg := typesys.NewRegistry()
	instance := &widget{tag: "the-one"}
	d, err := typesys.NewType("com.acme.TheWidget").Singleton(instance).Register(reg)
	require.NoError(t, err)

	got, err := bean.NewBuilder(reg).Build(d, map[string]string{"tag": "ignored"}, nil)
	require.NoError(t, err)
	assert.Same(t, instance, got)
}

// spinnerFactory is a singleton-style type whose method serves as a bound
// constructor with a receiver slot.
type spinnerFactory struct {
	prefix string
}

type spinner struct {
	label string
}

func (f *spinnerFactory) newSpinner(label string) *spinner {
	return &spinner{label: f.prefix + label}
}

func TestResolveAndCall_ReceiverFromSingleton(t *testing.T) {
	reg := typesys.NewRegistry()
	factory := &spinnerFactory{prefix: "sp-"}

	_, err := typesys.NewType("com.acme.SpinnerFactory").Singleton(factory).Register(reg)
	require.NoError(t, err)

	d, err := typesys.NewType("com.acme.Spinner").
		Constructor((*spinnerFactory).newSpinner).
		Receiver().
		Param("label").
		Register(reg)
	require.NoError(t, err)

	got, err := bean.NewBuilder(reg).Build(d, map[string]string{"label": "dial"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "sp-dial", got.(*spinner).label)
}

func TestResolveAndCall_PreBoundReceiver(t *testing.T) {
	reg := typesys.NewRegistry()
	d := typesys.NewType("com.acme.Spinner").
		Constructor((*spinnerFactory).newSpinner).
		Receiver().
		Param("label").
		Build()

	bound := d.Constructor().Bind(&spinnerFactory{prefix: "alt-"})

	got, err := bean.NewBuilder(reg).ResolveAndCall(bound, map[string]string{"label": "x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "alt-x", got.(*spinner).label)
}

func TestResolveAndCall_UnresolvableReceiverPanics(t *testing.T) {
	reg := typesys.NewRegistry() // no factory singleton registered
	d := typesys.NewType("com.acme.Spinner").
		Constructor((*spinnerFactory).newSpinner).
		Receiver().
		Param("label").
		Build()

	assert.Panics(t, func() {
		_, _ = bean.NewBuilder(reg).Build(d, map[string]string{"label": "x"}, nil)
	})
}

func TestResolveAndCall_PlainCallable(t *testing.T) {
	repeat := func(word string, times int) string {
		out := ""
		for i := 0; i < times; i++ {
			out += word
		}
		return out
	}
	c := typesys.NewCallable(repeat, []typesys.Param{
		{Name: "word"},
		{Name: "times", HasDefault: true, Default: 2},
	})

	b := bean.NewBuilder(typesys.NewRegistry())

	got, err := b.ResolveAndCall(c, map[string]string{"word": "go"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "gogo", got)

	got, err = b.ResolveAndCall(c, map[string]string{"word": "go", "times": "3"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "gogogo", got)
}
