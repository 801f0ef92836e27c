/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package component

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/componentstore/errors"
	tc "github.com/suparena/componentstore/internal/testcomponents"
)

var typeComparer = cmp.Comparer(func(a, b reflect.Type) bool { return a == b })

// noCopy has accessors but no Copy method.
type noCopy struct{ v int }

func (n *noCopy) V() int     { return n.v }
func (n *noCopy) SetV(v int) { n.v = v }

// badCopy takes its argument by value.
type badCopy struct{}

func (b *badCopy) Copy(other badCopy) {}

// panicky is not covered by generated tables and panics when copied.
type panicky struct{ v int }

func (p *panicky) V() int              { return p.v }
func (p *panicky) SetV(v int)          { p.v = v }
func (p *panicky) Copy(other *panicky) { panic("copy refused") }

type itemList []string

func buildType[T any](t *testing.T, f TypeFactory) *Type {
	t.Helper()
	ct, err := f.Build(reflect.TypeFor[T]())
	require.NoError(t, err)
	return ct
}

func mustCreate[T any](t *testing.T, ct *Type) *T {
	t.Helper()
	inst, err := ct.Create()
	require.NoError(t, err)
	typed, ok := inst.(*T)
	require.True(t, ok, "Create returned %T", inst)
	return typed
}

func lookup(t *testing.T, ct *Type, name string) PropertyAccessor {
	t.Helper()
	a, ok := ct.PropertyInfo().Property(name)
	require.True(t, ok, "property %q missing from %s", name, ct)
	return a
}

func runConformance(t *testing.T, f TypeFactory) {
	t.Run("BasicProperties", func(t *testing.T) {
		ct := buildType[tc.Basic](t, f)
		want := []PropertyDescription{
			{Name: "description", Type: reflect.TypeFor[string]()},
			{Name: "name", Type: reflect.TypeFor[string]()},
		}
		if diff := cmp.Diff(want, ct.PropertyInfo().Descriptions(), typeComparer); diff != "" {
			t.Errorf("descriptions mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "core:Basic", ct.Name())
		assert.Equal(t, f.Name(), ct.Factory())
		assert.False(t, ct.Empty())
		assert.Len(t, ct.PropertyInfo().PropertiesOfType(reflect.TypeFor[string]()), 2)
		assert.Empty(t, ct.PropertyInfo().PropertiesOfType(reflect.TypeFor[int]()))
	})

	t.Run("GetSet", func(t *testing.T) {
		ct := buildType[tc.Basic](t, f)
		b := mustCreate[tc.Basic](t, ct)
		name := lookup(t, ct, "name")
		description := lookup(t, ct, "description")

		assert.Equal(t, "", name.Get(b))
		assert.Equal(t, "", description.Get(b))

		require.NoError(t, name.Set(b, "player"))
		assert.Equal(t, "player", name.Get(b))
		assert.Equal(t, "player", b.Name())
		assert.Equal(t, reflect.TypeFor[*tc.Basic](), name.Owner())
	})

	t.Run("CreateReturnsFreshInstances", func(t *testing.T) {
		ct := buildType[tc.Basic](t, f)
		a := mustCreate[tc.Basic](t, ct)
		b := mustCreate[tc.Basic](t, ct)
		assert.NotSame(t, a, b)
	})

	t.Run("CopyIsIndependent", func(t *testing.T) {
		ct := buildType[tc.Basic](t, f)
		src := mustCreate[tc.Basic](t, ct)
		src.SetName("orig")
		src.SetDescription("first")

		out, err := ct.Copy(src)
		require.NoError(t, err)
		dup := out.(*tc.Basic)
		assert.NotSame(t, src, dup)
		assert.Equal(t, "orig", dup.Name())
		assert.Equal(t, "first", dup.Description())

		dup.SetName("changed")
		assert.Equal(t, "orig", src.Name())
	})

	t.Run("CopyClonesOwnedState", func(t *testing.T) {
		ct := buildType[tc.Inventory](t, f)
		src := mustCreate[tc.Inventory](t, ct)
		src.SetItems([]string{"sword"})

		out, err := ct.Copy(src)
		require.NoError(t, err)
		src.Items()[0] = "shield"
		assert.Equal(t, []string{"sword"}, out.(*tc.Inventory).Items())
	})

	t.Run("OneSidedMethodsAreNotProperties", func(t *testing.T) {
		ct := buildType[tc.Inventory](t, f)
		assert.Equal(t, []string{"items", "owner"}, ct.PropertyInfo().Names())
		_, ok := ct.PropertyInfo().Property("count")
		assert.False(t, ok)
		_, ok = ct.PropertyInfo().Property("capacity")
		assert.False(t, ok)
	})

	t.Run("EmptyTypeSingleton", func(t *testing.T) {
		ct := buildType[tc.Empty](t, f)
		assert.True(t, ct.Empty())
		assert.Zero(t, ct.PropertyInfo().Len())

		first, err := ct.Create()
		require.NoError(t, err)
		second, err := ct.Create()
		require.NoError(t, err)
		assert.Same(t, first, second)

		dup, err := ct.Copy(&tc.Empty{})
		require.NoError(t, err)
		assert.Same(t, first, dup)
	})

	t.Run("EmptyTypeSingletonConcurrent", func(t *testing.T) {
		ct := buildType[tc.Empty](t, f)
		const workers = 32
		results := make([]any, workers)
		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				inst, err := ct.Create()
				assert.NoError(t, err)
				results[i] = inst
			}()
		}
		wg.Wait()
		for _, r := range results {
			assert.Same(t, results[0], r)
		}
	})

	t.Run("MismatchedResolvesToSetterType", func(t *testing.T) {
		ct := buildType[tc.Mismatched](t, f)
		p := lookup(t, ct, "stringProperty")
		assert.Equal(t, reflect.TypeFor[tc.CharSeq](), p.PropertyType())

		m := mustCreate[tc.Mismatched](t, ct)
		require.NoError(t, p.Set(m, tc.Str("Hello")))
		got, ok := p.Get(m).(tc.CharSeq)
		require.True(t, ok)
		assert.Equal(t, "Hello", got.String())

		require.NoError(t, p.Set(m, nil))
		assert.Equal(t, tc.Str(""), m.StringProperty())
	})

	t.Run("IncompatibleFailsBuild", func(t *testing.T) {
		ct, err := f.Build(reflect.TypeFor[tc.Incompatible]())
		require.Error(t, err)
		assert.Nil(t, ct)
		assert.True(t, errors.IsPropertyResolution(err))

		var pre *errors.PropertyResolutionError
		require.True(t, stderrors.As(err, &pre))
		assert.Equal(t, "value", pre.Property)
		assert.Equal(t, reflect.TypeFor[string](), pre.GetterType)
		assert.Equal(t, reflect.TypeFor[int](), pre.SetterType)
	})

	t.Run("ThirdPartyPropertyType", func(t *testing.T) {
		ct := buildType[tc.Stamp](t, f)
		p := lookup(t, ct, "createdAt")
		assert.Equal(t, reflect.TypeFor[strfmt.DateTime](), p.PropertyType())

		s := mustCreate[tc.Stamp](t, ct)
		now := strfmt.DateTime(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
		require.NoError(t, p.Set(s, now))
		assert.Equal(t, now, p.Get(s))
	})

	t.Run("AssignableNamedValue", func(t *testing.T) {
		ct := buildType[tc.Inventory](t, f)
		inv := mustCreate[tc.Inventory](t, ct)
		p := lookup(t, ct, "items")

		require.NoError(t, p.Set(inv, itemList{"a", "b"}))
		assert.Equal(t, []string{"a", "b"}, p.Get(inv))
		require.NoError(t, p.Set(inv, nil))
		assert.Nil(t, inv.Items())
	})

	t.Run("SetRejectsBadValues", func(t *testing.T) {
		ct := buildType[tc.Basic](t, f)
		b := mustCreate[tc.Basic](t, ct)
		name := lookup(t, ct, "name")

		err := name.Set(b, 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)

		err = name.Set(b, nil)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)

		err = name.Set(&tc.Inventory{}, "x")
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
		err = name.Set((*tc.Basic)(nil), "x")
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
		assert.Empty(t, b.Name())
	})

	t.Run("GetPanicsOnWrongInstance", func(t *testing.T) {
		ct := buildType[tc.Basic](t, f)
		name := lookup(t, ct, "name")
		assert.Panics(t, func() { name.Get(&tc.Inventory{}) })
		assert.Panics(t, func() { name.Get(tc.Basic{}) })
		assert.Panics(t, func() { name.Get(nil) })
		assert.Contains(t, panicMessage(func() { name.Get((*tc.Basic)(nil)) }), "read on")
	})

	t.Run("CopyRejectsWrongInstance", func(t *testing.T) {
		ct := buildType[tc.Basic](t, f)
		_, err := ct.Copy(&tc.Inventory{})
		assert.True(t, errors.IsInstantiation(err))
		_, err = ct.Copy((*tc.Basic)(nil))
		assert.True(t, errors.IsInstantiation(err))
	})

	t.Run("CopyPanicIsReported", func(t *testing.T) {
		ct := buildType[panicky](t, f)
		_, err := ct.Copy(&panicky{v: 1})
		require.Error(t, err)
		assert.True(t, errors.IsInstantiation(err))
		assert.Contains(t, err.Error(), "copy refused")
	})

	t.Run("Initializer", func(t *testing.T) {
		ct := buildType[tc.Counter](t, f)
		c := mustCreate[tc.Counter](t, ct)
		assert.Equal(t, tc.StartLevel, c.Level())

		old := tc.StartLevel
		tc.StartLevel = -1
		defer func() { tc.StartLevel = old }()

		_, err := ct.Create()
		require.Error(t, err)
		assert.True(t, errors.IsInstantiation(err))
		assert.ErrorIs(t, err, tc.ErrNoStartLevel)
	})

	t.Run("PointerTypeIsNormalized", func(t *testing.T) {
		ct, err := f.Build(reflect.TypeFor[*tc.Basic]())
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeFor[tc.Basic](), ct.ReflectType())
	})

	t.Run("RejectsNonComponents", func(t *testing.T) {
		for _, rt := range []reflect.Type{
			reflect.TypeFor[noCopy](),
			reflect.TypeFor[badCopy](),
			reflect.TypeFor[tc.CharSeq](),
			reflect.TypeFor[**tc.Basic](),
			nil,
		} {
			_, err := f.Build(rt)
			assert.True(t, errors.IsNotComponent(err), "%v: %v", rt, err)
		}
	})

	t.Run("BuildIsRepeatable", func(t *testing.T) {
		a := buildType[tc.Mismatched](t, f)
		b := buildType[tc.Mismatched](t, f)
		assert.NotSame(t, a, b)
		if diff := cmp.Diff(a.PropertyInfo().Descriptions(), b.PropertyInfo().Descriptions(), typeComparer); diff != "" {
			t.Errorf("rebuild differs (-first +second):\n%s", diff)
		}
	})
}

func TestReflectFactory(t *testing.T) {
	runConformance(t, ReflectFactory{})
}

func TestGeneratedFactory(t *testing.T) {
	runConformance(t, GeneratedFactory{})

	t.Run("UsesGeneratedTables", func(t *testing.T) {
		ct := buildType[tc.Basic](t, GeneratedFactory{})
		_, ok := lookup(t, ct, "name").(*generatedAccessor)
		assert.True(t, ok)
	})

	t.Run("FallsBackWithoutTables", func(t *testing.T) {
		ct := buildType[panicky](t, GeneratedFactory{})
		_, ok := lookup(t, ct, "v").(*compiledAccessor)
		assert.True(t, ok)
	})
}

func TestFactoriesAgree(t *testing.T) {
	for _, rt := range []reflect.Type{
		reflect.TypeFor[tc.Basic](),
		reflect.TypeFor[tc.Empty](),
		reflect.TypeFor[tc.Mismatched](),
		reflect.TypeFor[tc.Inventory](),
		reflect.TypeFor[tc.Stamp](),
		reflect.TypeFor[tc.Counter](),
	} {
		r, err := ReflectFactory{}.Build(rt)
		require.NoError(t, err)
		g, err := GeneratedFactory{}.Build(rt)
		require.NoError(t, err)

		if diff := cmp.Diff(r.PropertyInfo().Descriptions(), g.PropertyInfo().Descriptions(), typeComparer); diff != "" {
			t.Errorf("%s: factories disagree (-reflect +generated):\n%s", rt, diff)
		}
		assert.Equal(t, r.Empty(), g.Empty())
	}
}

func TestFactoryByName(t *testing.T) {
	f, err := FactoryByName("")
	require.NoError(t, err)
	assert.Equal(t, ReflectFactoryName, f.Name())

	f, err = FactoryByName(GeneratedFactoryName)
	require.NoError(t, err)
	assert.Equal(t, GeneratedFactoryName, f.Name())

	_, err = FactoryByName("bytecode")
	assert.True(t, errors.IsValidationError(err))
}

// panicMessage runs fn and returns what it panicked with, formatted.
func panicMessage(fn func()) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprint(r)
		}
	}()
	fn()
	return ""
}
