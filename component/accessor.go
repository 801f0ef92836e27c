/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package component

import (
	"fmt"
	"reflect"

	"github.com/suparena/componentstore/errors"
	"github.com/suparena/componentstore/registry"
)

// PropertyAccessor reads and writes one named, typed property of a component type.
type PropertyAccessor interface {
	// Name is unique within the owning type's PropertyInfo.
	Name() string
	// PropertyType is the resolved type shared by the getter and the setter.
	PropertyType() reflect.Type
	// Owner is the pointer type of the component this accessor belongs to.
	Owner() reflect.Type
	// Get reads the property. It panics if instance is not a non-nil Owner.
	Get(instance any) any
	// Set writes the property in place.
	Set(instance any, value any) error
}

// property carries what every accessor implementation shares.
type property struct {
	owner        reflect.Type
	component    string
	name         string
	propertyType reflect.Type
	setterIn     reflect.Type
}

func newProperty(s *shape, p propertyPair) property {
	return property{
		owner:        s.ptype,
		component:    s.name,
		name:         p.name,
		propertyType: p.propertyType,
		setterIn:     p.setter.Type.In(1),
	}
}

func (p *property) Name() string               { return p.name }
func (p *property) PropertyType() reflect.Type { return p.propertyType }
func (p *property) Owner() reflect.Type        { return p.owner }

func (p *property) String() string {
	return fmt.Sprintf("%s.%s (%s)", p.component, p.name, p.propertyType)
}

// receiver validates instance for a read. Misuse is a programming error.
func (p *property) receiver(instance any) reflect.Value {
	v := reflect.ValueOf(instance)
	if !v.IsValid() || v.Type() != p.owner || v.IsNil() {
		panic(fmt.Sprintf("component: property %s.%s read on %T, want non-nil %s", p.component, p.name, instance, p.owner))
	}
	return v
}

func (p *property) checkReceiver(instance any) (reflect.Value, error) {
	v := reflect.ValueOf(instance)
	if !v.IsValid() || v.Type() != p.owner || v.IsNil() {
		return reflect.Value{}, errors.NewPropertyValueError(p.component, p.name, p.owner, reflect.TypeOf(instance))
	}
	return v, nil
}

// argument converts value into an argument for the setter.
func (p *property) argument(value any) (reflect.Value, error) {
	if value == nil {
		if nillable(p.setterIn) {
			return reflect.Zero(p.setterIn), nil
		}
		return reflect.Value{}, errors.NewPropertyValueError(p.component, p.name, p.setterIn, nil)
	}
	v := reflect.ValueOf(value)
	if v.Type() != p.setterIn && !v.Type().AssignableTo(p.setterIn) {
		return reflect.Value{}, errors.NewPropertyValueError(p.component, p.name, p.setterIn, v.Type())
	}
	return v, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// reflectAccessor looks its methods up by name on every call.
type reflectAccessor struct {
	property
	getter string
	setter string
}

func (a *reflectAccessor) Get(instance any) any {
	return a.receiver(instance).MethodByName(a.getter).Call(nil)[0].Interface()
}

func (a *reflectAccessor) Set(instance any, value any) error {
	recv, err := a.checkReceiver(instance)
	if err != nil {
		return err
	}
	arg, err := a.argument(value)
	if err != nil {
		return err
	}
	recv.MethodByName(a.setter).Call([]reflect.Value{arg})
	return nil
}

// compiledAccessor calls method values resolved once at build time.
type compiledAccessor struct {
	property
	get reflect.Value
	set reflect.Value
}

func (a *compiledAccessor) Get(instance any) any {
	return a.get.Call([]reflect.Value{a.receiver(instance)})[0].Interface()
}

func (a *compiledAccessor) Set(instance any, value any) error {
	recv, err := a.checkReceiver(instance)
	if err != nil {
		return err
	}
	arg, err := a.argument(value)
	if err != nil {
		return err
	}
	a.set.Call([]reflect.Value{recv, arg})
	return nil
}

// generatedAccessor delegates to code emitted by componentgen.
type generatedAccessor struct {
	property
	fns registry.AccessorFuncs
}

func (a *generatedAccessor) Get(instance any) any {
	a.receiver(instance)
	return a.fns.Get(instance)
}

func (a *generatedAccessor) Set(instance any, value any) error {
	if _, err := a.checkReceiver(instance); err != nil {
		return err
	}
	if value == nil || reflect.TypeOf(value) != a.setterIn {
		arg, err := a.argument(value)
		if err != nil {
			return err
		}
		// generated setters type-assert to the exact parameter type
		if a.setterIn.Kind() != reflect.Interface {
			value = arg.Convert(a.setterIn).Interface()
		}
	}
	a.fns.Set(instance, value)
	return nil
}

// Accessor is a typed view of a PropertyAccessor for callers that know both
// the component type T and the property type V at compile time.
type Accessor[T any, V any] struct {
	untyped PropertyAccessor
}

// AccessorFor looks up a property by name and checks that it belongs to T and
// has exactly type V.
func AccessorFor[T any, V any](info *PropertyInfo, name string) (Accessor[T, V], bool) {
	a, ok := info.Property(name)
	if !ok || a.Owner() != reflect.TypeFor[*T]() || a.PropertyType() != reflect.TypeFor[V]() {
		return Accessor[T, V]{}, false
	}
	return Accessor[T, V]{untyped: a}, true
}

func (a Accessor[T, V]) Name() string { return a.untyped.Name() }

// Untyped returns the underlying accessor.
func (a Accessor[T, V]) Untyped() PropertyAccessor { return a.untyped }

func (a Accessor[T, V]) Get(instance *T) V {
	v, _ := a.untyped.Get(instance).(V)
	return v
}

func (a Accessor[T, V]) Set(instance *T, value V) error {
	return a.untyped.Set(instance, value)
}
