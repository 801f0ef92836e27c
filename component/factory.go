/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package component

import (
	"fmt"
	"reflect"

	"github.com/suparena/componentstore/errors"
)

// Factory names accepted by FactoryByName.
const (
	ReflectFactoryName   = "reflect"
	GeneratedFactoryName = "generated"
)

// TypeFactory builds a Type for a component type. Build is pure: calling it
// twice yields descriptors that behave the same. Caching is the caller's job.
type TypeFactory interface {
	Name() string
	Build(t reflect.Type) (*Type, error)
}

// FactoryByName returns the factory registered under name. An empty name
// selects the reflect factory.
func FactoryByName(name string) (TypeFactory, error) {
	switch name {
	case "", ReflectFactoryName:
		return ReflectFactory{}, nil
	case GeneratedFactoryName:
		return GeneratedFactory{}, nil
	default:
		return nil, errors.NewValidationError("factory", fmt.Sprintf("unknown factory %q", name))
	}
}

// ReflectFactory builds descriptors by pure runtime introspection. Every
// access goes through reflect by method name.
type ReflectFactory struct{}

func (ReflectFactory) Name() string { return ReflectFactoryName }

func (f ReflectFactory) Build(t reflect.Type) (*Type, error) {
	s, err := inspect(t)
	if err != nil {
		return nil, err
	}

	accessors := make([]PropertyAccessor, 0, len(s.pairs))
	for _, p := range s.pairs {
		accessors = append(accessors, &reflectAccessor{
			property: newProperty(s, p),
			getter:   p.getter.Name,
			setter:   p.setter.Name,
		})
	}
	info, err := NewPropertyInfo(accessors)
	if err != nil {
		return nil, err
	}

	rt := s.rtype
	return newType(s, f.Name(), info,
		func() any { return reflect.New(rt).Interface() },
		func(dst, src any) {
			reflect.ValueOf(dst).MethodByName(copyMethod).Call([]reflect.Value{reflect.ValueOf(src)})
		},
	), nil
}
