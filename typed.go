/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package componentstore

import (
	"fmt"
	"reflect"

	"github.com/suparena/componentstore/component"
	"github.com/suparena/componentstore/errors"
)

// TypeOf returns the descriptor of component type T.
func TypeOf[T any](m *Manager) (*component.Type, error) {
	return m.Type(reflect.TypeFor[T]())
}

// Create returns a new *T through the manager.
func Create[T any](m *Manager) (*T, error) {
	v, err := m.Create(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	return asPointer[T](v)
}

// Copy returns a copy of instance through the manager.
func Copy[T any](m *Manager, instance *T) (*T, error) {
	v, err := m.Copy(instance)
	if err != nil {
		return nil, err
	}
	return asPointer[T](v)
}

func asPointer[T any](v any) (*T, error) {
	p, ok := v.(*T)
	if !ok {
		var zero T
		return nil, errors.NewInstantiationError(fmt.Sprintf("%T", zero), fmt.Errorf("factory produced %T", v))
	}
	return p, nil
}
