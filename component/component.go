/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package component

import (
	"reflect"

	"github.com/suparena/componentstore/errors"
	"github.com/suparena/componentstore/registry"
)

// Component is the contract every managed data type implements: its pointer
// type can overwrite its declared state with another instance's.
//
//	type Health struct{ current, max int }
//
//	func (h *Health) Copy(other *Health) { *h = *other }
//
// Copy must leave other unchanged.
type Component[T any] interface {
	*T
	Copy(other *T)
}

// Initializer is implemented by components that need more than a zero value
// when created. An error from Init fails that Create call.
type Initializer interface {
	Init() error
}

// normalize maps T and *T to T and rejects types that can never satisfy the
// component contract.
func normalize(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, errors.NewNotComponentError("<nil>", "nil type")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer:
		return nil, errors.NewNotComponentError(t.String(), "component types must be concrete, non-pointer types")
	}
	return t, nil
}

// Name returns the display name used for t in errors and logs: the registered
// module name when there is one, the Go type name otherwise.
func Name(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name, ok := registry.TypeName(t); ok {
		return name
	}
	return t.String()
}
