/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package component

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/suparena/componentstore/errors"
)

// Type describes one concrete component type: how to create and copy
// instances, and the accessors of its properties.
//
// A type without properties is stateless, so Create always returns the same
// instance for it.
type Type struct {
	rtype   reflect.Type
	ptype   reflect.Type
	name    string
	factory string
	info    *PropertyInfo
	newFn   func() any
	copyFn  func(dst, src any)

	singletonMu sync.Mutex
	singleton   atomic.Pointer[any]
}

func newType(s *shape, factory string, info *PropertyInfo, newFn func() any, copyFn func(dst, src any)) *Type {
	return &Type{
		rtype:   s.rtype,
		ptype:   s.ptype,
		name:    s.name,
		factory: factory,
		info:    info,
		newFn:   newFn,
		copyFn:  copyFn,
	}
}

// ReflectType returns the component type T (not *T).
func (t *Type) ReflectType() reflect.Type { return t.rtype }

// Name returns the registered name of the type, or its Go name.
func (t *Type) Name() string { return t.name }

// Factory returns the name of the strategy that built this descriptor.
func (t *Type) Factory() string { return t.factory }

func (t *Type) PropertyInfo() *PropertyInfo { return t.info }

// Empty reports whether the type declares no properties.
func (t *Type) Empty() bool { return t.info.Len() == 0 }

func (t *Type) String() string {
	return fmt.Sprintf("%s%v", t.name, t.info.Names())
}

// Create returns a new *T, or the shared instance when the type is empty.
func (t *Type) Create() (any, error) {
	if !t.Empty() {
		return t.construct()
	}
	if s := t.singleton.Load(); s != nil {
		return *s, nil
	}

	t.singletonMu.Lock()
	defer t.singletonMu.Unlock()
	if s := t.singleton.Load(); s != nil {
		return *s, nil
	}
	inst, err := t.construct()
	if err != nil {
		return nil, err
	}
	t.singleton.Store(&inst)
	return inst, nil
}

// Copy creates a new instance and copies instance into it through the type's
// own Copy method. The source is never modified.
func (t *Type) Copy(instance any) (result any, err error) {
	v := reflect.ValueOf(instance)
	if !v.IsValid() || v.Type() != t.ptype || v.IsNil() {
		return nil, errors.NewInstantiationError(t.name, fmt.Errorf("cannot copy %T, want non-nil %s", instance, t.ptype))
	}

	target, err := t.Create()
	if err != nil {
		return nil, err
	}
	if t.Empty() {
		return target, nil
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = nil, errors.NewInstantiationError(t.name, fmt.Errorf("copy panicked: %v", r))
		}
	}()
	t.copyFn(target, instance)
	return target, nil
}

func (t *Type) construct() (inst any, err error) {
	defer func() {
		if r := recover(); r != nil {
			inst, err = nil, errors.NewInstantiationError(t.name, fmt.Errorf("constructor panicked: %v", r))
		}
	}()

	inst = t.newFn()
	if in, ok := inst.(Initializer); ok {
		if err := in.Init(); err != nil {
			return nil, errors.NewInstantiationError(t.name, err)
		}
	}
	return inst, nil
}
