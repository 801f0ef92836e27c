/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package component

import (
	"reflect"

	"github.com/suparena/componentstore/registry"
)

// GeneratedFactory is the high-throughput strategy. It prefers the accessor
// tables that componentgen registers in init(), and resolves method values
// once per build for anything the tables do not cover.
//
// Which properties exist and their types still come from introspection, so
// a stale generated table can never change the shape of a type.
type GeneratedFactory struct{}

func (GeneratedFactory) Name() string { return GeneratedFactoryName }

func (f GeneratedFactory) Build(t reflect.Type) (*Type, error) {
	s, err := inspect(t)
	if err != nil {
		return nil, err
	}
	gen, hasGen := registry.GeneratedFor(s.rtype)

	accessors := make([]PropertyAccessor, 0, len(s.pairs))
	for _, p := range s.pairs {
		base := newProperty(s, p)
		if fns, ok := gen.Accessors[p.name]; hasGen && ok && fns.Get != nil && fns.Set != nil {
			accessors = append(accessors, &generatedAccessor{property: base, fns: fns})
			continue
		}
		accessors = append(accessors, &compiledAccessor{
			property: base,
			get:      p.getter.Func,
			set:      p.setter.Func,
		})
	}
	info, err := NewPropertyInfo(accessors)
	if err != nil {
		return nil, err
	}

	newFn := gen.New
	if newFn == nil {
		rt := s.rtype
		newFn = func() any { return reflect.New(rt).Interface() }
	}
	copyFn := gen.Copy
	if copyFn == nil {
		cp := s.copy.Func
		copyFn = func(dst, src any) {
			cp.Call([]reflect.Value{reflect.ValueOf(dst), reflect.ValueOf(src)})
		}
	}
	return newType(s, f.Name(), info, newFn, copyFn), nil
}
