/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package component

import (
	"fmt"
	"reflect"
	"sort"
	"unicode"

	"github.com/suparena/componentstore/errors"
)

const (
	copyMethod   = "Copy"
	setterPrefix = "Set"
)

// propertyPair is a getter/setter pair with its resolved property type.
type propertyPair struct {
	name         string
	getter       reflect.Method
	setter       reflect.Method
	propertyType reflect.Type
}

// shape is everything a factory needs to know about one component type.
// Both factories build from the same shape, so they cannot disagree on which
// properties exist or what type they have.
type shape struct {
	rtype reflect.Type
	ptype reflect.Type
	name  string
	copy  reflect.Method
	pairs []propertyPair
}

// inspect validates the component contract of t and resolves its accessor pairs.
func inspect(t reflect.Type) (*shape, error) {
	rt, err := normalize(t)
	if err != nil {
		return nil, err
	}
	pt := reflect.PointerTo(rt)
	name := Name(rt)

	cp, ok := pt.MethodByName(copyMethod)
	if !ok {
		return nil, errors.NewNotComponentError(name, fmt.Sprintf("missing method Copy(%s)", pt))
	}
	if cp.Type.NumIn() != 2 || cp.Type.In(1) != pt || cp.Type.NumOut() != 0 {
		return nil, errors.NewNotComponentError(name, fmt.Sprintf("Copy must have signature func(%s)", pt))
	}

	getters := make(map[string]reflect.Method)
	setters := make(map[string]reflect.Method)
	for i := range pt.NumMethod() {
		m := pt.Method(i)
		if m.Name == copyMethod {
			continue
		}
		mt := m.Type
		if mt.NumIn() == 1 && mt.NumOut() == 1 {
			getters[m.Name] = m
		}
		if isSetter(m) {
			setters[m.Name[len(setterPrefix):]] = m
		}
	}

	suffixes := make([]string, 0, len(setters))
	for suffix := range setters {
		if _, ok := getters[suffix]; ok {
			suffixes = append(suffixes, suffix)
		}
	}
	sort.Strings(suffixes)

	pairs := make([]propertyPair, 0, len(suffixes))
	for _, suffix := range suffixes {
		getter, setter := getters[suffix], setters[suffix]
		propName := PropertyName(suffix)
		propType, err := resolvePropertyType(name, propName, getter.Type.Out(0), setter.Type.In(1))
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, propertyPair{
			name:         propName,
			getter:       getter,
			setter:       setter,
			propertyType: propType,
		})
	}

	return &shape{rtype: rt, ptype: pt, name: name, copy: cp, pairs: pairs}, nil
}

func isSetter(m reflect.Method) bool {
	mt := m.Type
	return len(m.Name) > len(setterPrefix) &&
		m.Name[:len(setterPrefix)] == setterPrefix &&
		mt.NumIn() == 2 && mt.NumOut() == 0 && !mt.IsVariadic()
}

// resolvePropertyType picks the one type that is valid both as a read result
// and as a write argument. The setter's type wins when both directions work.
func resolvePropertyType(component, property string, getter, setter reflect.Type) (reflect.Type, error) {
	switch {
	case getter.AssignableTo(setter):
		return setter, nil
	case setter.AssignableTo(getter):
		return getter, nil
	default:
		return nil, errors.NewPropertyResolutionError(component, property, getter, setter)
	}
}

// PropertyName lowers the leading upper-case run of a Go method name:
// Name becomes name, ID becomes id and URLPath becomes urlPath.
func PropertyName(goName string) string {
	r := []rune(goName)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	switch {
	case n == 0:
		return goName
	case n > 1 && n < len(r):
		n--
	}
	for i := 0; i < n; i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}
