/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package component

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/suparena/componentstore/errors"
)

// PropertyInfo indexes the accessors of one component type by name and by
// property type. It is immutable once built.
type PropertyInfo struct {
	ordered []PropertyAccessor
	byName  map[string]PropertyAccessor
	byType  map[reflect.Type][]PropertyAccessor
}

// PropertyDescription is the comparable summary of one property.
type PropertyDescription struct {
	Name string
	Type reflect.Type
}

// NewPropertyInfo builds the index. Two accessors with the same name are a
// validation error.
func NewPropertyInfo(accessors []PropertyAccessor) (*PropertyInfo, error) {
	info := &PropertyInfo{
		ordered: make([]PropertyAccessor, 0, len(accessors)),
		byName:  make(map[string]PropertyAccessor, len(accessors)),
		byType:  make(map[reflect.Type][]PropertyAccessor),
	}
	for _, a := range accessors {
		if _, dup := info.byName[a.Name()]; dup {
			return nil, errors.NewValidationError("name", fmt.Sprintf("duplicate property %q", a.Name()))
		}
		info.byName[a.Name()] = a
		info.byType[a.PropertyType()] = append(info.byType[a.PropertyType()], a)
		info.ordered = append(info.ordered, a)
	}
	sort.Slice(info.ordered, func(i, j int) bool {
		return info.ordered[i].Name() < info.ordered[j].Name()
	})
	return info, nil
}

// Property returns the accessor for name. The lookup is exact and case-sensitive.
func (p *PropertyInfo) Property(name string) (PropertyAccessor, bool) {
	a, ok := p.byName[name]
	return a, ok
}

// PropertiesOfType returns every accessor whose resolved type is exactly t.
func (p *PropertyInfo) PropertiesOfType(t reflect.Type) []PropertyAccessor {
	found := p.byType[t]
	out := make([]PropertyAccessor, len(found))
	copy(out, found)
	return out
}

// Properties returns all accessors sorted by name.
func (p *PropertyInfo) Properties() []PropertyAccessor {
	out := make([]PropertyAccessor, len(p.ordered))
	copy(out, p.ordered)
	return out
}

func (p *PropertyInfo) Len() int {
	return len(p.ordered)
}

func (p *PropertyInfo) Names() []string {
	names := make([]string, len(p.ordered))
	for i, a := range p.ordered {
		names[i] = a.Name()
	}
	return names
}

// Descriptions returns name and type of every property, sorted by name.
// Two indexes describe the same properties exactly when their descriptions are equal.
func (p *PropertyInfo) Descriptions() []PropertyDescription {
	out := make([]PropertyDescription, len(p.ordered))
	for i, a := range p.ordered {
		out[i] = PropertyDescription{Name: a.Name(), Type: a.PropertyType()}
	}
	return out
}
