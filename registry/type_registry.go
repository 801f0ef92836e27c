/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/suparena/componentstore/errors"
)

// typeRegistry holds the mapping from a qualified component name (like
// "modulef:Sprite") to the Go type that implements it. Modules fill it from
// init() so that manifests can refer to types by name.
var (
	typeRegistry = make(map[string]reflect.Type)
	typeNames    = make(map[reflect.Type]string)
	typeMu       sync.RWMutex
)

// RegisterType registers a component type under the given name. Pointer types
// are normalized to their element type.
// If a type is already registered for the given name, it panics to prevent accidental overrides.
func RegisterType(name string, t reflect.Type) {
	if name == "" {
		panic("type registry: empty type name")
	}
	if t == nil {
		panic(fmt.Sprintf("type registry: nil type for name %q", name))
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	typeMu.Lock()
	defer typeMu.Unlock()
	if _, exists := typeRegistry[name]; exists {
		panic(fmt.Sprintf("type registry: type with name %q already registered", name))
	}
	typeRegistry[name] = t
	if _, named := typeNames[t]; !named {
		typeNames[t] = name
	}
}

// LookupType returns the type registered under name.
// If no type is registered, it returns a NotFoundError.
func LookupType(name string) (reflect.Type, error) {
	typeMu.RLock()
	defer typeMu.RUnlock()
	t, ok := typeRegistry[name]
	if !ok {
		return nil, errors.NewNotFoundError("component type", name)
	}
	return t, nil
}

// TypeName returns the first name t was registered under.
func TypeName(t reflect.Type) (string, bool) {
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	typeMu.RLock()
	defer typeMu.RUnlock()
	name, ok := typeNames[t]
	return name, ok
}

// RegisteredTypes returns all registered names in sorted order.
func RegisteredTypes() []string {
	typeMu.RLock()
	defer typeMu.RUnlock()
	names := make([]string, 0, len(typeRegistry))
	for name := range typeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolver is the default TypeResolver backed by the process-wide type registry.
type Resolver struct{}

// ResolveType implements module.TypeResolver.
func (Resolver) ResolveType(name string) (reflect.Type, error) {
	return LookupType(name)
}
