/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sync"
)

// AccessorFuncs are the generated, reflection-free accessors for one property.
// Set receives values that have already been checked against the property type.
type AccessorFuncs struct {
	Get func(instance any) any
	Set func(instance any, value any)
}

// Generated is the table emitted by componentgen for one component type.
type Generated struct {
	New       func() any
	Copy      func(dst, src any)
	Accessors map[string]AccessorFuncs
}

var (
	generatedRegistry = make(map[reflect.Type]Generated)
	generatedMu       sync.RWMutex
)

// RegisterGenerated records the generated table for t. It panics if t already
// has one, as two generated files for the same type means a stale build.
func RegisterGenerated(t reflect.Type, g Generated) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	generatedMu.Lock()
	defer generatedMu.Unlock()
	if _, exists := generatedRegistry[t]; exists {
		panic(fmt.Sprintf("generated registry: accessors for %s already registered", t))
	}
	generatedRegistry[t] = g
}

// GeneratedFor returns the generated table for t, if any.
func GeneratedFor(t reflect.Type) (Generated, bool) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	generatedMu.RLock()
	defer generatedMu.RUnlock()
	g, ok := generatedRegistry[t]
	return g, ok
}
