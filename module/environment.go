/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package module

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/suparena/componentstore/errors"
	"github.com/suparena/componentstore/registry"
)

// TypeResolver maps the component names listed in manifests to Go types.
type TypeResolver interface {
	ResolveType(name string) (reflect.Type, error)
}

// Environment is a consistent set of modules: ids are unique, required
// dependencies are present and there are no dependency cycles.
type Environment struct {
	ordered  []*Module
	byID     map[string]*Module
	deps     map[string][]string
	resolver TypeResolver
}

// NewEnvironment validates modules and orders them so that every module comes
// after its dependencies. A nil resolver means the process-wide type registry.
func NewEnvironment(modules []*Module, resolver TypeResolver) (*Environment, error) {
	if resolver == nil {
		resolver = registry.Resolver{}
	}
	env := &Environment{
		byID:     make(map[string]*Module, len(modules)),
		deps:     make(map[string][]string, len(modules)),
		resolver: resolver,
	}

	for _, m := range modules {
		if _, dup := env.byID[m.ID()]; dup {
			return nil, errors.NewModuleError(m.ID(), "duplicate module id")
		}
		env.byID[m.ID()] = m
	}

	for _, m := range modules {
		for _, d := range m.Manifest.Dependencies {
			if _, ok := env.byID[d.ID]; !ok {
				if d.Optional {
					continue
				}
				return nil, errors.NewModuleError(m.ID(), fmt.Sprintf("missing required dependency %s", d.ID))
			}
			env.deps[m.ID()] = append(env.deps[m.ID()], d.ID)
		}
	}

	if err := env.order(); err != nil {
		return nil, err
	}
	return env, nil
}

// order sorts modules topologically, visiting ids alphabetically so the
// result is stable.
func (e *Environment) order() error {
	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int, len(e.byID))
	var stack []string

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case done:
			return nil
		case visiting:
			start := 0
			for i, s := range stack {
				if s == id {
					start = i
				}
			}
			cycle := append(append([]string(nil), stack[start:]...), id)
			return errors.NewModuleError(id, "dependency cycle: "+strings.Join(cycle, " -> "))
		}

		state[id] = visiting
		stack = append(stack, id)
		deps := append([]string(nil), e.deps[id]...)
		sort.Strings(deps)
		for _, d := range deps {
			if err := visit(d); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		state[id] = done
		e.ordered = append(e.ordered, e.byID[id])
		return nil
	}

	ids := make([]string, 0, len(e.byID))
	for id := range e.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}

// Modules returns the modules in dependency order.
func (e *Environment) Modules() []*Module {
	return append([]*Module(nil), e.ordered...)
}

func (e *Environment) Module(id string) (*Module, bool) {
	m, ok := e.byID[id]
	return m, ok
}

// Dependencies returns the ids id depends on, directly or transitively, sorted.
func (e *Environment) Dependencies(id string) []string {
	seen := make(map[string]bool)
	var walk func(string)
	walk = func(cur string) {
		for _, d := range e.deps[cur] {
			if !seen[d] {
				seen[d] = true
				walk(d)
			}
		}
	}
	walk(id)

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// ComponentTypes resolves the components declared by every module, in
// dependency order.
func (e *Environment) ComponentTypes() ([]reflect.Type, error) {
	var types []reflect.Type
	for _, m := range e.ordered {
		for _, name := range m.Manifest.Components {
			t, err := e.resolver.ResolveType(name)
			if err != nil {
				return nil, fmt.Errorf("module %s: %w", m.ID(), err)
			}
			types = append(types, t)
		}
	}
	return types, nil
}

// ResolveProviders picks which of the candidate modules in options serve a
// request made from the module context. The context itself wins when it is
// an option; otherwise the options it depends on are returned. An empty or
// unknown context resolves to nothing.
func (e *Environment) ResolveProviders(options []string, context string) []string {
	if _, ok := e.byID[context]; !ok {
		return []string{}
	}
	for _, o := range options {
		if o == context {
			return []string{context}
		}
	}

	deps := make(map[string]bool)
	for _, d := range e.Dependencies(context) {
		deps[d] = true
	}
	out := []string{}
	for _, o := range options {
		if deps[o] {
			out = append(out, o)
			delete(deps, o)
		}
	}
	sort.Strings(out)
	return out
}
