/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package componentstore

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/suparena/componentstore/component"
	"github.com/suparena/componentstore/errors"
	"github.com/suparena/componentstore/metric"
	"github.com/suparena/componentstore/module"
)

// Manager caches one component type descriptor per Go type and hands out
// instances through it. It is safe for concurrent use.
type Manager struct {
	factory component.TypeFactory
	logger  *slog.Logger
	metrics *metric.Metrics

	types  sync.Map // reflect.Type -> *component.Type
	builds singleflight.Group
}

// Option configures a Manager.
type Option func(*Manager)

// WithFactory selects the strategy used to build descriptors.
func WithFactory(f component.TypeFactory) Option {
	return func(m *Manager) {
		m.factory = f
	}
}

// WithLogger sets the manager's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithMetrics records cache and build statistics into metrics.
func WithMetrics(metrics *metric.Metrics) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// NewManager creates a Manager. Without options it builds descriptors with
// the reflect factory and logs to slog.Default().
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		factory: component.ReflectFactory{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Factory returns the strategy the manager builds descriptors with.
func (m *Manager) Factory() component.TypeFactory { return m.factory }

// Type returns the descriptor for t, building it on first use. t may be T or *T.
//
// Concurrent first requests for the same type share one build. A failed build
// is reported to every waiting caller and is not remembered, so a later call
// tries again.
func (m *Manager) Type(t reflect.Type) (*component.Type, error) {
	if t == nil {
		return nil, errors.NewNotComponentError("<nil>", "nil type")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Pointer {
		return nil, errors.NewNotComponentError(t.String(), "component types must be concrete, non-pointer types")
	}

	if ct, ok := m.types.Load(t); ok {
		m.recordHit()
		return ct.(*component.Type), nil
	}
	m.recordMiss()

	v, err, _ := m.builds.Do(buildKey(t), func() (any, error) {
		return m.build(t)
	})
	if err != nil {
		return nil, err
	}

	ct := v.(*component.Type)
	if ct.ReflectType() != t {
		// two distinct types printed the same key
		if ct, err = m.build(t); err != nil {
			return nil, err
		}
	}
	return ct, nil
}

func (m *Manager) build(t reflect.Type) (*component.Type, error) {
	if ct, ok := m.types.Load(t); ok {
		return ct.(*component.Type), nil
	}

	start := time.Now()
	ct, err := m.factory.Build(t)
	elapsed := time.Since(start)
	if m.metrics != nil {
		m.metrics.RecordBuild(m.factory.Name(), elapsed, err)
	}
	if err != nil {
		m.logger.Warn("Component type build failed.",
			"component", component.Name(t), "factory", m.factory.Name(), "error", err)
		return nil, err
	}

	actual, loaded := m.types.LoadOrStore(t, ct)
	if !loaded {
		if m.metrics != nil {
			m.metrics.RecordCached()
		}
		m.logger.Debug("Component type built.",
			"component", ct.Name(), "factory", m.factory.Name(),
			"properties", ct.PropertyInfo().Len(), "duration", elapsed)
	}
	return actual.(*component.Type), nil
}

// buildKey is the type's qualified name.
func buildKey(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// Create returns a new instance of t, or the shared instance of an empty type.
func (m *Manager) Create(t reflect.Type) (any, error) {
	ct, err := m.Type(t)
	if err != nil {
		return nil, err
	}
	return ct.Create()
}

// Copy returns a new instance holding a copy of instance's state. instance
// must be a non-nil pointer to a component.
func (m *Manager) Copy(instance any) (any, error) {
	ct, err := m.Type(reflect.TypeOf(instance))
	if err != nil {
		return nil, err
	}
	return ct.Copy(instance)
}

// Types returns every cached descriptor sorted by name.
func (m *Manager) Types() []*component.Type {
	var out []*component.Type
	m.types.Range(func(_, v any) bool {
		out = append(out, v.(*component.Type))
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name() != out[j].Name() {
			return out[i].Name() < out[j].Name()
		}
		return out[i].ReflectType().String() < out[j].ReflectType().String()
	})
	return out
}

// LoadEnvironment builds the descriptor of every component declared by the
// environment's modules. The first failure stops the load.
func (m *Manager) LoadEnvironment(env *module.Environment) ([]*component.Type, error) {
	rtypes, err := env.ComponentTypes()
	if err != nil {
		return nil, err
	}

	out := make([]*component.Type, 0, len(rtypes))
	for _, t := range rtypes {
		ct, err := m.Type(t)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", component.Name(t), err)
		}
		out = append(out, ct)
	}
	m.logger.Info("Environment loaded.", "modules", len(env.Modules()), "components", len(out))
	return out, nil
}

func (m *Manager) recordHit() {
	if m.metrics != nil {
		m.metrics.RecordHit()
	}
}

func (m *Manager) recordMiss() {
	if m.metrics != nil {
		m.metrics.RecordMiss()
	}
}
