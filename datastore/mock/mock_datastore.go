/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides mock implementations of the DataStore interface for testing
package mock

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/componentstore/errors"
	"github.com/suparena/componentstore/storagemodels"
)

// Keyed is implemented by entities that know their own storage key.
type Keyed interface {
	StorageKey() string
}

// DataStore is a mock implementation of datastore.DataStore[T] for testing
type DataStore[T any] struct {
	mu          sync.RWMutex
	data        map[string]T
	queryFunc   func(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	getKeyFunc  func(entity T) string
	putError    error
	deleteError error
	calls       map[string]int
}

// New creates a new mock DataStore
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		data:  make(map[string]T),
		calls: make(map[string]int),
	}
}

// WithGetKeyFunc sets a custom function to extract keys from entities
func (m *DataStore[T]) WithGetKeyFunc(f func(T) string) *DataStore[T] {
	m.getKeyFunc = f
	return m
}

// WithQueryFunc sets a custom query function for testing
func (m *DataStore[T]) WithQueryFunc(f func(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)) *DataStore[T] {
	m.queryFunc = f
	return m
}

// WithPutError makes Put operations return an error
func (m *DataStore[T]) WithPutError(err error) *DataStore[T] {
	m.putError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteError = err
	return m
}

// GetOne retrieves an entity by key
func (m *DataStore[T]) GetOne(ctx context.Context, keyInput any) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["GetOne"]++

	key, err := m.resolveKey(keyInput)
	if err != nil {
		return nil, err
	}
	if entity, exists := m.data[key]; exists {
		return &entity, nil
	}

	var zero T
	return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
}

// Put stores an entity
func (m *DataStore[T]) Put(ctx context.Context, entity T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["Put"]++

	if m.putError != nil {
		return m.putError
	}

	key := m.extractKey(entity)
	if key == "" {
		return errors.NewValidationError("key", "unable to extract key from entity")
	}

	m.data[key] = entity
	return nil
}

// Query executes a query. Without a query function it returns every stored
// entity in key order.
func (m *DataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	m.mu.Lock()
	m.calls["Query"]++
	queryFunc := m.queryFunc
	m.mu.Unlock()

	if queryFunc != nil {
		return queryFunc(ctx, params)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	results := make([]T, 0, len(keys))
	for _, k := range keys {
		results = append(results, m.data[k])
		if params != nil && params.Limit != nil && len(results) >= int(*params.Limit) {
			break
		}
	}
	return results, nil
}

// Delete removes an entity by key
func (m *DataStore[T]) Delete(ctx context.Context, keyInput any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls["Delete"]++

	if m.deleteError != nil {
		return m.deleteError
	}

	key, err := m.resolveKey(keyInput)
	if err != nil {
		return err
	}
	if _, exists := m.data[key]; !exists {
		var zero T
		return errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}

	delete(m.data, key)
	return nil
}

// Helper methods for testing

// SetData directly sets the internal data map (for testing)
func (m *DataStore[T]) SetData(data map[string]T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}

// GetData returns a copy of the internal data map (for testing)
func (m *DataStore[T]) GetData() map[string]T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[string]T, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}

// Count returns the number of stored entities
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Calls returns how often the named operation was invoked.
func (m *DataStore[T]) Calls(op string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[op]
}

// Clear removes all data
func (m *DataStore[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]T)
}

func (m *DataStore[T]) resolveKey(keyInput any) (string, error) {
	switch k := keyInput.(type) {
	case string:
		return k, nil
	case T:
		return m.extractKey(k), nil
	case *T:
		if k != nil {
			return m.extractKey(*k), nil
		}
	}
	return "", errors.NewValidationError("keyInput", fmt.Sprintf("unsupported key %T", keyInput))
}

// extractKey attempts to extract a key from an entity
func (m *DataStore[T]) extractKey(entity T) string {
	if m.getKeyFunc != nil {
		return m.getKeyFunc(entity)
	}
	if k, ok := any(entity).(Keyed); ok {
		return k.StorageKey()
	}
	return fmt.Sprintf("key_%v", entity)
}
