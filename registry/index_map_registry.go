/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// indexMapRegistry associates persisted record types with their DynamoDB key templates.
var (
	indexMapRegistry = make(map[reflect.Type]map[string]string)
	indexMu          sync.RWMutex
)

// RegisterIndexMap associates a Go type T with a given DynamoDB index map (PK, SK, etc.).
// Registering the same type again replaces the previous map.
func RegisterIndexMap[T any](idxMap map[string]string) {
	t := reflect.TypeFor[T]()

	copied := make(map[string]string, len(idxMap))
	for k, v := range idxMap {
		copied[k] = v
	}

	indexMu.Lock()
	defer indexMu.Unlock()
	indexMapRegistry[t] = copied
}

// GetIndexMap retrieves the indexMap for type T, if any.
func GetIndexMap[T any]() (map[string]string, bool) {
	t := reflect.TypeFor[T]()

	indexMu.RLock()
	defer indexMu.RUnlock()
	m, ok := indexMapRegistry[t]
	return m, ok
}
