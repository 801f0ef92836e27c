/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/componentstore/storagemodels"
)

// DataStore persists values of type T.
//
// keyInput is either a string, expanded into every macro of the type's index
// map, or a value (usually a partial T) whose fields fill the macros.
type DataStore[T any] interface {
	GetOne(ctx context.Context, keyInput any) (*T, error)

	Put(ctx context.Context, entity T) error

	Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)

	Delete(ctx context.Context, keyInput any) error
}
