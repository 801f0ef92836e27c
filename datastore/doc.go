/*
Package datastore defines the persistence interface used for component snapshots.

The main interface is DataStore[T], which provides generic CRUD operations for any record type T:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, keyInput any) (*T, error)
	    Put(ctx context.Context, entity T) error
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	    Delete(ctx context.Context, keyInput any) error
	}

Keys are derived from the index map registered for T (see registry.RegisterIndexMap).
A missing item is reported as errors.NotFoundError by every implementation.

Implementations:
  - ddb: DynamoDB implementation with support for single-table design
  - mock: In-memory mock implementation for testing
*/
package datastore
