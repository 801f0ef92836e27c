/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design with macro-based key expansion (e.g., "ENTITY#{EntityID}")
  - Lookups by string key or by a partially filled entity
  - Paginated queries with retry on throttling

Macro Expansion:
Keys are built from the index map registered for T. Macros are replaced with
the entity's field values:

	registry.RegisterIndexMap[storagemodels.ComponentRecord](map[string]string{
	    "PK": "ENTITY#{EntityID}",       // Becomes "ENTITY#e1"
	    "SK": "COMPONENT#{ComponentType}", // Becomes "COMPONENT#core:Basic"
	})

A string key replaces every macro with the same value, which suits index maps
whose PK and SK share one field.

Queries:

	records, err := store.Query(ctx, storagemodels.EntityQuery("e1"))

Integration tests run with -tags integration and read AWS settings from the
environment or a .env file at the module root.
*/
package ddb
