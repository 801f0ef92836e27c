/*
Package snapshot persists component instances property by property.

Capture walks a component's property index and records each value under its
property name; Restore creates a fresh instance of the recorded type and sets
the values back through the same accessors. Neither needs to know the
component's Go type at compile time, so components of runtime-loaded modules
round-trip like any other:

	m := componentstore.NewManager()
	store := snapshot.NewStore(m, ddbStore)

	id := snapshot.NewEntityID()
	_, err := store.Save(ctx, id, sprite)
	...
	restored, err := store.Load(ctx, id, reflect.TypeOf(sprite))

Records are keyed by entity id and registered component name, so a type must
be registered with registry.RegisterType to be restored.

Values implementing encoding.TextMarshaler are stored as text and decoded with
their UnmarshalText. Properties of interface type restore only from values
that already implement the interface.
*/
package snapshot
