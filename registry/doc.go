/*
Package registry holds the process-wide registries that let the component
store work with types it was never compiled against.

Type Registry:
Maps qualified component names, as used in module manifests, to Go types:

	registry.RegisterType("modulef:Sprite", reflect.TypeFor[Sprite]())

Generated Registry:
Holds the reflection-free accessor tables emitted by componentgen. The
generated factory uses them when present and falls back to pre-resolved
methods otherwise:

	registry.RegisterGenerated(reflect.TypeFor[Basic](), registry.Generated{
	    New:  func() any { return new(Basic) },
	    Copy: func(dst, src any) { dst.(*Basic).Copy(src.(*Basic)) },
	    Accessors: map[string]registry.AccessorFuncs{ ... },
	})

Index Map Registry:
Associates persisted Go types with DynamoDB key patterns:

	registry.RegisterIndexMap[storagemodels.ComponentRecord](map[string]string{
	    "PK": "ENTITY#{EntityID}",
	    "SK": "COMPONENT#{ComponentType}",
	})

The registries are thread-safe and should be populated during initialization,
typically in init() functions or through generated code.
*/
package registry
