/*
Package processor generates reflection-free accessor tables for component types.

It parses the Go files of one package, finds every type whose pointer declares
Copy(*T), pairs its getters and setters by name and writes a file that
registers the tables with the generated registry:

	func init() {
	    registry.RegisterGenerated(reflect.TypeFor[Basic](), registry.Generated{
	        New:  func() any { return new(Basic) },
	        Copy: func(dst, src any) { dst.(*Basic).Copy(src.(*Basic)) },
	        Accessors: map[string]registry.AccessorFuncs{
	            "name": {
	                Get: func(c any) any { return c.(*Basic).Name() },
	                Set: func(c, v any) { x, _ := v.(string); c.(*Basic).SetName(x) },
	            },
	        },
	    })
	}

The generator works on syntax only. Property types are resolved at run time
by component.GeneratedFactory, which ignores table entries for names that do
not form a property there.

Usage through go:generate:

	//go:generate go run github.com/suparena/componentstore/cmd/componentgen -dir . -out accessors_gen.go
*/
package processor
