/*
Package module discovers component modules at run time.

A module is a directory with a module.yaml manifest at its root:

	id: modulef
	version: 0.3.0
	dependencies:
	  - id: core
	  - id: physics
	    optional: true
	components:
	  - modulef:Sprite
	  - modulef:Tag

Component names refer to Go types registered with registry.RegisterType by the
module's package. A module can therefore be linked in by a blank import
without anything else in the program naming its types.

Discover loads every module below a root directory. NewEnvironment checks the
set for duplicate ids, missing required dependencies and cycles, and orders it
so that dependencies come first. Environment.ComponentTypes then yields the
types to hand to a componentstore.Manager:

	modules, err := module.Discover(ctx, "/opt/modules")
	env, err := module.NewEnvironment(modules, nil)
	types, err := env.ComponentTypes()
	for _, t := range types {
	    desc, err := manager.Type(t)
	}
*/
package module
