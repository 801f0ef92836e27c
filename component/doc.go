/*
Package component describes component types discovered at run time.

A component is any named type whose pointer implements Copy(other *T). Its
properties are the getter/setter method pairs following Go naming:

	func (b *Basic) Name() string      // getter
	func (b *Basic) SetName(v string)  // setter

Getter-only and setter-only names are not properties. When the getter and the
setter disagree on the type, the property takes the type that both sides can
use: the setter's parameter type if the getter's result is assignable to it,
the getter's result type if the reverse holds, and a PropertyResolutionError
otherwise.

A TypeFactory turns a reflect.Type into a Type descriptor. Two strategies are
provided and behave identically:

  - ReflectFactory: pure introspection, methods looked up by name on each call
  - GeneratedFactory: accessor tables emitted by componentgen, with method
    values resolved once at build time as a fallback

Descriptors are not cached here; see componentstore.Manager.
*/
package component
