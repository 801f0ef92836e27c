/*
Package componentstore turns plain data types into introspectable component
types with uniform get/set access to their properties, including types that
only become known once a module is loaded at run time.

A component is any struct whose pointer type has a Copy method:

	type Health struct{ current, max int }

	func (h *Health) Current() int     { return h.current }
	func (h *Health) SetCurrent(v int) { h.current = v }
	func (h *Health) Copy(o *Health)   { *h = *o }

Every getter X paired with a setter SetX is a property, named with a
lower-case first word ("current"). When the getter and setter disagree on
the value type, the wider of the two becomes the property type; when neither
is assignable to the other the type cannot be described.

The Manager builds one descriptor per type and caches it:

	m := componentstore.NewManager(
	    componentstore.WithFactory(component.GeneratedFactory{}),
	    componentstore.WithMetrics(metrics),
	)

	ct, err := componentstore.TypeOf[Health](m)
	h, err := componentstore.Create[Health](m)
	clone, err := componentstore.Copy(m, h)

	current, _ := ct.PropertyInfo().Property("current")
	err = current.Set(h, 10)

Types without properties are stateless, so Create hands out one shared
instance for them.

Two factories build descriptors. The reflect factory calls methods by name;
the generated factory uses accessor tables emitted by componentgen and falls
back to pre-resolved methods. Both describe every type identically.

Modules declared by module.yaml manifests are found with module.Discover and
checked with module.NewEnvironment; Manager.LoadEnvironment then describes
every component they declare. The snapshot package persists component
instances through their properties, with DynamoDB (datastore/ddb) as the
backing store.
*/
package componentstore
