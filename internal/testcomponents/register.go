/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package testcomponents

import (
	"reflect"

	"github.com/suparena/componentstore/registry"
)

// Module is the id of the manifest that declares these components.
const Module = "core"

func init() {
	registry.RegisterType("core:Basic", reflect.TypeFor[Basic]())
	registry.RegisterType("core:Empty", reflect.TypeFor[Empty]())
	registry.RegisterType("core:Mismatched", reflect.TypeFor[Mismatched]())
	registry.RegisterType("core:Inventory", reflect.TypeFor[Inventory]())
	registry.RegisterType("core:Stamp", reflect.TypeFor[Stamp]())
	registry.RegisterType("core:Counter", reflect.TypeFor[Counter]())
}
