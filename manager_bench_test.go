/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package componentstore_test

import (
	"reflect"
	"testing"

	"github.com/suparena/componentstore"
	tc "github.com/suparena/componentstore/internal/testcomponents"
)

func BenchmarkManager(b *testing.B) {
	for _, f := range factories {
		m := componentstore.NewManager(componentstore.WithFactory(f))
		ct, err := m.Type(reflect.TypeFor[tc.Basic]())
		if err != nil {
			b.Fatal(err)
		}
		name, _ := ct.PropertyInfo().Property("name")
		inst, err := ct.Create()
		if err != nil {
			b.Fatal(err)
		}

		b.Run(f.Name()+"/Type", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := m.Type(reflect.TypeFor[tc.Basic]()); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(f.Name()+"/Copy", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := ct.Copy(inst); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(f.Name()+"/SetGet", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := name.Set(inst, "bench"); err != nil {
					b.Fatal(err)
				}
				_ = name.Get(inst)
			}
		})
	}
}
