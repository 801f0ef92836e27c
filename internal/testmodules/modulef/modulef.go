/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package modulef is a module whose components are only reachable through its
// manifest. Nothing in the store refers to these types directly; they are
// registered by name when the package is linked in.
package modulef

import (
	"reflect"

	"github.com/suparena/componentstore/registry"
)

// Sprite positions a texture.
type Sprite struct {
	x, y    float64
	texture string
}

func (s *Sprite) X() float64                { return s.x }
func (s *Sprite) SetX(x float64)            { s.x = x }
func (s *Sprite) Y() float64                { return s.y }
func (s *Sprite) SetY(y float64)            { s.y = y }
func (s *Sprite) Texture() string           { return s.texture }
func (s *Sprite) SetTexture(texture string) { s.texture = texture }

func (s *Sprite) Copy(other *Sprite) {
	*s = *other
}

// Tag marks an entity and holds no data.
type Tag struct{}

func (t *Tag) Copy(*Tag) {}

func init() {
	registry.RegisterType("modulef:Sprite", reflect.TypeFor[Sprite]())
	registry.RegisterType("modulef:Tag", reflect.TypeFor[Tag]())
}
