/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testcomponents holds the fixture components shared by the test
// suites. accessors_gen.go is produced by componentgen from this file.
package testcomponents

//go:generate go run ../../cmd/componentgen -dir . -out accessors_gen.go

import (
	"errors"
	"slices"
	"strconv"

	"github.com/go-openapi/strfmt"
)

// Basic has two plain string properties.
type Basic struct {
	name        string
	description string
}

func (b *Basic) Name() string               { return b.name }
func (b *Basic) SetName(name string)        { b.name = name }
func (b *Basic) Description() string        { return b.description }
func (b *Basic) SetDescription(desc string) { b.description = desc }

func (b *Basic) Copy(other *Basic) {
	b.name = other.name
	b.description = other.description
}

// Empty declares no properties.
type Empty struct{}

func (e *Empty) Copy(*Empty) {}

// CharSeq is a read-only character sequence.
type CharSeq interface {
	Len() int
	String() string
}

// Str is the concrete CharSeq used by Mismatched.
type Str string

func (s Str) Len() int       { return len(s) }
func (s Str) String() string { return string(s) }

// Mismatched returns a narrower type than its setter accepts, so its
// property resolves to CharSeq.
type Mismatched struct {
	stringProperty Str
}

func (m *Mismatched) StringProperty() Str { return m.stringProperty }

func (m *Mismatched) SetStringProperty(v CharSeq) {
	if v == nil {
		m.stringProperty = ""
		return
	}
	m.stringProperty = Str(v.String())
}

func (m *Mismatched) Copy(other *Mismatched) {
	m.stringProperty = other.stringProperty
}

// Inventory owns a slice, which Copy duplicates.
type Inventory struct {
	owner string
	items []string
}

func (i *Inventory) Owner() string           { return i.owner }
func (i *Inventory) SetOwner(owner string)   { i.owner = owner }
func (i *Inventory) Items() []string         { return i.items }
func (i *Inventory) SetItems(items []string) { i.items = items }

// Count is read-only and therefore not a property.
func (i *Inventory) Count() int { return len(i.items) }

// SetCapacity is write-only and therefore not a property.
func (i *Inventory) SetCapacity(n int) { i.items = slices.Grow(i.items, n) }

func (i *Inventory) Copy(other *Inventory) {
	i.owner = other.owner
	i.items = slices.Clone(other.items)
}

// Stamp carries a date-time property.
type Stamp struct {
	label     string
	createdAt strfmt.DateTime
}

func (s *Stamp) Label() string                          { return s.label }
func (s *Stamp) SetLabel(label string)                  { s.label = label }
func (s *Stamp) CreatedAt() strfmt.DateTime             { return s.createdAt }
func (s *Stamp) SetCreatedAt(createdAt strfmt.DateTime) { s.createdAt = createdAt }

func (s *Stamp) Copy(other *Stamp) {
	s.label = other.label
	s.createdAt = other.createdAt
}

// ErrNoStartLevel is returned by Counter.Init when StartLevel is negative.
var ErrNoStartLevel = errors.New("start level must not be negative")

// StartLevel is the value new Counters begin with.
var StartLevel = 1

// Counter is initialized by Init rather than left at its zero value.
type Counter struct {
	level int
}

func (c *Counter) Init() error {
	if StartLevel < 0 {
		return ErrNoStartLevel
	}
	c.level = StartLevel
	return nil
}

func (c *Counter) Level() int         { return c.level }
func (c *Counter) SetLevel(level int) { c.level = level }

func (c *Counter) Copy(other *Counter) {
	c.level = other.level
}

// Incompatible pairs a string getter with an int setter. No type serves both,
// so building it always fails.
type Incompatible struct {
	value int
}

func (i *Incompatible) Value() string  { return strconv.Itoa(i.value) }
func (i *Incompatible) SetValue(v int) { i.value = v }

func (i *Incompatible) Copy(other *Incompatible) {
	i.value = other.value
}
