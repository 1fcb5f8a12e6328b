// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package gen

// Role records how a synthesized nested class is used, decided once at its
// synthesis site.
type Role int

const (
	// RoleReturned marks a class read from the API: private fields plus
	// one getter per field.
	RoleReturned Role = iota
	// RoleSupplied marks a class handed to the API: public fields plus
	// fluent builder methods.
	RoleSupplied
)

// EnumDef is a synthesized enum: a name and its constant labels in source
// order.
type EnumDef struct {
	Name   string
	Labels []string
}

// FieldDef is one member of a synthesized class. Class is non-nil when the
// field's own type is a synthesized nested class; builder emission then
// produces a lazy set-and-descend method instead of a fluent setter.
type FieldDef struct {
	Name  string
	Type  string
	Class *ClassDef
}

// ClassDef is a synthesized nested value class. It is its own naming scope:
// enums and classes referenced by its fields register here, not in the
// enclosing scope. Outer points at the enclosing ClassDef when the class is
// nested inside another synthesized class, nil when the interface owns it.
type ClassDef struct {
	Name   string
	Role   Role
	Outer  *ClassDef
	Fields []FieldDef
	Scope
}

// Scope owns the deduplicated synthesized types of an interface or of a
// nested class. Registration is first-wins: a second definition under an
// existing name is dropped, and later-registered same-named types are
// assumed identical in shape.
type Scope struct {
	Enums   []*EnumDef
	Classes []*ClassDef
}

// AddEnum registers e unless an enum of the same name exists. It reports
// whether the insert was new, so callers (and tests) can observe dedup.
func (s *Scope) AddEnum(e *EnumDef) bool {
	for _, existing := range s.Enums {
		if existing.Name == e.Name {
			return false
		}
	}
	s.Enums = append(s.Enums, e)
	return true
}

// AddClass registers c unless a class of the same name exists. It reports
// whether the insert was new.
func (s *Scope) AddClass(c *ClassDef) bool {
	for _, existing := range s.Classes {
		if existing.Name == c.Name {
			return false
		}
	}
	s.Classes = append(s.Classes, c)
	return true
}

// LookupClass returns the class registered under name, or nil.
func (s *Scope) LookupClass(name string) *ClassDef {
	for _, c := range s.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}
