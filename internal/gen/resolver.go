// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package gen

import (
	"fmt"
	"strings"

	"github.com/MinjaMiladinovic/playwright-java/internal/apischema"
)

// TypeMapper maps resolved structural types to target-language type
// strings. The emitter package for each target language implements it.
type TypeMapper interface {
	// Scalar maps a scalar or named API type. Optional numeric and
	// boolean sites must map to a nullable form so absence is
	// representable.
	Scalar(name string, optional bool) string

	// Sequence wraps an element type in the target's list type.
	Sequence(elem string) string

	// Mapping wraps key and value types in the target's map type.
	Mapping(key, value string) string

	// Void is the target's "no value" type.
	Void() string
}

// site identifies the kind of type-bearing node being resolved. It drives
// synthesized names and the usage role of synthesized classes.
type site int

const (
	siteReturn site = iota
	siteParam
	siteField
	siteEvent
)

type resolver struct {
	opts   Options
	mapper TypeMapper
}

// resolveType resolves the type node owned by owner, registering any
// synthesized definitions into scope. outer is the enclosing nested class
// when scope belongs to one. It returns the resolved type name and, when
// the site synthesized a nested class, its definition.
func (r *resolver) resolveType(
	owner *apischema.Node,
	typeVal *apischema.Value,
	scope *Scope,
	outer *ClassDef,
	st site,
	optional bool,
) (string, *ClassDef, error) {
	var raw string
	if typeVal.IsObject() {
		raw = typeVal.Get("name").Str()
	}
	expr := ParseTypeExpr(raw)

	// The owning method, param or field path keys the override table.
	entry, hasEntry := r.opts.Mappings[owner.Path]
	if hasEntry {
		if entry.From != raw {
			return "", nil, fmt.Errorf("%w for %s: expected %q, found %q",
				ErrMappingMismatch, owner.Path, entry.From, raw)
		}
		if entry.Define != nil {
			// The definer owns all nested registration.
			entry.Define(scope)
			return entry.To, nil, nil
		}
		switch expr.Kind {
		case TypeEnum:
			scope.AddEnum(&EnumDef{Name: entry.To, Labels: EnumLabels(expr)})
			return entry.To, nil, nil
		case TypeStruct:
			cls, err := r.defineClass(entry.To, owner, typeVal, scope, outer, st)
			return entry.To, cls, err
		}
		return entry.To, nil, nil
	}

	switch expr.Kind {
	case TypeEnum:
		return "", nil, fmt.Errorf("%w for: %s", ErrMissingEnumMapping, owner.Path)
	case TypeStruct:
		name := synthesizedName(owner, st)
		cls, err := r.defineClass(name, owner, typeVal, scope, outer, st)
		return name, cls, err
	case TypeUnion:
		return "", nil, fmt.Errorf("%w: %s: %s", ErrUnresolvedUnion, owner.Path, raw)
	}

	if typeVal.IsNull() {
		return r.mapper.Void(), nil, nil
	}
	return renderExpr(expr, optional, r.mapper), nil, nil
}

// defineClass registers a synthesized class under name and resolves its
// member fields with the new class as their scope. Registration is
// first-wins: an existing same-named class is returned untouched and its
// members are not re-resolved.
func (r *resolver) defineClass(
	name string,
	owner *apischema.Node,
	typeVal *apischema.Value,
	scope *Scope,
	outer *ClassDef,
	st site,
) (*ClassDef, error) {
	if existing := scope.LookupClass(name); existing != nil {
		return existing, nil
	}

	role := RoleSupplied
	if st == siteReturn {
		role = RoleReturned
	}
	cls := &ClassDef{Name: name, Role: role, Outer: outer}
	scope.AddClass(cls)

	// The class node shares its owner's schema coordinate; its fields
	// extend the path from there.
	classNode := apischema.NewAliasNode(owner, typeVal)
	for _, m := range typeVal.Get("properties").Members() {
		fieldNode := apischema.NewNode(classNode, m.Value)
		fieldOptional := !m.Value.Get("required").Bool()
		fieldType, fieldCls, err := r.resolveType(
			fieldNode, m.Value.Get("type"), &cls.Scope, cls, siteField, fieldOptional)
		if err != nil {
			return nil, err
		}
		cls.Fields = append(cls.Fields, FieldDef{Name: m.Key, Type: fieldType, Class: fieldCls})
	}
	return cls, nil
}

// synthesizedName derives the class name for an inline object with no
// mapping entry. A field names the class after itself; a method-owned slot
// prefixes the method name so identically-named objects on different
// methods stay distinct.
func synthesizedName(owner *apischema.Node, st site) string {
	if st == siteField {
		return toTitle(owner.Name)
	}
	return toTitle(owner.Parent.Name) + toTitle(owner.Name)
}

func renderExpr(e *TypeExpr, optional bool, m TypeMapper) string {
	switch e.Kind {
	case TypeVoid:
		return m.Void()
	case TypeSequence:
		return m.Sequence(renderExpr(e.Elem, false, m))
	case TypeMapping:
		return m.Mapping(renderExpr(e.Key, false, m), renderExpr(e.Value, false, m))
	default:
		return m.Scalar(e.Name, optional)
	}
}

func toTitle(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
