// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package gen

import "strings"

// TypeKind discriminates the variants of a parsed type expression.
type TypeKind int

const (
	// TypePrimitive is a scalar or a named API type (string, number,
	// boolean, Response, ...).
	TypePrimitive TypeKind = iota
	// TypeVoid is the absence of a value: a null type node, a bare
	// Promise, or an empty type string.
	TypeVoid
	// TypeEnum is a string-literal union, e.g. `"png"|"jpeg"`.
	TypeEnum
	// TypeStruct is the inline object marker `Object`, optionally
	// prefixed with `null|`.
	TypeStruct
	// TypeSequence is `Array<T>`.
	TypeSequence
	// TypeMapping is `Object<K,V>`.
	TypeMapping
	// TypeUnion is any other union; it must be pre-declared in the
	// mapping table or resolution fails.
	TypeUnion
)

// TypeExpr is a type string from the api document parsed once into a tagged
// variant, so resolution pattern-matches on structure instead of re-parsing
// substrings. Classification outcomes are identical to the raw string
// grammar's.
type TypeExpr struct {
	Kind     TypeKind
	Raw      string // original string, compared against mapping entries
	Name     string // TypePrimitive: the type name
	Elem     *TypeExpr
	Key      *TypeExpr
	Value    *TypeExpr
	Literals []string // TypeEnum: literals in source order, null dropped
	Nullable bool     // TypeEnum: union carried a null alternative
}

// ParseTypeExpr parses a raw type string. It never fails: shapes the
// resolver cannot handle come back as TypeUnion and are rejected there.
func ParseTypeExpr(raw string) *TypeExpr {
	e := &TypeExpr{Raw: raw}

	// A union containing a quoted literal is an enum.
	if strings.Contains(raw, `|"`) {
		e.Kind = TypeEnum
		for _, part := range strings.Split(raw, "|") {
			if part == "null" {
				e.Nullable = true
				continue
			}
			e.Literals = append(e.Literals, strings.Trim(part, `"`))
		}
		return e
	}

	// Optional markers are dropped everywhere; absence of a value is
	// expressed through the site's required flag, not the type.
	cleaned := strings.ReplaceAll(raw, "null|", "")

	if cleaned == "Object" {
		e.Kind = TypeStruct
		return e
	}
	if strings.Contains(cleaned, "|") {
		e.Kind = TypeUnion
		return e
	}
	parseInto(e, cleaned)
	return e
}

func parseInto(e *TypeExpr, s string) {
	switch {
	case s == "" || s == "void" || s == "Promise":
		e.Kind = TypeVoid
	case strings.HasPrefix(s, "Promise<") && strings.HasSuffix(s, ">"):
		// The generated API is synchronous; the payload is the type.
		parseInto(e, s[len("Promise<"):len(s)-1])
	case strings.HasPrefix(s, "Array<") && strings.HasSuffix(s, ">"):
		e.Kind = TypeSequence
		e.Elem = ParseTypeExpr(s[len("Array<") : len(s)-1])
	case strings.HasPrefix(s, "Object<") && strings.HasSuffix(s, ">"):
		key, value := splitTopLevel(s[len("Object<") : len(s)-1])
		e.Kind = TypeMapping
		e.Key = ParseTypeExpr(key)
		e.Value = ParseTypeExpr(value)
	default:
		e.Kind = TypePrimitive
		e.Name = s
	}
}

// splitTopLevel splits "K, V" at the first comma outside angle brackets.
func splitTopLevel(s string) (string, string) {
	depth := 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
			}
		}
	}
	return strings.TrimSpace(s), ""
}

// EnumLabels normalizes the union's literals into identifier-safe constant
// names: dashes become underscores, everything upper-cased, source order
// preserved.
func EnumLabels(e *TypeExpr) []string {
	labels := make([]string, len(e.Literals))
	for i, lit := range e.Literals {
		labels[i] = strings.ToUpper(strings.ReplaceAll(lit, "-", "_"))
	}
	return labels
}
