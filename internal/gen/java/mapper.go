// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

// Package java renders the resolved declaration model as Java source.
package java

// Mapper maps structural types to Java type strings. Optional numeric and
// boolean sites use the boxed forms so an omitted value is representable
// as null.
type Mapper struct{}

// Scalar maps a scalar or named API type.
func (Mapper) Scalar(name string, optional bool) string {
	switch name {
	case "string":
		return "String"
	case "number":
		if optional {
			return "Integer"
		}
		return "int"
	case "boolean":
		if optional {
			return "Boolean"
		}
		return "boolean"
	}
	return name
}

// Sequence maps Array<T>.
func (Mapper) Sequence(elem string) string { return "List<" + elem + ">" }

// Mapping maps Object<K,V>.
func (Mapper) Mapping(key, value string) string { return "Map<" + key + ", " + value + ">" }

// Void is the no-value type.
func (Mapper) Void() string { return "void" }
