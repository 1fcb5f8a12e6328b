// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package apischema

// Node wraps a raw document value with its lexical name, its dotted schema
// path and a back-reference to its enclosing node. The path identifies the
// node's coordinate in the document and keys the operator tables.
type Node struct {
	Name   string
	Path   string
	Raw    *Value
	Parent *Node
}

// NewNode creates a node under parent. The name is taken from the raw
// object's "name" member; non-object values get an empty name and inherit
// the parent's path. The path is computed once here and never changes.
func NewNode(parent *Node, raw *Value) *Node {
	n := &Node{Raw: raw, Parent: parent}
	if raw.IsObject() {
		n.Name = raw.Get("name").Str()
	}
	switch {
	case parent == nil:
		n.Path = n.Name
	case n.Name == "":
		n.Path = parent.Path
	default:
		n.Path = parent.Path + "." + n.Name
	}
	return n
}

// NewAliasNode creates a node that shares its parent's path. Used for a
// method/param/field's type sub-node, which lives at the same schema
// coordinate as its owner.
func NewAliasNode(parent *Node, raw *Value) *Node {
	n := &Node{Raw: raw, Parent: parent, Path: parent.Path}
	if raw.IsObject() {
		n.Name = raw.Get("name").Str()
	}
	return n
}
