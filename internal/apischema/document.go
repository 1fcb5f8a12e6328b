// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package apischema

import (
	"fmt"
	"io"
	"os"
)

// Document is a parsed api.json: an ordered mapping from interface name to
// its descriptor.
type Document struct {
	Interfaces []InterfaceDesc
}

// InterfaceDesc is one top-level interface entry of the document.
type InterfaceDesc struct {
	Name string
	Raw  *Value
}

// ParseDocument decodes an api.json document.
func ParseDocument(data []byte) (*Document, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if !v.IsObject() {
		return nil, fmt.Errorf("api document root is not an object")
	}
	doc := &Document{}
	for _, m := range v.Members() {
		if !m.Value.IsObject() {
			return nil, fmt.Errorf("interface %q: descriptor is not an object", m.Key)
		}
		doc.Interfaces = append(doc.Interfaces, InterfaceDesc{Name: m.Key, Raw: m.Value})
	}
	return doc, nil
}

// ReadDocument parses a document from r.
func ReadDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}

// LoadDocument parses the document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}

// Lookup returns the descriptor for the named interface, or nil.
func (d *Document) Lookup(name string) *InterfaceDesc {
	for i := range d.Interfaces {
		if d.Interfaces[i].Name == name {
			return &d.Interfaces[i]
		}
	}
	return nil
}

// Names returns the interface names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Interfaces))
	for i := range d.Interfaces {
		names[i] = d.Interfaces[i].Name
	}
	return names
}
