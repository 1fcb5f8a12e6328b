// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

// Package apischema provides loading and traversal of the api.json
// API description document.
package apischema

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Kind identifies the JSON shape of a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Object
	Array
)

// Value is a single JSON value from the api document. Object member order is
// preserved exactly as it appears in the document; generation order (and
// therefore output bytes) depends on it.
type Value struct {
	kind    Kind
	str     string
	num     float64
	boolean bool
	members []Member
	elems   []*Value
}

// Member is one key/value pair of a JSON object.
type Member struct {
	Key   string
	Value *Value
}

// Parse decodes raw JSON into a Value tree with member order preserved.
func Parse(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	v, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("parse api document: %w", err)
	}
	return v, nil
}

func parseValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			v := &Value{kind: Object}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				member, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				v.members = append(v.members, Member{Key: key, Value: member})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return v, nil
		case '[':
			v := &Value{kind: Array}
			for dec.More() {
				elem, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				v.elems = append(v.elems, elem)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return v, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return &Value{kind: String, str: t}, nil
	case float64:
		return &Value{kind: Number, num: t}, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return &Value{kind: Number, num: f}, nil
	case bool:
		return &Value{kind: Bool, boolean: t}, nil
	case nil:
		return &Value{kind: Null}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// Kind returns the JSON shape of v. A nil Value reports Null.
func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

// IsNull reports whether v is absent or the JSON null literal.
func (v *Value) IsNull() bool { return v.Kind() == Null }

// IsObject reports whether v is a JSON object.
func (v *Value) IsObject() bool { return v.Kind() == Object }

// Str returns the string payload, or "" for non-string values.
func (v *Value) Str() string {
	if v == nil || v.kind != String {
		return ""
	}
	return v.str
}

// Num returns the numeric payload, or 0 for non-number values.
func (v *Value) Num() float64 {
	if v == nil || v.kind != Number {
		return 0
	}
	return v.num
}

// Bool returns the boolean payload, or false for non-bool values.
func (v *Value) Bool() bool {
	if v == nil || v.kind != Bool {
		return false
	}
	return v.boolean
}

// Members returns the object members in document order, or nil for
// non-object values.
func (v *Value) Members() []Member {
	if v == nil || v.kind != Object {
		return nil
	}
	return v.members
}

// Elems returns the array elements, or nil for non-array values.
func (v *Value) Elems() []*Value {
	if v == nil || v.kind != Array {
		return nil
	}
	return v.elems
}

// Get returns the member named key, or nil if v is not an object or has no
// such member.
func (v *Value) Get(key string) *Value {
	for _, m := range v.Members() {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}

// ReadAll parses a Value tree from r.
func ReadAll(r io.Reader) (*Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
