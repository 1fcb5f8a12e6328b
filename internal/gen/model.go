// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

// Package gen resolves the api document into a declaration model: one
// Interface per top-level entry, with methods, events and the synthesized
// enums and nested classes their types require.
package gen

import (
	"fmt"

	"github.com/MinjaMiladinovic/playwright-java/internal/apischema"
)

// Interface is one resolved top-level interface. Its Scope owns the
// synthesized types referenced directly by its own members; nested classes
// own their members' types themselves.
type Interface struct {
	Name    string
	Methods []*Method
	Events  []*Event
	Scope
}

// Method is a resolved method declaration.
type Method struct {
	Name       string // after the rename table
	RawName    string
	ReturnType string
	Params     []*Param
}

// Param is one method parameter.
type Param struct {
	Name     string
	Type     string
	Optional bool
}

// Event is a resolved event with its classification.
type Event struct {
	Path        string
	PayloadType string
	Info        EventInfo
}

// Build resolves one top-level interface descriptor. All synthesized types
// land in the returned Interface's scope tree; nothing is shared across
// interfaces, so independent Build calls may run concurrently.
func Build(desc apischema.InterfaceDesc, opts Options, mapper TypeMapper) (*Interface, error) {
	r := &resolver{opts: opts, mapper: mapper}
	node := apischema.NewNode(nil, desc.Raw)
	iface := &Interface{Name: node.Name}

	for _, m := range desc.Raw.Get("members").Members() {
		kind := m.Value.Get("kind").Str()
		switch kind {
		case "method":
			method, err := r.buildMethod(node, m.Value, iface)
			if err != nil {
				return nil, err
			}
			iface.Methods = append(iface.Methods, method)
		case "event":
			event, err := r.buildEvent(node, m.Value, iface)
			if err != nil {
				return nil, err
			}
			iface.Events = append(iface.Events, event)
		}
	}
	return iface, nil
}

func (r *resolver) buildMethod(parent *apischema.Node, raw *apischema.Value, iface *Interface) (*Method, error) {
	node := apischema.NewNode(parent, raw)
	optional := !raw.Get("required").Bool()
	returnType, _, err := r.resolveType(node, raw.Get("type"), &iface.Scope, nil, siteReturn, optional)
	if err != nil {
		return nil, err
	}

	method := &Method{
		Name:       r.opts.MethodName(node.Name),
		RawName:    node.Name,
		ReturnType: returnType,
	}
	for _, arg := range raw.Get("args").Members() {
		paramNode := apischema.NewNode(node, arg.Value)
		paramOptional := !arg.Value.Get("required").Bool()
		paramType, _, err := r.resolveType(
			paramNode, arg.Value.Get("type"), &iface.Scope, nil, siteParam, paramOptional)
		if err != nil {
			return nil, err
		}
		method.Params = append(method.Params, &Param{
			Name:     paramNode.Name,
			Type:     paramType,
			Optional: paramOptional,
		})
	}
	return method, nil
}

func (r *resolver) buildEvent(parent *apischema.Node, raw *apischema.Value, iface *Interface) (*Event, error) {
	node := apischema.NewNode(parent, raw)
	payload, _, err := r.resolveType(node, raw.Get("type"), &iface.Scope, nil, siteEvent, false)
	if err != nil {
		return nil, err
	}
	info, ok := r.opts.Events[node.Path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, node.Path)
	}
	return &Event{Path: node.Path, PayloadType: payload, Info: info}, nil
}
