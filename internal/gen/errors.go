// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package gen

import "errors"

// All resolution failures are fatal. They indicate drift between the api
// document and the operator tables and must be fixed before anything is
// generated.
var (
	// ErrMissingEnumMapping indicates a string-literal union with no
	// mapping entry; the raw union carries no usable type name.
	ErrMissingEnumMapping = errors.New("cannot create enum, type mapping is missing")

	// ErrMappingMismatch indicates a mapping entry whose expected source
	// type does not equal the type observed in the document.
	ErrMappingMismatch = errors.New("unexpected source type")

	// ErrUnresolvedUnion indicates a type union with no mapping entry.
	ErrUnresolvedUnion = errors.New("missing mapping for type union")

	// ErrUnknownEvent indicates an event path absent from the event table.
	ErrUnknownEvent = errors.New("type mapping is missing for event")

	// ErrUnknownEventKind indicates an event table entry with an
	// unrecognized subscription kind. Unreachable with a well-formed table.
	ErrUnknownEventKind = errors.New("unexpected event kind")
)
