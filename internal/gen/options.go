// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package gen

// Mapping forces the resolved type for one schema path. From is the exact
// raw type string expected at that path; observing anything else is a hard
// error (the table has drifted from the document). Define, when set, takes
// over nested registration entirely and default synthesis is skipped.
type Mapping struct {
	From   string
	To     string
	Define func(*Scope)
}

// EventKind is the subscription pattern generated for an event.
type EventKind int

const (
	// EventWaitFor generates a single future-returning operation,
	// fulfilled on the event's first occurrence.
	EventWaitFor EventKind = iota
	// EventListener generates an add/remove listener pair.
	EventListener
	// EventHandler generates an add/remove listener pair semantically
	// limited to one active handler. Same emission shape as EventListener.
	EventHandler
)

// EventInfo classifies one known event path.
type EventInfo struct {
	Prefix string // name fragment for the generated operations
	Kind   EventKind
}

// Options carries the operator tables. They are plain values constructed by
// the driver and passed down, so independent documents and tables can be
// resolved concurrently without shared state.
type Options struct {
	// Mappings is the path-keyed type override table.
	Mappings map[string]Mapping

	// Events classifies every event path the generator accepts; events
	// outside this table fail resolution.
	Events map[string]EventInfo

	// EventAllowlist gates which classified events are actually emitted
	// while the event API settles. Empty means emit everything.
	EventAllowlist map[string]bool

	// MethodRenames remaps raw method names that collide with target
	// keywords or read poorly in the target language.
	MethodRenames map[string]string
}

// MethodName applies the rename table to a raw method name.
func (o Options) MethodName(raw string) string {
	if renamed, ok := o.MethodRenames[raw]; ok {
		return renamed
	}
	return raw
}

// EmitEvent reports whether the event at path passes the allow-list gate.
func (o Options) EmitEvent(path string) bool {
	if len(o.EventAllowlist) == 0 {
		return true
	}
	return o.EventAllowlist[path]
}
