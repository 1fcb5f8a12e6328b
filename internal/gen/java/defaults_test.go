// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package java

import (
	"testing"

	"github.com/MinjaMiladinovic/playwright-java/internal/apischema"
	"github.com/MinjaMiladinovic/playwright-java/internal/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, ifaceJSON string) string {
	t.Helper()
	raw, err := apischema.Parse([]byte(ifaceJSON))
	require.NoError(t, err)

	opts := DefaultOptions()
	iface, err := gen.Build(
		apischema.InterfaceDesc{Name: raw.Get("name").Str(), Raw: raw}, opts, Mapper{})
	require.NoError(t, err)

	out, err := NewEmitter("com.microsoft.playwright", opts).Emit(iface)
	require.NoError(t, err)
	return string(out)
}

func TestDefaults_PageNavigate(t *testing.T) {
	src := generate(t, `{"name": "Page", "members": {
		"goto": {"kind": "method", "name": "goto", "required": true,
			"type": {"name": "Promise<Response>"},
			"args": {
				"url": {"name": "url", "required": true, "type": {"name": "string"}},
				"options": {"name": "options", "required": false, "type": {"name": "Object", "properties": {
					"timeout": {"name": "timeout", "required": false, "type": {"name": "number"}},
					"waitUntil": {"name": "waitUntil", "required": false,
						"type": {"name": "\"load\"|\"domcontentloaded\"|\"networkidle\""}}
				}}}
			}}
	}}`)

	// goto is a Java keyword; the rename table rewrites it.
	assert.Contains(t, src, "Response navigate(String url, GotoOptions options);")
	assert.Contains(t, src, "default Response navigate(String url) {")
	assert.NotContains(t, src, " goto(")

	// waitUntil resolves through the mapping table into an enum owned by
	// the options class.
	assert.Contains(t, src, "public enum WaitUntilState { LOAD, DOMCONTENTLOADED, NETWORKIDLE}")
	assert.Contains(t, src, "public WaitUntilState waitUntil;")
	assert.Contains(t, src, "public GotoOptions withWaitUntil(WaitUntilState waitUntil) {")
	assert.Contains(t, src, "public Integer timeout;")
}

func TestDefaults_EventGate(t *testing.T) {
	src := generate(t, `{"name": "Page", "members": {
		"popup": {"kind": "event", "name": "popup", "type": {"name": "Page"}},
		"crash": {"kind": "event", "name": "crash", "type": {"name": "void"}}
	}}`)

	assert.Contains(t, src, "Deferred<Page> waitForPopup();")
	assert.NotContains(t, src, "waitForCrash")
}

func TestDefaults_GeolocationDefiner(t *testing.T) {
	src := generate(t, `{"name": "BrowserContext", "members": {
		"setGeolocation": {"kind": "method", "name": "setGeolocation", "required": true,
			"type": {"name": "Promise"},
			"args": {
				"geolocation": {"name": "geolocation", "required": true, "type": {"name": "null|Object"}}
			}}
	}}`)

	// Coordinates come from the hand-defined class, as double rather than
	// the int that number would synthesize.
	assert.Contains(t, src, "void setGeolocation(Geolocation geolocation);")
	assert.Contains(t, src, "public double latitude;")
	assert.Contains(t, src, "public Geolocation withLatitude(double latitude) {")
	assert.Contains(t, src, "public Geolocation withAccuracy(double accuracy) {")
}

func TestDefaults_EveryMappingParses(t *testing.T) {
	for path, m := range defaultMappings() {
		expr := gen.ParseTypeExpr(m.From)
		if m.Define != nil {
			continue
		}
		switch expr.Kind {
		case gen.TypeEnum, gen.TypeStruct, gen.TypeUnion:
		default:
			t.Errorf("mapping %s: From %q resolves without needing the table", path, m.From)
		}
	}
}

func TestMapper(t *testing.T) {
	m := Mapper{}

	assert.Equal(t, "String", m.Scalar("string", false))
	assert.Equal(t, "String", m.Scalar("string", true))
	assert.Equal(t, "int", m.Scalar("number", false))
	assert.Equal(t, "Integer", m.Scalar("number", true))
	assert.Equal(t, "boolean", m.Scalar("boolean", false))
	assert.Equal(t, "Boolean", m.Scalar("boolean", true))
	assert.Equal(t, "Response", m.Scalar("Response", true))

	assert.Equal(t, "List<Frame>", m.Sequence("Frame"))
	assert.Equal(t, "Map<String, String>", m.Mapping("String", "String"))
	assert.Equal(t, "void", m.Void())
}

func TestDefaults_AllowlistCoveredByEventTable(t *testing.T) {
	events := defaultEvents()
	for path := range defaultEventAllowlist() {
		_, ok := events[path]
		assert.True(t, ok, "allowlisted event %s missing from the event table", path)
	}
}
