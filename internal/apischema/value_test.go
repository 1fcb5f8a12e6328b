// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package apischema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MemberOrderPreserved(t *testing.T) {
	v, err := Parse([]byte(`{"zebra": 1, "apple": 2, "mango": 3}`))
	require.NoError(t, err)
	require.True(t, v.IsObject())

	var keys []string
	for _, m := range v.Members() {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"zebra", "apple", "mango"}, keys)
}

func TestParse_Scalars(t *testing.T) {
	v, err := Parse([]byte(`{"s": "hi", "n": 4.5, "b": true, "z": null}`))
	require.NoError(t, err)

	assert.Equal(t, "hi", v.Get("s").Str())
	assert.Equal(t, 4.5, v.Get("n").Num())
	assert.True(t, v.Get("b").Bool())
	assert.True(t, v.Get("z").IsNull())
}

func TestParse_NestedArraysAndObjects(t *testing.T) {
	v, err := Parse([]byte(`{"list": [{"x": 1}, {"x": 2}]}`))
	require.NoError(t, err)

	elems := v.Get("list").Elems()
	require.Len(t, elems, 2)
	assert.Equal(t, float64(1), elems[0].Get("x").Num())
	assert.Equal(t, float64(2), elems[1].Get("x").Num())
}

func TestValue_GetMissing(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1}`))
	require.NoError(t, err)

	assert.Nil(t, v.Get("b"))
	assert.True(t, v.Get("b").IsNull())
	assert.Equal(t, "", v.Get("b").Str())
	assert.False(t, v.Get("b").Bool())
}

func TestValue_NilSafety(t *testing.T) {
	var v *Value
	assert.Equal(t, Null, v.Kind())
	assert.Nil(t, v.Members())
	assert.Nil(t, v.Get("x"))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`{"a": `))
	assert.Error(t, err)
}

func TestParseDocument_OrderAndLookup(t *testing.T) {
	doc, err := ParseDocument([]byte(`{
		"Browser": {"name": "Browser", "members": {}},
		"Page": {"name": "Page", "members": {}}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Browser", "Page"}, doc.Names())
	require.NotNil(t, doc.Lookup("Page"))
	assert.Equal(t, "Page", doc.Lookup("Page").Name)
	assert.Nil(t, doc.Lookup("Frame"))
}

func TestParseDocument_RootNotObject(t *testing.T) {
	_, err := ParseDocument([]byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestParseDocument_DescriptorNotObject(t *testing.T) {
	_, err := ParseDocument([]byte(`{"Page": 42}`))
	assert.Error(t, err)
}
