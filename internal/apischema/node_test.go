// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package apischema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, data string) *Value {
	t.Helper()
	v, err := Parse([]byte(data))
	require.NoError(t, err)
	return v
}

func TestNewNode_PathChain(t *testing.T) {
	root := NewNode(nil, mustParse(t, `{"name": "Page"}`))
	method := NewNode(root, mustParse(t, `{"name": "click"}`))
	param := NewNode(method, mustParse(t, `{"name": "options"}`))

	assert.Equal(t, "Page", root.Path)
	assert.Equal(t, "Page.click", method.Path)
	assert.Equal(t, "Page.click.options", param.Path)
	assert.Same(t, method, param.Parent)
}

func TestNewNode_EmptyNameFallsBackToParentPath(t *testing.T) {
	root := NewNode(nil, mustParse(t, `{"name": "Page"}`))
	anon := NewNode(root, mustParse(t, `"number"`))

	assert.Equal(t, "", anon.Name)
	assert.Equal(t, "Page", anon.Path)
}

func TestNewAliasNode_SharesParentPath(t *testing.T) {
	root := NewNode(nil, mustParse(t, `{"name": "Page"}`))
	method := NewNode(root, mustParse(t, `{"name": "goto"}`))
	typeNode := NewAliasNode(method, mustParse(t, `{"name": "Promise<Response>"}`))

	assert.Equal(t, "Page.goto", typeNode.Path)
	assert.Equal(t, "Promise<Response>", typeNode.Name)
}
