// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_AddEnumDedup(t *testing.T) {
	var s Scope

	assert.True(t, s.AddEnum(&EnumDef{Name: "Media", Labels: []string{"SCREEN", "PRINT"}}))
	assert.False(t, s.AddEnum(&EnumDef{Name: "Media", Labels: []string{"OTHER"}}))

	require.Len(t, s.Enums, 1)
	// First registration wins; the second shape is dropped.
	assert.Equal(t, []string{"SCREEN", "PRINT"}, s.Enums[0].Labels)
}

func TestScope_AddClassDedup(t *testing.T) {
	var s Scope

	first := &ClassDef{Name: "Options"}
	assert.True(t, s.AddClass(first))
	assert.False(t, s.AddClass(&ClassDef{Name: "Options"}))

	require.Len(t, s.Classes, 1)
	assert.Same(t, first, s.LookupClass("Options"))
}

func TestScope_LookupClassMissing(t *testing.T) {
	var s Scope
	assert.Nil(t, s.LookupClass("Nope"))
}

func TestScope_RegistrationOrderPreserved(t *testing.T) {
	var s Scope
	s.AddEnum(&EnumDef{Name: "B"})
	s.AddEnum(&EnumDef{Name: "A"})
	s.AddClass(&ClassDef{Name: "Z"})
	s.AddClass(&ClassDef{Name: "Y"})

	assert.Equal(t, "B", s.Enums[0].Name)
	assert.Equal(t, "A", s.Enums[1].Name)
	assert.Equal(t, "Z", s.Classes[0].Name)
	assert.Equal(t, "Y", s.Classes[1].Name)
}
