// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MinjaMiladinovic/playwright-java/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	require.NoError(t, os.Chdir(dir))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad_NoConfigUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	ctx, err := Load(context.Background())
	require.NoError(t, err)

	sessionCtx := From(ctx)
	require.NotNil(t, sessionCtx)
	assert.Equal(t, "api.json", sessionCtx.Config.Schema)
	assert.Equal(t, "com.microsoft.playwright", sessionCtx.Config.JavaPackage)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, "version: 1\nschema: data/api.json\noutput: out\n")
	chdir(t, dir)

	ctx, err := Load(context.Background())
	require.NoError(t, err)

	sessionCtx := From(ctx)
	require.NotNil(t, sessionCtx)
	assert.Equal(t, "data/api.json", sessionCtx.Config.Schema)
	assert.Equal(t, "out", sessionCtx.Config.Output)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "version: [broken\n"},
		{name: "unsupported version", content: "version: 99\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, ConfigFileName, tt.content)
			chdir(t, dir)

			_, err := Load(context.Background())
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "api.json", `{"Page": {"name": "Page", "members": {}}}`)
	writeFile(t, dir, "other.json", `{"Browser": {"name": "Browser", "members": {}}}`)

	sessionCtx := &Context{Config: &config.Config{Schema: "api.json"}, WorkDir: dir}

	doc, err := sessionCtx.LoadDocument("")
	require.NoError(t, err)
	assert.Equal(t, []string{"Page"}, doc.Names())

	// An explicit override wins over the configured path.
	doc, err = sessionCtx.LoadDocument("other.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"Browser"}, doc.Names())
}

func TestLoadDocument_NotFound(t *testing.T) {
	sessionCtx := &Context{Config: &config.Config{Schema: "missing.json"}, WorkDir: t.TempDir()}

	_, err := sessionCtx.LoadDocument("")
	assert.ErrorIs(t, err, ErrSchemaNotFound)
}

func TestLoadDocument_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "api.json", "not json")

	sessionCtx := &Context{Config: &config.Config{Schema: "api.json"}, WorkDir: dir}

	_, err := sessionCtx.LoadDocument("")
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestFrom_NoContextStored(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}
