// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MinjaMiladinovic/playwright-java/internal/apischema"
	"github.com/MinjaMiladinovic/playwright-java/internal/config"
)

var (
	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaNotFound indicates the api document could not be read.
	ErrSchemaNotFound = errors.New("api document not found")

	// ErrInvalidSchema indicates the api document could not be parsed.
	ErrInvalidSchema = errors.New("invalid api document")
)

// ConfigFileName is the name of the apigen configuration file.
const ConfigFileName = "apigen.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration for one run.
type Context struct {
	// Config is the loaded configuration, or the defaults when no
	// apigen.yaml exists in the working directory.
	Config *config.Config

	// WorkDir is the directory relative paths resolve against.
	WorkDir string
}

// Load loads the project context from the current working directory and
// returns a new context.Context with it stored inside.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg := config.Default()
	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if validateErr := cfg.Validate(); validateErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
		}
	}

	return context.WithValue(ctx, contextKey{}, &Context{Config: cfg, WorkDir: cwd}), nil
}

// LoadDocument parses the api document. A non-empty override takes
// precedence over the configured schema path.
func (c *Context) LoadDocument(override string) (*apischema.Document, error) {
	path := c.Config.Schema
	if override != "" {
		path = override
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.WorkDir, path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, path)
	}
	doc, err := apischema.LoadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return doc, nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sessionCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sessionCtx
	}
	return nil
}
