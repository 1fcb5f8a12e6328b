// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/MinjaMiladinovic/playwright-java/internal/commands"
)

// Run is the main application logic, extracted for testability.
func Run(ctx context.Context) error {
	rootCmd := commands.NewRootCmd()
	return rootCmd.ExecuteContext(ctx)
}
