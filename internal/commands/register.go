// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/MinjaMiladinovic/playwright-java/internal/session"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "apigen",
		Short: "Generate Java API declarations from api.json",
	}

	registerGenerateCmd(rootCmd)
	registerInterfacesCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerGenerateCmd(parent *cobra.Command) {
	cmd := newGenerateCmd()
	cmd.PersistentPreRunE = session.PreRunLoad
	parent.AddCommand(cmd)
}

func registerInterfacesCmd(parent *cobra.Command) {
	cmd := newInterfacesCmd()
	cmd.PersistentPreRunE = session.PreRunLoad
	parent.AddCommand(cmd)
}

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(newVersionCmd())
}
