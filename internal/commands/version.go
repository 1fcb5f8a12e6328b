// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package commands

import (
	"fmt"

	"github.com/MinjaMiladinovic/playwright-java/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return nil
		},
	}
}
