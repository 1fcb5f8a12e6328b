// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package commands

import (
	"fmt"

	"github.com/MinjaMiladinovic/playwright-java/internal/session"
	"github.com/spf13/cobra"
)

func newInterfacesCmd() *cobra.Command {
	var schema string

	cmd := &cobra.Command{
		Use:   "interfaces",
		Short: "List the top-level interfaces in the api document",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			doc, err := ctx.LoadDocument(schema)
			if err != nil {
				return err
			}

			for _, desc := range doc.Interfaces {
				methods, events := 0, 0
				for _, m := range desc.Raw.Get("members").Members() {
					switch m.Value.Get("kind").Str() {
					case "method":
						methods++
					case "event":
						events++
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d methods\t%d events\n", desc.Name, methods, events)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&schema, "schema", "s", "", "Path to api.json (overrides config)")

	return cmd
}
