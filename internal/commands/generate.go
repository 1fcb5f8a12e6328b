// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MinjaMiladinovic/playwright-java/internal/apischema"
	"github.com/MinjaMiladinovic/playwright-java/internal/gen"
	"github.com/MinjaMiladinovic/playwright-java/internal/gen/java"
	"github.com/MinjaMiladinovic/playwright-java/internal/prompts"
	"github.com/MinjaMiladinovic/playwright-java/internal/session"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	schema     string
	output     string
	pkg        string
	interfaces string
	selectMode bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Java source declarations from the api document",
		Example: `  # Generate all interfaces
  apigen generate --schema api.json --output src/main/java/com/microsoft/playwright

  # Generate selected interfaces
  apigen generate --interface Page,Browser

  # Pick interfaces interactively
  apigen generate --select`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Path to api.json (overrides config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Java package of generated files (overrides config)")
	cmd.Flags().StringVarP(&opts.interfaces, "interface", "i", "", "Interface name(s), comma-separated; default all")
	cmd.Flags().BoolVar(&opts.selectMode, "select", false, "Pick interfaces interactively")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	doc, err := ctx.LoadDocument(opts.schema)
	if err != nil {
		return err
	}

	selected, err := selectInterfaces(doc, opts)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return fmt.Errorf("no interfaces selected")
	}

	output := ctx.Config.Output
	if opts.output != "" {
		output = opts.output
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(ctx.WorkDir, output)
	}
	pkg := ctx.Config.JavaPackage
	if opts.pkg != "" {
		pkg = opts.pkg
	}

	genOpts := java.DefaultOptions()
	for _, m := range ctx.Config.Mappings {
		genOpts.Mappings[m.Path] = gen.Mapping{From: m.From, To: m.To}
	}

	if err := os.MkdirAll(output, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	emitter := java.NewEmitter(pkg, genOpts)
	for _, desc := range selected {
		iface, err := gen.Build(desc, genOpts, java.Mapper{})
		if err != nil {
			return fmt.Errorf("interface %s: %w", desc.Name, err)
		}
		out, err := emitter.Emit(iface)
		if err != nil {
			return fmt.Errorf("interface %s: %w", desc.Name, err)
		}
		path := filepath.Join(output, desc.Name+".java")
		if err := os.WriteFile(path, out, 0o644); err != nil { //nolint:gosec
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Interfaces", Value: fmt.Sprintf("%d", len(selected))},
		{Label: "Package", Value: pkg},
		{Label: "Output", Value: output},
	}, "Java declarations generated")

	return nil
}

// selectInterfaces resolves the set of interfaces to generate from flags,
// defaulting to the whole document.
func selectInterfaces(doc *apischema.Document, opts *generateOptions) ([]apischema.InterfaceDesc, error) {
	var names []string
	switch {
	case opts.interfaces != "":
		for _, n := range strings.Split(opts.interfaces, ",") {
			names = append(names, strings.TrimSpace(n))
		}
	case opts.selectMode:
		if err := prompts.RunInterfaceSelect(&names, doc.Names()); err != nil {
			return nil, err
		}
	default:
		names = doc.Names()
	}

	var selected []apischema.InterfaceDesc
	for _, name := range names {
		desc := doc.Lookup(name)
		if desc == nil {
			return nil, fmt.Errorf("unknown interface: %s", name)
		}
		selected = append(selected, *desc)
	}
	return selected, nil
}
