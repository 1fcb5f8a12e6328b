// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

package prompts

import "github.com/charmbracelet/huh"

// RunInterfaceSelect asks which top-level interfaces to generate.
func RunInterfaceSelect(values *[]string, names []string) error {
	options := make([]huh.Option[string], len(names))
	for i, n := range names {
		options[i] = huh.NewOption(n, n).Selected(true)
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Interfaces to generate").
				Options(options...).
				Value(values),
		),
	).WithTheme(Theme())
	return form.Run()
}
