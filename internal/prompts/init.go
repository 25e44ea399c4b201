// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm prompts for the fields an esgen.yaml needs: the mapping file
// path, an optional rules file path, and output defaults.
func RunInitForm(mappingPath, rulesPath, format *string, formats []string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mapping file (JSON or YAML)").
				Validate(requiredValidator("mapping path")).
				Value(mappingPath),
			huh.NewInput().
				Title("Rules file (optional)").
				Value(rulesPath),
			FormatSelect(format, formats),
		),
	).WithTheme(Theme())

	return form.Run()
}
