// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"strconv"

	"github.com/charmbracelet/huh"
)

// FormatSelect returns a select field for choosing the output format.
func FormatSelect(value *string, formats []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return huh.NewSelect[string]().
		Title("Output format").
		Options(options...).
		Value(value)
}

// RunGenerateForm prompts for any generation parameter still unset:
// document count, output format, and output directory.
func RunGenerateForm(count *int, format, output *string, formats []string) error {
	var fields []huh.Field

	countStr := ""
	if *count > 0 {
		countStr = strconv.Itoa(*count)
	}
	needCount := *count <= 0
	if needCount {
		fields = append(fields, huh.NewInput().
			Title("Number of documents").
			Validate(positiveIntValidator("count")).
			Value(&countStr))
	}
	if *format == "" {
		fields = append(fields, FormatSelect(format, formats))
	}
	if *output == "" {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Validate(requiredValidator("output")).
			Value(output))
	}

	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme())
	if err := form.Run(); err != nil {
		return err
	}

	if needCount {
		n, err := strconv.Atoi(countStr)
		if err != nil {
			return err
		}
		*count = n
	}
	return nil
}
