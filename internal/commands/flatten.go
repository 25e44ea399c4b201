// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/esgen/internal/mapping"
)

func registerFlattenCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "flatten <mapping>",
		Short:   "Print a mapping as dotted field paths with their types",
		Example: `  esgen flatten mappings/logs.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlatten(args[0])
		},
	}

	parent.AddCommand(cmd)
}

func runFlatten(path string) error {
	m, err := loadMappingFile(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	for _, f := range mapping.Flatten(m) {
		fmt.Printf("%s: %s\n", f.Path, f.Type)
	}
	return nil
}
