// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dacolabs/esgen/internal/mapping"
)

func registerDiffCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "diff <old-mapping> <new-mapping>",
		Short: "Compare two mapping files field by field",
		Long: `Compare the flattened field sets of two mapping files.

Fields present only in the new mapping are reported as added, fields
present only in the old as removed, and shared fields whose type or
declared date format differ as changed.`,
		Example: `  esgen diff mappings/v1.json mappings/v2.json`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1])
		},
	}

	parent.AddCommand(cmd)
}

func runDiff(oldPath, newPath string) error {
	before, err := loadMappingFile(oldPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", oldPath, err)
	}
	after, err := loadMappingFile(newPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", newPath, err)
	}

	d := mapping.Compare(before, after)
	if d.Empty() {
		fmt.Println("Mappings are identical.")
		return nil
	}

	added := lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	removed := lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
	changed := lipgloss.NewStyle().Foreground(lipgloss.Color("#f9ca24"))

	for _, p := range d.Added {
		fmt.Println(added.Render("+ " + p))
	}
	for _, p := range d.Removed {
		fmt.Println(removed.Render("- " + p))
	}
	for _, c := range d.Changed {
		fmt.Println(changed.Render(fmt.Sprintf("~ %s: %s -> %s", c.Path, c.Old, c.New)))
	}

	return nil
}
