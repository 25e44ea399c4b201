// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacolabs/esgen/internal/config"
	"github.com/dacolabs/esgen/internal/export"
	"github.com/dacolabs/esgen/internal/prompts"
)

type initOptions struct {
	mapping        string
	rules          string
	format         string
	nonInteractive bool
}

func registerInitCmd(parent *cobra.Command) {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new esgen project",
		Long: `Initialize a new esgen project with an esgen.yaml configuration file
pointing at a mapping file and, optionally, a rules file.`,
		Example: `  # Interactive mode
  esgen init

  # Non-interactive
  esgen init --mapping mapping.json --non-interactive
  esgen init --mapping mapping.json --rules rules.yaml --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mapping, "mapping", "m", "", "Path to the mapping file (JSON or YAML)")
	cmd.Flags().StringVarP(&opts.rules, "rules", "r", "", "Path to the rules file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.DefaultFormat, "Default output format")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --mapping)")

	parent.AddCommand(cmd)
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	cfgPath := filepath.Join(cwd, "esgen.yaml")
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("esgen.yaml already exists; project already initialized")
	}

	if opts.nonInteractive {
		if opts.mapping == "" {
			return errors.New("non-interactive mode requires --mapping")
		}
	} else {
		if err := prompts.RunInitForm(&opts.mapping, &opts.rules, &opts.format, export.Available()); err != nil {
			return err
		}
	}

	if _, err := loadMappingFile(filepath.Join(cwd, opts.mapping)); err != nil {
		return fmt.Errorf("mapping file unusable: %w", err)
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Mapping: opts.mapping,
		Rules:   opts.rules,
		Format:  opts.format,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	fields := []prompts.ResultField{
		{Label: "Mapping", Value: opts.mapping},
		{Label: "Format", Value: cfg.Format},
	}
	if opts.rules != "" {
		fields = append(fields, prompts.ResultField{Label: "Rules", Value: opts.rules})
	}
	prompts.PrintResult(fields, "Initialization completed")

	return nil
}
