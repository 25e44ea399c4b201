// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacolabs/esgen/internal/mapping"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "esgen",
		Short: "Generate synthetic documents from a cluster index mapping",
	}

	registerInitCmd(rootCmd)
	registerGenerateCmd(rootCmd)
	registerLiveCmd(rootCmd)
	registerDiffCmd(rootCmd)
	registerFlattenCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

// loadMappingFile loads a mapping document from an arbitrary path, relative
// or absolute.
func loadMappingFile(path string) (mapping.Mapping, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir, base := filepath.Split(abs)
	return mapping.NewLoader(os.DirFS(dir)).LoadFile(base)
}
