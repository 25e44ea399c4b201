// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/esgen/internal/config"
	"github.com/dacolabs/esgen/internal/mapping"
	"github.com/dacolabs/esgen/internal/rules"
)

var (
	// ErrNotInitialized indicates no esgen.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in an esgen project (esgen.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMappingNotFound indicates the mapping file referenced by config doesn't exist.
	ErrMappingNotFound = errors.New("mapping file not found")

	// ErrInvalidMapping indicates the mapping file exists but couldn't be parsed.
	ErrInvalidMapping = errors.New("invalid mapping")

	// ErrInvalidRules indicates the rules file exists but couldn't be parsed.
	ErrInvalidRules = errors.New("invalid rules")
)

// ConfigFileName is the name of the esgen configuration file.
const ConfigFileName = "esgen.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration, the normalized mapping,
// and the decoded rule set.
type Context struct {
	Config  *config.Config
	Mapping mapping.Mapping
	Rules   rules.Set
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the esgen Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	fsys := os.DirFS(cwd)

	if _, statErr := os.Stat(filepath.Join(cwd, cfg.Mapping)); os.IsNotExist(statErr) {
		return nil, fmt.Errorf("%w: %s", ErrMappingNotFound, cfg.Mapping)
	}
	m, err := mapping.NewLoader(fsys).LoadFile(cfg.Mapping)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMapping, err)
	}

	var set rules.Set
	if cfg.Rules != "" {
		set, err = rules.LoadFile(fsys, cfg.Rules)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
		}
	}

	esgenCtx := &Context{
		Config:  cfg,
		Mapping: m,
		Rules:   set,
	}

	return context.WithValue(ctx, contextKey{}, esgenCtx), nil
}

// From extracts the esgen Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if esgenCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return esgenCtx
	}
	return nil
}
