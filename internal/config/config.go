// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles esgen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the esgen.yaml project configuration file.
type Config struct {
	Version int    `yaml:"version"`
	Mapping string `yaml:"mapping"`
	Rules   string `yaml:"rules,omitempty"`
	Count   int    `yaml:"count,omitempty"`
	Format  string `yaml:"format,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

// Defaults applied by Validate when fields are unset.
const (
	DefaultCount  = 100
	DefaultFormat = "ndjson"
	DefaultOutput = "out"
)

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the configuration and fills defaulted fields in place.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Mapping == "" {
		return errors.New("mapping path is required")
	}
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative: %d", c.Count)
	}
	if c.Count == 0 {
		c.Count = DefaultCount
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	return nil
}
