// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package mapping

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads mapping documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads a mapping document and normalizes it with Extract.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (Mapping, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filePath, err)
		}
	case strings.HasSuffix(filePath, ".json"):
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filePath, err)
		}
	default:
		return nil, fmt.Errorf("format not supported")
	}

	m := Extract(raw)
	if m == nil {
		return nil, fmt.Errorf("no properties found in %s", filePath)
	}
	return m, nil
}
