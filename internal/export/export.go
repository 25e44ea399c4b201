// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package export serializes generated documents for file output.
package export

import (
	"fmt"
	"sort"

	"github.com/dacolabs/esgen/internal/generate"
)

// Exporter defines the interface all output formats implement.
type Exporter interface {
	// Name returns the format's identifier (e.g., "json", "csv").
	Name() string

	// Export serializes a batch of documents.
	Export(docs []generate.Document) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".json").
	FileExtension() string
}

var exporters = make(map[string]Exporter)

// Register adds an exporter to the registry.
func Register(e Exporter) {
	exporters[e.Name()] = e
}

// Get retrieves an exporter by name.
func Get(name string) (Exporter, error) {
	e, ok := exporters[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	return e, nil
}

// Available returns all registered format names, sorted.
func Available() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
