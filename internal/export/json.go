// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package export

import (
	"bytes"
	"encoding/json"

	"github.com/dacolabs/esgen/internal/generate"
)

func init() {
	Register(JSON{})
	Register(NDJSON{})
}

// JSON exports documents as one indented JSON array.
type JSON struct{}

// Name returns the format's identifier.
func (JSON) Name() string { return "json" }

// FileExtension returns the file extension for JSON output.
func (JSON) FileExtension() string { return ".json" }

// Export serializes the batch as a JSON array.
func (JSON) Export(docs []generate.Document) ([]byte, error) {
	if docs == nil {
		docs = []generate.Document{}
	}
	return json.MarshalIndent(docs, "", "  ")
}

// NDJSON exports documents as newline-delimited JSON, one document per
// line, the shape bulk loaders consume.
type NDJSON struct{}

// Name returns the format's identifier.
func (NDJSON) Name() string { return "ndjson" }

// FileExtension returns the file extension for NDJSON output.
func (NDJSON) FileExtension() string { return ".ndjson" }

// Export serializes the batch line by line.
func (NDJSON) Export(docs []generate.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
