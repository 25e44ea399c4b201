// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dacolabs/esgen/internal/generate"
)

func init() {
	Register(CSV{})
}

// CSV exports documents as a flat table. The header is the sorted union of
// top-level keys across the batch; nested objects and other composite
// values are JSON-stringified into a single cell.
type CSV struct{}

// Name returns the format's identifier.
func (CSV) Name() string { return "csv" }

// FileExtension returns the file extension for CSV output.
func (CSV) FileExtension() string { return ".csv" }

// Export serializes the batch with a header row.
func (CSV) Export(docs []generate.Document) ([]byte, error) {
	columns := columnUnion(docs)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		row := make([]string, len(columns))
		for i, col := range columns {
			cell, err := renderCell(doc[col])
			if err != nil {
				return nil, err
			}
			row[i] = cell
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func columnUnion(docs []generate.Document) []string {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for key := range doc {
			seen[key] = struct{}{}
		}
	}
	columns := make([]string, 0, len(seen))
	for key := range seen {
		columns = append(columns, key)
	}
	sort.Strings(columns)
	return columns
}

func renderCell(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		return fmt.Sprintf("%t", val), nil
	case int:
		return fmt.Sprintf("%d", val), nil
	case int64:
		return fmt.Sprintf("%d", val), nil
	case float64:
		return fmt.Sprintf("%g", val), nil
	default:
		// Nested objects, geo points, slices.
		data, err := json.Marshal(val)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
