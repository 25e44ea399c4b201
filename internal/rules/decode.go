// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rules

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ruleSpec is the wire form of one rule: a kind discriminator plus the
// union of all variant fields.
type ruleSpec struct {
	Kind string `json:"kind" yaml:"kind"`

	Format string     `json:"format,omitempty" yaml:"format,omitempty"`
	Start  *time.Time `json:"start,omitempty" yaml:"start,omitempty"`
	End    *time.Time `json:"end,omitempty" yaml:"end,omitempty"`

	LatMin float64 `json:"latMin,omitempty" yaml:"latMin,omitempty"`
	LatMax float64 `json:"latMax,omitempty" yaml:"latMax,omitempty"`
	LonMin float64 `json:"lonMin,omitempty" yaml:"lonMin,omitempty"`
	LonMax float64 `json:"lonMax,omitempty" yaml:"lonMax,omitempty"`

	Min float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max float64 `json:"max,omitempty" yaml:"max,omitempty"`

	Values []string `json:"values,omitempty" yaml:"values,omitempty"`

	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	Paths    []string `json:"paths,omitempty" yaml:"paths,omitempty"`
	Template string   `json:"template,omitempty" yaml:"template,omitempty"`

	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Length int    `json:"length,omitempty" yaml:"length,omitempty"`

	Country string `json:"country,omitempty" yaml:"country,omitempty"`

	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	City string `json:"city,omitempty" yaml:"city,omitempty"`

	SrcLat   float64 `json:"srcLat,omitempty" yaml:"srcLat,omitempty"`
	SrcLon   float64 `json:"srcLon,omitempty" yaml:"srcLon,omitempty"`
	DstLat   float64 `json:"dstLat,omitempty" yaml:"dstLat,omitempty"`
	DstLon   float64 `json:"dstLon,omitempty" yaml:"dstLon,omitempty"`
	SpeedKmh float64 `json:"speedKmh,omitempty" yaml:"speedKmh,omitempty"`
}

func (s *ruleSpec) rule() (Rule, error) {
	switch s.Kind {
	case KindDate:
		return Date{Format: s.Format, Start: s.Start, End: s.End}, nil
	case KindGeoPoint:
		return GeoPoint{LatMin: s.LatMin, LatMax: s.LatMax, LonMin: s.LonMin, LonMax: s.LonMax}, nil
	case KindGeoNumber:
		return GeoNumber{Min: s.Min, Max: s.Max}, nil
	case KindNumRange:
		return NumRange{Min: s.Min, Max: s.Max}, nil
	case KindNumMax:
		return NumMax{Max: s.Max}, nil
	case KindStringList:
		return StringList{Values: s.Values}, nil
	case KindImagePath:
		return ImagePath{Path: s.Path, Paths: s.Paths, Template: s.Template}, nil
	case KindIP:
		return IP{Version: s.Version}, nil
	case KindPrefix:
		return Prefix{Prefix: s.Prefix, Length: s.Length}, nil
	case KindPhone:
		return Phone{Country: s.Country}, nil
	case KindManual:
		return Manual{Value: s.Value}, nil
	case KindGeohash:
		return Geohash{Precision: s.Precision}, nil
	case KindGeoCity:
		return GeoCity{City: s.City}, nil
	case KindGeoPath:
		return GeoPath{
			SrcLat: s.SrcLat, SrcLon: s.SrcLon,
			DstLat: s.DstLat, DstLon: s.DstLon,
			SpeedKmh: s.SpeedKmh,
		}, nil
	default:
		return nil, fmt.Errorf("unknown rule kind: %q", s.Kind)
	}
}

// DecodeJSON parses a rule set from a JSON object keyed by dotted field path.
func DecodeJSON(data []byte) (Set, error) {
	var specs map[string]*ruleSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, err
	}
	return fromSpecs(specs)
}

// DecodeYAML parses a rule set from a YAML mapping keyed by dotted field path.
func DecodeYAML(data []byte) (Set, error) {
	var specs map[string]*ruleSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, err
	}
	return fromSpecs(specs)
}

func fromSpecs(specs map[string]*ruleSpec) (Set, error) {
	set := make(Set, len(specs))
	for path, spec := range specs {
		if spec == nil {
			continue
		}
		r, err := spec.rule()
		if err != nil {
			return nil, fmt.Errorf("rule for %q: %w", path, err)
		}
		set[path] = r
	}
	return set, nil
}

// LoadFile loads a rule set from a JSON or YAML file, keyed by extension.
func LoadFile(fsys fs.FS, filePath string) (Set, error) {
	f, err := fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		return DecodeYAML(data)
	case strings.HasSuffix(filePath, ".json"):
		return DecodeJSON(data)
	default:
		return nil, fmt.Errorf("format not supported")
	}
}
