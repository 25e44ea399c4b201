// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package rules defines the per-field generation directives that override
// default type-based value generation.
package rules

import (
	"strings"
	"time"
)

// Rule is a closed union: one variant per kind tag. The dispatcher matches
// variants exhaustively, so adding a kind is a compile-checked extension.
type Rule interface {
	Kind() string
}

// Date overrides a date field's target format and, optionally, its range.
type Date struct {
	Format string
	Start  *time.Time
	End    *time.Time
}

// GeoPoint bounds a geo_point field to a lat/lon box.
type GeoPoint struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
}

// GeoNumber bounds a single numeric axis, e.g. a standalone latitude column.
type GeoNumber struct {
	Min, Max float64
}

// NumRange bounds a numeric field to [Min, Max].
type NumRange struct {
	Min, Max float64
}

// NumMax bounds a numeric field to [0, Max].
type NumMax struct {
	Max float64
}

// StringList restricts a string field to a closed set of literal choices.
type StringList struct {
	Values []string
}

// ImagePath produces image paths: a static path, one of a list, or a
// template where "{}" is replaced with a random number.
type ImagePath struct {
	Path     string
	Paths    []string
	Template string
}

// IP selects the address family; Version is "v4" or "v6".
type IP struct {
	Version string
}

// Prefix prepends a literal to a random alphanumeric suffix.
type Prefix struct {
	Prefix string
	Length int
}

// Phone selects a phone format template by country code.
type Phone struct {
	Country string
}

// Manual yields a literal value, bypassing all type logic.
type Manual struct {
	Value any
}

// Geohash encodes a random point as a geohash string of the given precision.
type Geohash struct {
	Precision int
}

// GeoCity places points at a named city from the built-in gazetteer.
type GeoCity struct {
	City string
}

// GeoPath is a source-to-destination route with a travel speed, used to
// simulate a moving entity.
type GeoPath struct {
	SrcLat, SrcLon float64
	DstLat, DstLon float64
	SpeedKmh       float64
}

// Kind tags, one per variant.
const (
	KindDate       = "date"
	KindGeoPoint   = "geo_point"
	KindGeoNumber  = "geo_number"
	KindNumRange   = "num_range"
	KindNumMax     = "num_max"
	KindStringList = "string_list"
	KindImagePath  = "image_path"
	KindIP         = "ip"
	KindPrefix     = "prefix"
	KindPhone      = "phone"
	KindManual     = "manual"
	KindGeohash    = "geohash"
	KindGeoCity    = "geo_city"
	KindGeoPath    = "geo_path"
)

func (Date) Kind() string       { return KindDate }
func (GeoPoint) Kind() string   { return KindGeoPoint }
func (GeoNumber) Kind() string  { return KindGeoNumber }
func (NumRange) Kind() string   { return KindNumRange }
func (NumMax) Kind() string     { return KindNumMax }
func (StringList) Kind() string { return KindStringList }
func (ImagePath) Kind() string  { return KindImagePath }
func (IP) Kind() string         { return KindIP }
func (Prefix) Kind() string     { return KindPrefix }
func (Phone) Kind() string      { return KindPhone }
func (Manual) Kind() string     { return KindManual }
func (Geohash) Kind() string    { return KindGeohash }
func (GeoCity) Kind() string    { return KindGeoCity }
func (GeoPath) Kind() string    { return KindGeoPath }

// Set holds at most one rule per field path.
type Set map[string]Rule

// Lookup resolves the rule for a field: the full dotted path is consulted
// first, then the bare leaf name.
func (s Set) Lookup(path string) Rule {
	if s == nil {
		return nil
	}
	if r, ok := s[path]; ok {
		return r
	}
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		if r, ok := s[path[i+1:]]; ok {
			return r
		}
	}
	return nil
}

// With returns a copy of the set with one rule added or replaced. The
// receiver is not modified.
func (s Set) With(path string, r Rule) Set {
	out := make(Set, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[path] = r
	return out
}
