// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package mapping models the subset of a cluster index mapping the generator
// targets, and provides flattening, merging, and structural diffing.
package mapping

import (
	"sort"
	"strings"
)

// Field type tags recognized by the generator.
const (
	TypeKeyword  = "keyword"
	TypeText     = "text"
	TypeDate     = "date"
	TypeFloat    = "float"
	TypeDouble   = "double"
	TypeInteger  = "integer"
	TypeShort    = "short"
	TypeLong     = "long"
	TypeBoolean  = "boolean"
	TypeGeoPoint = "geo_point"
	TypeIP       = "ip"
	TypeObject   = "object"
)

// Field is one field spec: a type, an optional date format, and nested
// properties when the field is an object.
type Field struct {
	Type       string  `json:"type,omitempty" yaml:"type,omitempty"`
	Format     string  `json:"format,omitempty" yaml:"format,omitempty"`
	Properties Mapping `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Mapping maps field names to their specs.
type Mapping map[string]*Field

// EffectiveType resolves a field's type: explicit type wins, properties
// without a type imply object, and neither defaults to keyword.
func (f *Field) EffectiveType() string {
	if f == nil {
		return TypeKeyword
	}
	if f.Type != "" {
		return f.Type
	}
	if len(f.Properties) > 0 {
		return TypeObject
	}
	return TypeKeyword
}

// IsNumeric reports whether a type tag is one of the numeric families.
func IsNumeric(typeTag string) bool {
	switch typeTag {
	case TypeFloat, TypeDouble, TypeInteger, TypeShort, TypeLong:
		return true
	}
	return false
}

// IsIntegerType reports whether a type tag is an integer family member.
func IsIntegerType(typeTag string) bool {
	switch typeTag {
	case TypeInteger, TypeShort, TypeLong:
		return true
	}
	return false
}

// At returns the field spec at a dotted path, descending through object
// properties, or nil when the path does not resolve.
func At(m Mapping, path string) *Field {
	for {
		name, rest, nested := strings.Cut(path, ".")
		f := m[name]
		if f == nil || !nested {
			return f
		}
		m = f.Properties
		path = rest
	}
}

// sortedNames returns the mapping's field names in sorted order, giving
// every traversal a deterministic per-level order.
func (m Mapping) sortedNames() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
