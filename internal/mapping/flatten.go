// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package mapping

// FlatField is one leaf of a flattened mapping: a dotted path and its type
// tag. Date fields carry their declared format in the tag for visibility,
// e.g. "date(epoch_millis)".
type FlatField struct {
	Path string
	Type string
}

// Flatten walks the mapping depth-first and returns every field as a dotted
// path with its type tag. Object fields contribute their leaves, not
// themselves. Order is deterministic: names sorted at each nesting level.
func Flatten(m Mapping) []FlatField {
	var out []FlatField
	flattenInto(m, "", &out)
	return out
}

func flattenInto(m Mapping, prefix string, out *[]FlatField) {
	for _, name := range m.sortedNames() {
		f := m[name]
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		t := f.EffectiveType()
		if t == TypeObject {
			flattenInto(f.Properties, path, out)
			continue
		}
		if t == TypeDate && f.Format != "" {
			t = TypeDate + "(" + f.Format + ")"
		}
		*out = append(*out, FlatField{Path: path, Type: t})
	}
}

// FieldsOfType returns the dotted paths of every leaf with the given
// effective type, in flattened order. Date format annotations are ignored
// for matching.
func FieldsOfType(m Mapping, typeTag string) []string {
	var paths []string
	var walk func(m Mapping, prefix string)
	walk = func(m Mapping, prefix string) {
		for _, name := range m.sortedNames() {
			f := m[name]
			path := name
			if prefix != "" {
				path = prefix + "." + name
			}
			t := f.EffectiveType()
			if t == TypeObject {
				walk(f.Properties, path)
				continue
			}
			if t == typeTag {
				paths = append(paths, path)
			}
		}
	}
	walk(m, "")
	return paths
}
