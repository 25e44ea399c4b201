// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package mapping

// Change records a field whose type tag differs between two mappings,
// including a change of declared date format.
type Change struct {
	Path string
	Old  string
	New  string
}

// Diff is the structural difference between two mappings.
type Diff struct {
	Added   []string
	Removed []string
	Changed []Change
}

// Empty reports whether the two mappings were structurally identical.
func (d Diff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Compare diffs two mappings by their flattened field sets: paths only in
// the new mapping are added, paths only in the old are removed, and shared
// paths with differing type tags are changed. Output follows the flattened
// traversal order of the mapping each slice derives from.
func Compare(before, after Mapping) Diff {
	oldFlat := Flatten(before)
	newFlat := Flatten(after)

	oldTypes := make(map[string]string, len(oldFlat))
	for _, f := range oldFlat {
		oldTypes[f.Path] = f.Type
	}
	newTypes := make(map[string]string, len(newFlat))
	for _, f := range newFlat {
		newTypes[f.Path] = f.Type
	}

	var d Diff
	for _, f := range newFlat {
		oldType, ok := oldTypes[f.Path]
		if !ok {
			d.Added = append(d.Added, f.Path)
			continue
		}
		if oldType != f.Type {
			d.Changed = append(d.Changed, Change{Path: f.Path, Old: oldType, New: f.Type})
		}
	}
	for _, f := range oldFlat {
		if _, ok := newTypes[f.Path]; !ok {
			d.Removed = append(d.Removed, f.Path)
		}
	}
	return d
}
