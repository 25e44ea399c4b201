// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package mapping

// Extract normalizes a raw cluster mapping response into a Mapping. It
// accepts the properties subtree directly, a {mappings: {properties: ...}}
// document, or a response keyed by index name wrapping either shape, and
// returns nil when no properties can be found. Malformed entries are
// skipped rather than reported, matching the generator's degradation policy.
func Extract(raw map[string]any) Mapping {
	if raw == nil {
		return nil
	}

	if props, ok := raw["properties"].(map[string]any); ok {
		return fromProperties(props)
	}
	if mappings, ok := raw["mappings"].(map[string]any); ok {
		if props, ok := mappings["properties"].(map[string]any); ok {
			return fromProperties(props)
		}
	}

	// Index-name wrapper: recurse into each value until one yields fields.
	for _, v := range raw {
		if inner, ok := v.(map[string]any); ok {
			if m := Extract(inner); len(m) > 0 {
				return m
			}
		}
	}

	return nil
}

func fromProperties(props map[string]any) Mapping {
	m := make(Mapping, len(props))
	for name, v := range props {
		spec, ok := v.(map[string]any)
		if !ok {
			continue
		}
		m[name] = fieldFromSpec(spec)
	}
	return m
}

func fieldFromSpec(spec map[string]any) *Field {
	f := &Field{}
	if t, ok := spec["type"].(string); ok {
		f.Type = t
	}
	if fm, ok := spec["format"].(string); ok {
		f.Format = fm
	}
	if props, ok := spec["properties"].(map[string]any); ok {
		f.Properties = fromProperties(props)
	}
	return f
}

// Merge unions two mappings recursively: object fields merge their nested
// properties, and on any other conflict the second mapping's field wins.
// Used when multiple schema documents must be combined best-effort.
func Merge(a, b Mapping) Mapping {
	if a == nil && b == nil {
		return nil
	}

	out := make(Mapping, len(a)+len(b))
	for name, f := range a {
		out[name] = f
	}
	for name, f := range b {
		existing, ok := out[name]
		if ok && existing.EffectiveType() == TypeObject && f.EffectiveType() == TypeObject {
			out[name] = &Field{
				Type:       existing.Type,
				Properties: Merge(existing.Properties, f.Properties),
			}
			continue
		}
		out[name] = f
	}
	return out
}
