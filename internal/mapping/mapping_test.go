// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_EffectiveType(t *testing.T) {
	tests := []struct {
		name  string
		field *Field
		want  string
	}{
		{"explicit type", &Field{Type: TypeLong}, TypeLong},
		{"properties imply object", &Field{Properties: Mapping{"a": {Type: TypeText}}}, TypeObject},
		{"neither defaults to keyword", &Field{}, TypeKeyword},
		{"nil field", nil, TypeKeyword},
		{
			"explicit type wins over properties",
			&Field{Type: "nested", Properties: Mapping{"a": {}}},
			"nested",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.EffectiveType())
		})
	}
}

func TestIsNumeric(t *testing.T) {
	for _, typ := range []string{TypeFloat, TypeDouble, TypeInteger, TypeShort, TypeLong} {
		assert.True(t, IsNumeric(typ), typ)
	}
	assert.False(t, IsNumeric(TypeKeyword))
	assert.False(t, IsNumeric(TypeDate))

	assert.True(t, IsIntegerType(TypeShort))
	assert.False(t, IsIntegerType(TypeFloat))
}

func TestAt(t *testing.T) {
	m := Mapping{
		"id": {Type: TypeLong},
		"user": {Properties: Mapping{
			"address": {Properties: Mapping{
				"city": {Type: TypeKeyword},
			}},
		}},
	}

	assert.Equal(t, TypeLong, At(m, "id").EffectiveType())
	assert.Equal(t, TypeKeyword, At(m, "user.address.city").EffectiveType())
	assert.Equal(t, TypeObject, At(m, "user.address").EffectiveType())
	assert.Nil(t, At(m, "user.phone"))
	assert.Nil(t, At(m, "id.sub"))
	assert.Nil(t, At(m, "missing"))
}

func TestExtract(t *testing.T) {
	props := map[string]any{
		"name": map[string]any{"type": "text"},
		"ts":   map[string]any{"type": "date", "format": "epoch_millis"},
		"address": map[string]any{
			"properties": map[string]any{
				"city": map[string]any{"type": "keyword"},
			},
		},
	}

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"bare properties", map[string]any{"properties": props}},
		{"mappings wrapper", map[string]any{"mappings": map[string]any{"properties": props}}},
		{
			"index wrapper",
			map[string]any{"my-index": map[string]any{"mappings": map[string]any{"properties": props}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Extract(tt.raw)
			assert.Len(t, m, 3)
			assert.Equal(t, TypeText, m["name"].EffectiveType())
			assert.Equal(t, "epoch_millis", m["ts"].Format)
			assert.Equal(t, TypeObject, m["address"].EffectiveType())
			assert.Equal(t, TypeKeyword, m["address"].Properties["city"].EffectiveType())
		})
	}
}

func TestExtract_Malformed(t *testing.T) {
	assert.Nil(t, Extract(nil))
	assert.Nil(t, Extract(map[string]any{"unrelated": 42}))

	// Non-object field specs are skipped, not fatal.
	m := Extract(map[string]any{"properties": map[string]any{
		"good": map[string]any{"type": "long"},
		"bad":  "not a spec",
	}})
	assert.Len(t, m, 1)
	assert.Equal(t, TypeLong, m["good"].EffectiveType())
}

func TestMerge(t *testing.T) {
	a := Mapping{
		"id":   {Type: TypeLong},
		"name": {Type: TypeText},
		"address": {Properties: Mapping{
			"city": {Type: TypeKeyword},
		}},
	}
	b := Mapping{
		"name": {Type: TypeKeyword}, // later source wins
		"age":  {Type: TypeInteger},
		"address": {Properties: Mapping{
			"zip": {Type: TypeKeyword},
		}},
	}

	merged := Merge(a, b)
	assert.Len(t, merged, 4)
	assert.Equal(t, TypeKeyword, merged["name"].EffectiveType())
	assert.Equal(t, TypeLong, merged["id"].EffectiveType())

	// Nested objects merge recursively.
	assert.Len(t, merged["address"].Properties, 2)

	assert.Nil(t, Merge(nil, nil))
}

func TestFlatten(t *testing.T) {
	m := Mapping{
		"user": {Properties: Mapping{
			"name": {Type: TypeText},
			"address": {Properties: Mapping{
				"city": {Type: TypeKeyword},
			}},
		}},
		"created": {Type: TypeDate, Format: "epoch_second"},
		"active":  {Type: TypeBoolean},
	}

	flat := Flatten(m)
	assert.Equal(t, []FlatField{
		{Path: "active", Type: TypeBoolean},
		{Path: "created", Type: "date(epoch_second)"},
		{Path: "user.address.city", Type: TypeKeyword},
		{Path: "user.name", Type: TypeText},
	}, flat)
}

func TestFieldsOfType(t *testing.T) {
	m := Mapping{
		"ts":      {Type: TypeDate},
		"loc":     {Type: TypeGeoPoint},
		"nested":  {Properties: Mapping{"when": {Type: TypeDate}}},
		"comment": {Type: TypeText},
	}

	assert.Equal(t, []string{"nested.when", "ts"}, FieldsOfType(m, TypeDate))
	assert.Equal(t, []string{"loc"}, FieldsOfType(m, TypeGeoPoint))
	assert.Empty(t, FieldsOfType(m, TypeIP))
}
