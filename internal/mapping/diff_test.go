// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	before := Mapping{
		"id":      {Type: TypeLong},
		"name":    {Type: TypeText},
		"created": {Type: TypeDate, Format: "epoch_millis"},
		"user": {Properties: Mapping{
			"email": {Type: TypeKeyword},
		}},
	}
	after := Mapping{
		// id changes type, created changes declared format, name is gone.
		"id":      {Type: TypeKeyword},
		"created": {Type: TypeDate, Format: "epoch_second"},
		"user": {Properties: Mapping{
			"email": {Type: TypeKeyword},
			// phone is new
			"phone": {Type: TypeKeyword},
		}},
	}

	d := Compare(before, after)
	assert.Equal(t, []string{"user.phone"}, d.Added)
	assert.Equal(t, []string{"name"}, d.Removed)
	assert.Equal(t, []Change{
		{Path: "created", Old: "date(epoch_millis)", New: "date(epoch_second)"},
		{Path: "id", Old: TypeLong, New: TypeKeyword},
	}, d.Changed)
	assert.False(t, d.Empty())
}

func TestCompare_Symmetry(t *testing.T) {
	a := Mapping{
		"x": {Type: TypeLong},
		"y": {Type: TypeText},
		"n": {Properties: Mapping{"deep": {Type: TypeIP}}},
	}
	b := Mapping{
		"y": {Type: TypeText},
		"z": {Type: TypeBoolean},
	}

	ab := Compare(a, b)
	ba := Compare(b, a)

	assert.ElementsMatch(t, ab.Added, ba.Removed)
	assert.ElementsMatch(t, ab.Removed, ba.Added)
}

func TestCompare_Identical(t *testing.T) {
	m := Mapping{
		"id": {Type: TypeLong},
		"o":  {Properties: Mapping{"v": {Type: TypeText}}},
	}
	assert.True(t, Compare(m, m).Empty())
}
