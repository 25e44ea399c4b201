// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/esgen/internal/random"
)

func TestMatchString(t *testing.T) {
	rnd := random.New(7)

	tests := []struct {
		field   string
		pattern string
	}{
		{"contact_email", `@`},
		{"uuid", `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`},
		{"licensePlate", `^[A-Z]{3}-[0-9]{4}$`},
		{"device_imei", `^[0-9]{15}$`},
		{"departure_airport", `^[A-Z]{3}$`},
		{"homepage_url", `^http`},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			v, ok := matchString(tt.field, rnd)
			require.True(t, ok)
			assert.Regexp(t, tt.pattern, v)
		})
	}

	t.Run("priority: first_name before bare name", func(t *testing.T) {
		v, ok := matchString("first_name", rnd)
		require.True(t, ok)
		assert.NotContains(t, v, " ")
	})

	t.Run("vessel_name uses the vessel list", func(t *testing.T) {
		v, ok := matchString("vessel_name", rnd)
		require.True(t, ok)
		assert.Contains(t, vesselNames, v)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := matchString("zzz_opaque", rnd)
		assert.False(t, ok)
	})
}

func TestMatchNumeric(t *testing.T) {
	rnd := random.New(7)

	tests := []struct {
		field    string
		min, max float64
	}{
		{"age", 1, 100},
		{"discount_percent", 0, 100},
		{"unit_price", 1, 10000},
		{"rating", 1, 5},
		{"birth_year", 1970, 2030},
		{"latitude", -90, 90},
		{"longitude", -180, 180},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				v, ok := matchNumeric(tt.field, rnd)
				require.True(t, ok)
				assert.GreaterOrEqual(t, v, tt.min)
				assert.LessOrEqual(t, v, tt.max)
			}
		})
	}

	_, ok := matchNumeric("coefficient", rnd)
	assert.False(t, ok)
}

func TestBoolProbability(t *testing.T) {
	assert.Equal(t, 0.8, boolProbability("is_active"))
	assert.Equal(t, 0.8, boolProbability("emailVerified"))
	assert.Equal(t, 0.2, boolProbability("deleted"))
	assert.Equal(t, 0.2, boolProbability("is_blocked"))
	assert.Equal(t, 0.5, boolProbability("flag"))

	// Negative words win when both appear.
	assert.Equal(t, 0.2, boolProbability("active_but_banned"))
}

func TestBoolBias(t *testing.T) {
	rnd := random.New(11)

	trues := 0
	for i := 0; i < 10000; i++ {
		if rnd.Bool(boolProbability("active")) {
			trues++
		}
	}
	assert.Greater(t, trues, 7500)
	assert.Less(t, trues, 8500)
}

func TestCityName(t *testing.T) {
	rnd := random.New(3)
	for i := 0; i < 50; i++ {
		name := cityName(rnd)
		require.NotEmpty(t, name)
		for _, word := range strings.Fields(name) {
			assert.Equal(t, strings.ToUpper(word[:1]), word[:1])
		}
	}
}
