// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rules

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Lookup(t *testing.T) {
	s := Set{
		"user.email": Prefix{Prefix: "mail-"},
		"city":       GeoCity{City: "london"},
	}

	// Full path wins.
	r := s.Lookup("user.email")
	assert.Equal(t, KindPrefix, r.Kind())

	// Falls back to the bare leaf name.
	r = s.Lookup("venue.city")
	assert.Equal(t, KindGeoCity, r.Kind())

	// Leaf fallback only uses the last segment.
	assert.Nil(t, s.Lookup("user.name"))
	assert.Nil(t, Set(nil).Lookup("anything"))
}

func TestSet_With(t *testing.T) {
	base := Set{"a": NumMax{Max: 5}}
	extended := base.With("b", Manual{Value: "x"})

	assert.Len(t, extended, 2)
	assert.Len(t, base, 1, "receiver must not be modified")

	replaced := base.With("a", Manual{Value: 1})
	assert.Equal(t, KindManual, replaced["a"].Kind())
	assert.Equal(t, KindNumMax, base["a"].Kind())
}

func TestDecodeJSON(t *testing.T) {
	data := []byte(`{
		"loc":        {"kind": "geo_point", "latMin": 10, "latMax": 20, "lonMin": -5, "lonMax": 5},
		"age":        {"kind": "num_range", "min": 18, "max": 65},
		"score":      {"kind": "num_max", "max": 100},
		"status":     {"kind": "string_list", "values": ["new", "open", "closed"]},
		"user.name":  {"kind": "manual", "value": "fixed"},
		"device.ip":  {"kind": "ip", "version": "v6"},
		"cell":       {"kind": "geohash", "precision": 9},
		"home":       {"kind": "geo_city", "city": "Paris"},
		"route":      {"kind": "geo_path", "srcLat": 1, "srcLon": 2, "dstLat": 3, "dstLon": 4, "speedKmh": 50},
		"sku":        {"kind": "prefix", "prefix": "SKU-", "length": 8},
		"contact":    {"kind": "phone", "country": "uk"},
		"avatar":     {"kind": "image_path", "template": "/img/{}.png"},
		"created_at": {"kind": "date", "format": "epoch_millis"}
	}`)

	set, err := DecodeJSON(data)
	require.NoError(t, err)
	require.Len(t, set, 13)

	gp, ok := set["loc"].(GeoPoint)
	require.True(t, ok)
	assert.Equal(t, GeoPoint{LatMin: 10, LatMax: 20, LonMin: -5, LonMax: 5}, gp)

	assert.Equal(t, NumRange{Min: 18, Max: 65}, set["age"])
	assert.Equal(t, Manual{Value: "fixed"}, set["user.name"])
	assert.Equal(t, Geohash{Precision: 9}, set["cell"])
	assert.Equal(t, GeoPath{SrcLat: 1, SrcLon: 2, DstLat: 3, DstLon: 4, SpeedKmh: 50}, set["route"])
	assert.Equal(t, Date{Format: "epoch_millis"}, set["created_at"])
}

func TestDecodeJSON_UnknownKind(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"f": {"kind": "sparkle"}}`))
	assert.ErrorContains(t, err, "unknown rule kind")
	assert.ErrorContains(t, err, `"f"`)
}

func TestDecodeYAML(t *testing.T) {
	data := []byte(`
loc:
  kind: geo_point
  latMin: 1
  latMax: 2
  lonMin: 3
  lonMax: 4
note:
  kind: manual
  value: 42
`)

	set, err := DecodeYAML(data)
	require.NoError(t, err)
	assert.Equal(t, GeoPoint{LatMin: 1, LatMax: 2, LonMin: 3, LonMax: 4}, set["loc"])
	assert.Equal(t, Manual{Value: 42}, set["note"])
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"rules.json": &fstest.MapFile{Data: []byte(`{"n": {"kind": "num_max", "max": 7}}`)},
		"rules.yml":  &fstest.MapFile{Data: []byte("n:\n  kind: num_max\n  max: 7\n")},
		"rules.txt":  &fstest.MapFile{Data: []byte("n")},
	}

	for _, name := range []string{"rules.json", "rules.yml"} {
		set, err := LoadFile(fsys, name)
		require.NoError(t, err, name)
		assert.Equal(t, NumMax{Max: 7}, set["n"])
	}

	_, err := LoadFile(fsys, "rules.txt")
	assert.ErrorContains(t, err, "format not supported")
}
