// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package geo provides geohash encoding, great-circle movement simulation,
// and a small built-in city gazetteer.
package geo

// base32 is the geohash alphabet (a, i, l and o are excluded).
const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// DefaultPrecision is the geohash length used when a caller passes
// a non-positive precision.
const DefaultPrecision = 7

// Encode returns the geohash of (lat, lon) with the given number of
// characters. Bits are interleaved longitude-first, five per character.
func Encode(lat, lon float64, precision int) string {
	if precision < 1 {
		precision = DefaultPrecision
	}

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0

	out := make([]byte, 0, precision)
	idx := 0
	bit := 0
	evenBit := true

	for len(out) < precision {
		if evenBit {
			mid := (lonMin + lonMax) / 2
			if lon >= mid {
				idx = idx*2 + 1
				lonMin = mid
			} else {
				idx = idx * 2
				lonMax = mid
			}
		} else {
			mid := (latMin + latMax) / 2
			if lat >= mid {
				idx = idx*2 + 1
				latMin = mid
			} else {
				idx = idx * 2
				latMax = mid
			}
		}
		evenBit = !evenBit

		bit++
		if bit == 5 {
			out = append(out, base32[idx])
			bit = 0
			idx = 0
		}
	}

	return string(out)
}
