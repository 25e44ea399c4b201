// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package random provides seedable sampling primitives for data generation.
package random

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	letters      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphanumeric = letters + "0123456789"
	digits       = "0123456789"
	hexDigits    = "0123456789abcdef"
)

// Source wraps a *rand.Rand so every generator draws from an explicit,
// seedable stream instead of the package-level global.
type Source struct {
	r *rand.Rand
}

// New creates a Source from a seed. A zero seed selects a time-based seed.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// IntN returns a uniform int in [0, n). n <= 0 returns 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

// IntBetween returns a uniform int in [min, max]. Inverted bounds are swapped.
func (s *Source) IntBetween(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + s.r.Intn(max-min+1)
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// FloatBetween returns a uniform float64 in [min, max). Inverted bounds are swapped.
func (s *Source) FloatBetween(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	return min + s.r.Float64()*(max-min)
}

// Uint64 returns a uniform 64-bit value.
func (s *Source) Uint64() uint64 {
	return s.r.Uint64()
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) bool {
	return s.r.Float64() < p
}

func (s *Source) stringFrom(alphabet string, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[s.r.Intn(len(alphabet))])
	}
	return b.String()
}

// Letters returns n random ASCII letters.
func (s *Source) Letters(n int) string {
	return s.stringFrom(letters, n)
}

// Alphanumeric returns n random ASCII letters and digits.
func (s *Source) Alphanumeric(n int) string {
	return s.stringFrom(alphanumeric, n)
}

// Digits returns n random decimal digits.
func (s *Source) Digits(n int) string {
	return s.stringFrom(digits, n)
}

// Hex returns n random lowercase hex digits.
func (s *Source) Hex(n int) string {
	return s.stringFrom(hexDigits, n)
}

// IPv4 returns a random dotted-quad address. Reserved ranges are not excluded.
func (s *Source) IPv4() string {
	return fmt.Sprintf("%d.%d.%d.%d", s.r.Intn(256), s.r.Intn(256), s.r.Intn(256), s.r.Intn(256))
}

// IPv6 returns eight random 16-bit hextets, colon-separated.
func (s *Source) IPv6() string {
	parts := make([]string, 8)
	for i := range parts {
		parts[i] = fmt.Sprintf("%x", s.r.Intn(0x10000))
	}
	return strings.Join(parts, ":")
}

// Pick returns a uniformly chosen element of items.
// The zero value is returned for an empty slice.
func Pick[T any](s *Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[s.IntN(len(items))]
}
