// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/esgen/internal/dates"
	"github.com/dacolabs/esgen/internal/random"
)

func TestSampleTimestamps_Uniform(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	r := dates.Range{Start: start, End: start.Add(6 * time.Hour)}

	out := SampleTimestamps(random.New(1), r, GranHour, 3, DistUniform)

	// Exactly rate events per step.
	require.Len(t, out, 6*3)
	for _, ts := range out {
		assert.False(t, ts.Before(r.Start))
		assert.False(t, ts.After(r.End))
	}
}

func TestSampleTimestamps_Poisson(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	r := dates.Range{Start: start, End: start.Add(time.Hour)}

	// 60 steps with mean 5: the total should land near 300.
	out := SampleTimestamps(random.New(2), r, GranMinute, 5, DistPoisson)

	assert.Greater(t, len(out), 200)
	assert.Less(t, len(out), 400)
	for _, ts := range out {
		assert.False(t, ts.Before(r.Start))
		assert.False(t, ts.After(r.End))
	}
}

func TestSampleTimestamps_PartialLastStep(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	// 90 minutes walked in hour steps: the second step is clamped.
	r := dates.Range{Start: start, End: start.Add(90 * time.Minute)}

	out := SampleTimestamps(random.New(3), r, GranHour, 2, DistUniform)
	require.Len(t, out, 4)
	for _, ts := range out {
		assert.False(t, ts.After(r.End))
	}
}

func TestSampleTimestamps_DegenerateRanges(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	// Zero-width range emits nothing.
	empty := dates.Range{Start: start, End: start}
	assert.Empty(t, SampleTimestamps(random.New(1), empty, GranHour, 5, DistUniform))

	// Inverted ranges are normalized, not empty.
	inverted := dates.Range{Start: start.Add(2 * time.Hour), End: start}
	out := SampleTimestamps(random.New(1), inverted, GranHour, 1, DistUniform)
	assert.Len(t, out, 2)
}

func TestSampleTimestamps_ZeroRate(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	r := dates.Range{Start: start, End: start.Add(3 * time.Hour)}

	assert.Empty(t, SampleTimestamps(random.New(1), r, GranHour, 0, DistUniform))
	assert.Empty(t, SampleTimestamps(random.New(1), r, GranHour, 0, DistPoisson))
}

func TestGranularity_Duration(t *testing.T) {
	assert.Equal(t, time.Hour, GranHour.Duration())
	assert.Equal(t, time.Minute, GranMinute.Duration())
	assert.Equal(t, time.Second, GranSecond.Duration())
	assert.Equal(t, time.Hour, Granularity("fortnight").Duration())
}

func TestPoisson(t *testing.T) {
	rnd := random.New(4)

	assert.Zero(t, poisson(rnd, 0))
	assert.Zero(t, poisson(rnd, -1))

	// Sample mean should approximate the requested mean.
	total := 0
	const n = 20000
	for i := 0; i < n; i++ {
		total += poisson(rnd, 4)
	}
	mean := float64(total) / n
	assert.InDelta(t, 4, mean, 0.1)
}
