// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"math"
	"time"

	"github.com/dacolabs/esgen/internal/dates"
	"github.com/dacolabs/esgen/internal/random"
)

// Granularity is the timestamp sampler's step size.
type Granularity string

// Supported granularities.
const (
	GranHour   Granularity = "hour"
	GranMinute Granularity = "minute"
	GranSecond Granularity = "second"
)

// Duration returns the step length; unrecognized granularities fall back to
// an hour.
func (g Granularity) Duration() time.Duration {
	switch g {
	case GranMinute:
		return time.Minute
	case GranSecond:
		return time.Second
	default:
		return time.Hour
	}
}

// Distribution is the per-step event count model.
type Distribution string

// Supported distributions.
const (
	DistUniform Distribution = "uniform"
	DistPoisson Distribution = "poisson"
)

// SampleTimestamps walks the range in fixed steps and emits a batch of
// event timestamps: per step, either exactly rate events (uniform) or a
// Poisson-sampled count with mean rate, each jittered within the step and
// clamped to the range end. The result is clustered and bursty rather than
// evenly spaced. An empty (or inverted, after normalization zero-width)
// range yields no timestamps.
func SampleTimestamps(rnd *random.Source, r dates.Range, gran Granularity, rate float64, dist Distribution) []time.Time {
	n := r.Normalize()
	step := gran.Duration()

	var out []time.Time
	for t := n.Start; t.Before(n.End); t = t.Add(step) {
		count := int(rate)
		if dist == DistPoisson {
			count = poisson(rnd, rate)
		}

		stepEnd := t.Add(step)
		if stepEnd.After(n.End) {
			stepEnd = n.End
		}
		span := stepEnd.Sub(t)

		for i := 0; i < count; i++ {
			ts := t.Add(time.Duration(rnd.Float64() * float64(span)))
			if ts.After(n.End) {
				ts = n.End
			}
			out = append(out, ts)
		}
	}
	return out
}

// poisson draws a Poisson-distributed count by inverse-transform sampling:
// multiply uniform draws until the product drops below e^-mean.
func poisson(rnd *random.Source, mean float64) int {
	if mean <= 0 {
		return 0
	}
	limit := math.Exp(-mean)
	k := 0
	p := 1.0
	for {
		p *= rnd.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}
