// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by all great-circle math.
const EarthRadiusKm = 6371.0

// Point is a WGS 84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// StepResult is one tick of movement along a path. Arrived is true when the
// tick reached (and snapped to) the destination.
type StepResult struct {
	Position Point
	Arrived  bool
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }
func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

// Distance returns the haversine great-circle distance in kilometers.
func Distance(from, to Point) float64 {
	dLat := toRad(to.Lat - from.Lat)
	dLon := toRad(to.Lon - from.Lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(from.Lat))*math.Cos(toRad(to.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Bearing returns the initial true bearing from one point to another,
// in degrees in [0, 360).
func Bearing(from, to Point) float64 {
	lat1 := toRad(from.Lat)
	lat2 := toRad(to.Lat)
	dLon := toRad(to.Lon - from.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Mod(toDeg(math.Atan2(y, x))+360, 360)
}

// destination projects a point along a bearing by distKm using the
// spherical direct-geodesic formula.
func destination(from Point, bearingDeg, distKm float64) Point {
	lat1 := toRad(from.Lat)
	lon1 := toRad(from.Lon)
	brng := toRad(bearingDeg)
	d := distKm / EarthRadiusKm

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) +
		math.Cos(lat1)*math.Sin(d)*math.Cos(brng))
	lon2 := lon1 + math.Atan2(
		math.Sin(brng)*math.Sin(d)*math.Cos(lat1),
		math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))

	return Point{Lat: toDeg(lat2), Lon: toDeg(lon2)}
}

// Step advances a moving entity one simulation tick toward dest.
// speedKmh is in km/h and intervalSec is the tick length in seconds, so the
// distance covered this tick is speedKmh*intervalSec/3600. When that covers
// the remaining distance the result snaps to dest exactly rather than
// overshooting. Step is stateless; the caller loops it and resets the
// position to the path source on arrival to repeat the route.
func Step(current, dest Point, speedKmh, intervalSec float64) StepResult {
	remaining := Distance(current, dest)
	covered := speedKmh * intervalSec / 3600

	if covered >= remaining {
		return StepResult{Position: dest, Arrived: true}
	}

	next := destination(current, Bearing(current, dest), covered)
	return StepResult{Position: next}
}

// Intermediate returns the point a fraction f of the way from one point to
// another along the great circle. f is clamped to [0, 1].
func Intermediate(from, to Point, f float64) Point {
	if f <= 0 {
		return from
	}
	if f >= 1 {
		return to
	}
	return destination(from, Bearing(from, to), Distance(from, to)*f)
}
