// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package dates maps cluster date-format strings to canonical tags and
// renders instants in any supported representation.
package dates

import (
	"strings"
	"time"
)

// Tag identifies a canonical date serialization. The value of each tag is
// the canonical cluster format token, so Detect(string(tag)) == tag.
type Tag string

const (
	// TagEpochMillis renders as numeric milliseconds since the Unix epoch.
	TagEpochMillis Tag = "epoch_millis"
	// TagEpochSecond renders as numeric seconds since the Unix epoch.
	TagEpochSecond Tag = "epoch_second"
	// TagISO8601 renders as strict_date_optional_time (ISO-8601 with millis).
	TagISO8601 Tag = "strict_date_optional_time"
	// TagDate renders as yyyy-MM-dd.
	TagDate Tag = "yyyy-MM-dd"
	// TagDateSlash renders as yyyy/MM/dd.
	TagDateSlash Tag = "yyyy/MM/dd"
	// TagDayFirst renders as dd-MM-yyyy.
	TagDayFirst Tag = "dd-MM-yyyy"
	// TagDayFirstSlash renders as dd/MM/yyyy.
	TagDayFirstSlash Tag = "dd/MM/yyyy"
	// TagDateTime renders as yyyy-MM-dd HH:mm:ss.
	TagDateTime Tag = "yyyy-MM-dd HH:mm:ss"
)

// Tags lists every supported tag.
var Tags = []Tag{
	TagEpochMillis, TagEpochSecond, TagISO8601,
	TagDate, TagDateSlash, TagDayFirst, TagDayFirstSlash, TagDateTime,
}

// Detect maps a schema-declared date format string to a canonical Tag.
// Only the first ||-delimited alternative is consulted; matching is
// case-insensitive. Unrecognized formats default to TagISO8601, never error.
func Detect(format string) Tag {
	first, _, _ := strings.Cut(format, "||")

	switch strings.ToLower(strings.TrimSpace(first)) {
	case "epoch_millis":
		return TagEpochMillis
	case "epoch_second", "epoch_seconds":
		return TagEpochSecond
	case "strict_date_optional_time", "date_optional_time",
		"strict_date_time", "date_time":
		return TagISO8601
	case "yyyy-mm-dd", "strict_date", "date", "basic_date":
		return TagDate
	case "yyyy/mm/dd":
		return TagDateSlash
	case "dd-mm-yyyy":
		return TagDayFirst
	case "dd/mm/yyyy":
		return TagDayFirstSlash
	case "yyyy-mm-dd hh:mm:ss":
		return TagDateTime
	default:
		return TagISO8601
	}
}

// Render serializes an instant in the representation named by tag: an int64
// for the epoch tags, a zero-padded string layout otherwise.
func Render(t time.Time, tag Tag) any {
	switch tag {
	case TagEpochMillis:
		return t.UnixMilli()
	case TagEpochSecond:
		return t.Unix()
	case TagDate:
		return t.Format("2006-01-02")
	case TagDateSlash:
		return t.Format("2006/01/02")
	case TagDayFirst:
		return t.Format("02-01-2006")
	case TagDayFirstSlash:
		return t.Format("02/01/2006")
	case TagDateTime:
		return t.Format("2006-01-02 15:04:05")
	default:
		return t.Format("2006-01-02T15:04:05.000Z07:00")
	}
}

// Range is a closed sampling interval of instants.
type Range struct {
	Start time.Time
	End   time.Time
}

// Normalize returns the range with Start and End swapped if inverted.
// Sampling over an inverted range is defined as sampling over the
// equivalent forward range.
func (r Range) Normalize() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// LastDay returns the default generation range, the 24 hours up to now.
func LastDay() Range {
	now := time.Now()
	return Range{Start: now.Add(-24 * time.Hour), End: now}
}

// Random draws one instant uniformly within the range, at millisecond
// resolution. A zero-width range always returns Start.
func (r Range) Random(u float64) time.Time {
	n := r.Normalize()
	span := n.End.UnixMilli() - n.Start.UnixMilli()
	if span <= 0 {
		return n.Start
	}
	return time.UnixMilli(n.Start.UnixMilli() + int64(u*float64(span))).In(n.Start.Location())
}
