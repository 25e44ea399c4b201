// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package generate produces synthetic documents from a mapping, a rule set,
// and a time range. Generation never fails a batch: malformed field specs
// and unknown types degrade to generic values.
package generate

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/dacolabs/esgen/internal/dates"
	"github.com/dacolabs/esgen/internal/geo"
	"github.com/dacolabs/esgen/internal/mapping"
	"github.com/dacolabs/esgen/internal/random"
	"github.com/dacolabs/esgen/internal/rules"
)

// cityNamesSorted keeps gazetteer-backed heuristics deterministic per seed.
var cityNamesSorted = func() []string {
	names := geo.CityNames()
	sort.Strings(names)
	return names
}()

// Document is one generated document; its shape mirrors the input mapping.
type Document map[string]any

// Generator produces documents for a mapping under a rule set. It holds no
// per-document state; a fresh language context is created for each document.
type Generator struct {
	rnd   *random.Source
	rules rules.Set
	// timeRange bounds date fields without a per-rule range. nil means the
	// 24 hours up to the moment of generation.
	timeRange *dates.Range
}

// New creates a Generator drawing from rnd.
func New(rnd *random.Source, set rules.Set, timeRange *dates.Range) *Generator {
	return &Generator{rnd: rnd, rules: set, timeRange: timeRange}
}

// docState carries the per-document language context through the recursive
// generation calls.
type docState struct {
	lang *langState
}

// Document generates one document. Language families are seeded in a first
// pass and their default-language values rendered in a second, so that
// translated fields resolve to the same underlying choice regardless of the
// order fields are visited in.
func (g *Generator) Document(m mapping.Mapping) Document {
	st := &docState{lang: newLangState()}

	// Pass 1: one shared seed per language family.
	for name := range m {
		if base, _, ok := SplitLang(name); ok {
			if _, seeded := st.lang.seeds[base]; !seeded {
				st.lang.seeds[base] = g.rnd.Uint64()
			}
		}
	}

	// Pass 2: anchor each family on its default-language value.
	for base := range st.lang.seeds {
		st.lang.valueFor(base, DefaultLanguage)
	}

	// Pass 3: generate every field.
	doc := make(Document, len(m))
	for _, name := range sortedNames(m) {
		doc[name] = g.value(m[name], name, name, st)
	}
	return doc
}

// Documents generates n documents. There is no inter-document coupling and
// no uniqueness guarantee.
func (g *Generator) Documents(m mapping.Mapping, n int) []Document {
	docs := make([]Document, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, g.Document(m))
	}
	return docs
}

// DocumentsAt generates one document per timestamp, forcing the named date
// field to that instant (rendered in the field's detected format) via a
// manual rule, and generating every other field normally.
func (g *Generator) DocumentsAt(m mapping.Mapping, timestamps []time.Time, dateField string) []Document {
	tag := g.dateTag(m, dateField)

	docs := make([]Document, 0, len(timestamps))
	for _, ts := range timestamps {
		forced := &Generator{
			rnd:       g.rnd,
			rules:     g.rules.With(dateField, rules.Manual{Value: dates.Render(ts, tag)}),
			timeRange: g.timeRange,
		}
		docs = append(docs, forced.Document(m))
	}
	return docs
}

// dateTag resolves the serialization for a forced date field: an explicit
// date rule's format wins, then the schema-declared format.
func (g *Generator) dateTag(m mapping.Mapping, dateField string) dates.Tag {
	if r, ok := g.rules.Lookup(dateField).(rules.Date); ok && r.Format != "" {
		return dates.Detect(r.Format)
	}
	if f := mapping.At(m, dateField); f != nil {
		return dates.Detect(f.Format)
	}
	return dates.TagISO8601
}

// value is the central dispatcher: one field in, one value out. path is the
// full dotted path used for rule lookup; name is the bare field name used by
// the heuristics.
func (g *Generator) value(f *mapping.Field, path, name string, st *docState) any {
	rule := g.rules.Lookup(path)

	// A manual rule is the escape hatch: highest precedence, skips all
	// type logic.
	if m, ok := rule.(rules.Manual); ok {
		return m.Value
	}

	switch t := f.EffectiveType(); t {
	case mapping.TypeKeyword, mapping.TypeText:
		return g.stringValue(name, rule, st)
	case mapping.TypeDate:
		return g.dateValue(f, rule)
	case mapping.TypeFloat, mapping.TypeDouble, mapping.TypeInteger, mapping.TypeShort, mapping.TypeLong:
		return g.numericValue(name, t, rule)
	case mapping.TypeBoolean:
		return g.rnd.Bool(boolProbability(name))
	case mapping.TypeGeoPoint:
		return g.geoValue(rule)
	case mapping.TypeIP:
		if r, ok := rule.(rules.IP); ok && strings.EqualFold(r.Version, "v6") {
			return g.rnd.IPv6()
		}
		return g.rnd.IPv4()
	case mapping.TypeObject:
		nested := make(Document, len(f.Properties))
		for _, childName := range sortedNames(f.Properties) {
			nested[childName] = g.value(f.Properties[childName], path+"."+childName, childName, st)
		}
		return nested
	default:
		// Unknown types never fail a batch.
		return g.rnd.Alphanumeric(10)
	}
}

func (g *Generator) stringValue(name string, rule rules.Rule, st *docState) string {
	switch r := rule.(type) {
	case rules.Prefix:
		n := r.Length
		if n <= 0 {
			n = 8
		}
		return r.Prefix + g.rnd.Alphanumeric(n)
	case rules.Phone:
		return phoneNumber(g.rnd, r.Country)
	case rules.StringList:
		if len(r.Values) > 0 {
			return random.Pick(g.rnd, r.Values)
		}
	case rules.ImagePath:
		return imagePath(g.rnd, r)
	}

	if base, code, ok := SplitLang(name); ok {
		if v, ok := st.lang.valueFor(base, code); ok {
			return v
		}
	}

	if v, ok := matchString(name, g.rnd); ok {
		return v
	}
	return g.rnd.Alphanumeric(10)
}

func imagePath(rnd *random.Source, r rules.ImagePath) string {
	switch {
	case r.Template != "":
		return strings.ReplaceAll(r.Template, "{}", rnd.Digits(4))
	case len(r.Paths) > 0:
		return random.Pick(rnd, r.Paths)
	default:
		return r.Path
	}
}

// phoneFormats are per-country dialing templates; X is a random digit.
var phoneFormats = map[string]string{
	"us": "+1-XXX-XXX-XXXX",
	"uk": "+44 7XXX XXXXXX",
	"de": "+49 1XX XXXXXXX",
	"fr": "+33 6 XX XX XX XX",
	"es": "+34 6XX XXX XXX",
	"in": "+91 XXXXX XXXXX",
	"ae": "+971 5X XXX XXXX",
	"sa": "+966 5X XXX XXXX",
	"eg": "+20 1X XXXX XXXX",
}

func phoneNumber(rnd *random.Source, country string) string {
	format, ok := phoneFormats[strings.ToLower(country)]
	if !ok {
		format = "+XX XXX XXX XXXX"
	}
	var b strings.Builder
	b.Grow(len(format))
	for i := 0; i < len(format); i++ {
		if format[i] == 'X' {
			b.WriteByte('0' + byte(rnd.IntN(10)))
		} else {
			b.WriteByte(format[i])
		}
	}
	return b.String()
}

func (g *Generator) dateValue(f *mapping.Field, rule rules.Rule) any {
	tag := dates.Detect(f.Format)
	r := g.effectiveRange()

	if d, ok := rule.(rules.Date); ok {
		if d.Format != "" {
			tag = dates.Detect(d.Format)
		}
		if d.Start != nil && d.End != nil {
			r = dates.Range{Start: *d.Start, End: *d.End}
		}
	}

	return dates.Render(r.Random(g.rnd.Float64()), tag)
}

func (g *Generator) effectiveRange() dates.Range {
	if g.timeRange != nil {
		return *g.timeRange
	}
	return dates.LastDay()
}

func (g *Generator) numericValue(name, typeTag string, rule rules.Rule) any {
	integer := mapping.IsIntegerType(typeTag)

	bounded := func(min, max float64) any {
		if integer {
			return g.rnd.IntBetween(int(math.Round(min)), int(math.Round(max)))
		}
		return g.rnd.FloatBetween(min, max)
	}

	switch r := rule.(type) {
	case rules.GeoNumber:
		return bounded(r.Min, r.Max)
	case rules.NumRange:
		return bounded(r.Min, r.Max)
	case rules.NumMax:
		return bounded(0, r.Max)
	}

	if v, ok := matchNumeric(name, g.rnd); ok {
		if integer {
			return int(math.Round(v))
		}
		return v
	}

	if integer {
		return g.rnd.IntBetween(0, 1000)
	}
	return g.rnd.FloatBetween(0, 1000)
}

func (g *Generator) geoValue(rule rules.Rule) any {
	switch r := rule.(type) {
	case rules.GeoPoint:
		return geo.Point{
			Lat: g.rnd.FloatBetween(r.LatMin, r.LatMax),
			Lon: g.rnd.FloatBetween(r.LonMin, r.LonMax),
		}
	case rules.GeoCity:
		if p, ok := geo.City(r.City); ok {
			return geo.Point{
				Lat: p.Lat + g.rnd.FloatBetween(-0.05, 0.05),
				Lon: p.Lon + g.rnd.FloatBetween(-0.05, 0.05),
			}
		}
	case rules.Geohash:
		return geo.Encode(g.rnd.FloatBetween(-90, 90), g.rnd.FloatBetween(-180, 180), r.Precision)
	case rules.GeoPath:
		// One-shot generation places the entity somewhere along its route;
		// live stepping is the caller's loop.
		src := geo.Point{Lat: r.SrcLat, Lon: r.SrcLon}
		dst := geo.Point{Lat: r.DstLat, Lon: r.DstLon}
		return geo.Intermediate(src, dst, g.rnd.Float64())
	}

	return geo.Point{
		Lat: g.rnd.FloatBetween(-90, 90),
		Lon: g.rnd.FloatBetween(-180, 180),
	}
}

func sortedNames(m mapping.Mapping) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
