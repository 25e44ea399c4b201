// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"fmt"
	"strings"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"

	"github.com/dacolabs/esgen/internal/random"
)

// A heuristic pairs a field-name predicate with a generator. heuristics are
// data, evaluated in priority order, so the set is testable and extensible
// without touching the dispatcher.
type heuristic[T any] struct {
	match func(name string) bool
	gen   func(rnd *random.Source) T
}

func nameContains(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, sub := range subs {
			if !strings.Contains(name, sub) {
				return false
			}
		}
		return true
	}
}

func nameContainsAny(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, sub := range subs {
			if strings.Contains(name, sub) {
				return true
			}
		}
		return false
	}
}

func nameIs(exact ...string) func(string) bool {
	return func(name string) bool {
		for _, e := range exact {
			if name == e {
				return true
			}
		}
		return false
	}
}

var airportCodes = []string{
	"LHR", "CDG", "FRA", "AMS", "MAD", "FCO", "IST", "DXB", "DOH", "AUH",
	"JFK", "LAX", "ORD", "ATL", "SFO", "SEA", "YYZ", "GRU", "EZE", "MEX",
	"CAI", "JNB", "NBO", "BOM", "DEL", "SIN", "BKK", "HKG", "NRT", "ICN",
	"PEK", "PVG", "SYD", "MEL", "AKL",
}

var vesselNames = []string{
	"MV Northern Star", "MV Pacific Dawn", "SS Meridian", "MV Coral Queen",
	"MV Atlantic Trader", "SS Horizon", "MV Gulf Pearl", "MV Sea Falcon",
	"MV Ocean Glory", "SS Aurora", "MV Cedar Wind", "MV Desert Rose",
}

var colors = []string{
	"Red", "Blue", "Green", "Yellow", "Black", "White", "Silver", "Gray",
	"Orange", "Purple", "Brown", "Gold", "Teal", "Navy", "Maroon",
}

var companySuffixes = []string{"Ltd", "LLC", "Group", "Holdings", "Industries", "Trading", "Logistics", "Systems"}

var streetTypes = []string{"Street", "Avenue", "Road", "Boulevard", "Lane", "Drive"}

func licensePlate(rnd *random.Source) string {
	return strings.ToUpper(rnd.Letters(3)) + "-" + rnd.Digits(4)
}

// imei returns 15 digits; checksum validity is not attempted.
func imei(rnd *random.Source) string {
	return rnd.Digits(15)
}

// stringHeuristics map field names to semantically plausible values,
// first match wins.
var stringHeuristics = []heuristic[string]{
	{nameContainsAny("email", "mail"), func(*random.Source) string { return faker.Email() }},
	{nameIs("id", "uuid", "guid"), func(*random.Source) string { return uuid.NewString() }},
	{nameContainsAny("uuid", "guid"), func(*random.Source) string { return uuid.NewString() }},
	{nameContains("first", "name"), func(*random.Source) string { return faker.FirstName() }},
	{nameContains("last", "name"), func(*random.Source) string { return faker.LastName() }},
	{nameContains("user", "name"), func(*random.Source) string { return faker.Username() }},
	{nameContains("vessel", "name"), func(rnd *random.Source) string { return random.Pick(rnd, vesselNames) }},
	{nameContainsAny("airport"), func(rnd *random.Source) string { return random.Pick(rnd, airportCodes) }},
	{nameContainsAny("license", "plate"), licensePlate},
	{nameContainsAny("imei"), imei},
	{nameContainsAny("phone", "mobile", "msisdn"), func(*random.Source) string { return faker.Phonenumber() }},
	{nameContainsAny("city"), cityName},
	{nameContainsAny("country"), func(rnd *random.Source) string {
		return random.Pick(rnd, langTables["country"][DefaultLanguage])
	}},
	{nameContainsAny("url", "website", "link"), func(*random.Source) string { return faker.URL() }},
	{nameContainsAny("status", "state"), func(rnd *random.Source) string {
		return random.Pick(rnd, langTables["status"][DefaultLanguage])
	}},
	{nameContainsAny("color", "colour"), func(rnd *random.Source) string { return random.Pick(rnd, colors) }},
	{nameContainsAny("company", "organization", "organisation", "employer"), func(rnd *random.Source) string {
		return faker.LastName() + " " + random.Pick(rnd, companySuffixes)
	}},
	{nameContainsAny("address", "street"), func(rnd *random.Source) string {
		return fmt.Sprintf("%d %s %s", rnd.IntBetween(1, 999), faker.LastName(), random.Pick(rnd, streetTypes))
	}},
	{nameContainsAny("description", "comment", "message", "note", "title"), func(*random.Source) string {
		return faker.Sentence()
	}},
	{nameContainsAny("name"), func(*random.Source) string { return faker.Name() }},
}

func cityName(rnd *random.Source) string {
	// Title-case a gazetteer entry so string and geo city fields agree on
	// the world they describe.
	name := random.Pick(rnd, cityNamesSorted)
	parts := strings.Fields(name)
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// numericHeuristics pick domain-appropriate ranges by field name.
var numericHeuristics = []heuristic[float64]{
	{nameContainsAny("age"), func(rnd *random.Source) float64 { return float64(rnd.IntBetween(1, 100)) }},
	{nameContainsAny("percent", "ratio", "progress"), func(rnd *random.Source) float64 {
		return rnd.FloatBetween(0, 100)
	}},
	{nameContainsAny("price", "cost", "amount", "salary", "revenue"), func(rnd *random.Source) float64 {
		return rnd.FloatBetween(1, 10000)
	}},
	{nameContainsAny("weight"), func(rnd *random.Source) float64 { return rnd.FloatBetween(1, 500) }},
	{nameContainsAny("height"), func(rnd *random.Source) float64 { return rnd.FloatBetween(50, 250) }},
	{nameContainsAny("rating", "stars"), func(rnd *random.Source) float64 { return rnd.FloatBetween(1, 5) }},
	{nameContainsAny("year"), func(rnd *random.Source) float64 { return float64(rnd.IntBetween(1970, 2030)) }},
	{nameContainsAny("quantity", "count", "qty"), func(rnd *random.Source) float64 {
		return float64(rnd.IntBetween(0, 1000))
	}},
	{nameContainsAny("port"), func(rnd *random.Source) float64 { return float64(rnd.IntBetween(1, 65535)) }},
	{nameContainsAny("latitude"), func(rnd *random.Source) float64 { return rnd.FloatBetween(-90, 90) }},
	{nameContainsAny("longitude"), func(rnd *random.Source) float64 { return rnd.FloatBetween(-180, 180) }},
}

var positiveBoolWords = []string{"active", "enabled", "verified", "valid", "available", "online", "approved", "success"}
var negativeBoolWords = []string{"deleted", "blocked", "banned", "disabled", "inactive", "expired", "suspended", "failed"}

// boolProbability biases boolean generation by field name: positive-state
// names skew true, negative-state names skew false.
func boolProbability(name string) float64 {
	lower := strings.ToLower(name)
	for _, w := range negativeBoolWords {
		if strings.Contains(lower, w) {
			return 0.2
		}
	}
	for _, w := range positiveBoolWords {
		if strings.Contains(lower, w) {
			return 0.8
		}
	}
	return 0.5
}

func matchString(name string, rnd *random.Source) (string, bool) {
	lower := strings.ToLower(name)
	for _, h := range stringHeuristics {
		if h.match(lower) {
			return h.gen(rnd), true
		}
	}
	return "", false
}

func matchNumeric(name string, rnd *random.Source) (float64, bool) {
	lower := strings.ToLower(name)
	for _, h := range numericHeuristics {
		if h.match(lower) {
			return h.gen(rnd), true
		}
	}
	return 0, false
}
