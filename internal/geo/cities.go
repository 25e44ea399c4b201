// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package geo

import "strings"

// cities is the built-in gazetteer for geo_city rules.
var cities = map[string]Point{
	"london":        {Lat: 51.5074, Lon: -0.1278},
	"paris":         {Lat: 48.8566, Lon: 2.3522},
	"berlin":        {Lat: 52.5200, Lon: 13.4050},
	"madrid":        {Lat: 40.4168, Lon: -3.7038},
	"rome":          {Lat: 41.9028, Lon: 12.4964},
	"amsterdam":     {Lat: 52.3676, Lon: 4.9041},
	"moscow":        {Lat: 55.7558, Lon: 37.6173},
	"istanbul":      {Lat: 41.0082, Lon: 28.9784},
	"new york":      {Lat: 40.7128, Lon: -74.0060},
	"los angeles":   {Lat: 34.0522, Lon: -118.2437},
	"chicago":       {Lat: 41.8781, Lon: -87.6298},
	"toronto":       {Lat: 43.6532, Lon: -79.3832},
	"mexico city":   {Lat: 19.4326, Lon: -99.1332},
	"sao paulo":     {Lat: -23.5505, Lon: -46.6333},
	"buenos aires":  {Lat: -34.6037, Lon: -58.3816},
	"cairo":         {Lat: 30.0444, Lon: 31.2357},
	"lagos":         {Lat: 6.5244, Lon: 3.3792},
	"nairobi":       {Lat: -1.2921, Lon: 36.8219},
	"johannesburg":  {Lat: -26.2041, Lon: 28.0473},
	"dubai":         {Lat: 25.2048, Lon: 55.2708},
	"abu dhabi":     {Lat: 24.4539, Lon: 54.3773},
	"riyadh":        {Lat: 24.7136, Lon: 46.6753},
	"doha":          {Lat: 25.2854, Lon: 51.5310},
	"kuwait city":   {Lat: 29.3759, Lon: 47.9774},
	"muscat":        {Lat: 23.5880, Lon: 58.3829},
	"amman":         {Lat: 31.9454, Lon: 35.9284},
	"beirut":        {Lat: 33.8938, Lon: 35.5018},
	"baghdad":       {Lat: 33.3152, Lon: 44.3661},
	"tehran":        {Lat: 35.6892, Lon: 51.3890},
	"karachi":       {Lat: 24.8607, Lon: 67.0011},
	"mumbai":        {Lat: 19.0760, Lon: 72.8777},
	"delhi":         {Lat: 28.7041, Lon: 77.1025},
	"dhaka":         {Lat: 23.8103, Lon: 90.4125},
	"bangkok":       {Lat: 13.7563, Lon: 100.5018},
	"singapore":     {Lat: 1.3521, Lon: 103.8198},
	"jakarta":       {Lat: -6.2088, Lon: 106.8456},
	"hong kong":     {Lat: 22.3193, Lon: 114.1694},
	"shanghai":      {Lat: 31.2304, Lon: 121.4737},
	"beijing":       {Lat: 39.9042, Lon: 116.4074},
	"seoul":         {Lat: 37.5665, Lon: 126.9780},
	"tokyo":         {Lat: 35.6762, Lon: 139.6503},
	"sydney":        {Lat: -33.8688, Lon: 151.2093},
	"melbourne":     {Lat: -37.8136, Lon: 144.9631},
	"auckland":      {Lat: -36.8509, Lon: 174.7645},
	"san francisco": {Lat: 37.7749, Lon: -122.4194},
	"seattle":       {Lat: 47.6062, Lon: -122.3321},
	"stockholm":     {Lat: 59.3293, Lon: 18.0686},
	"oslo":          {Lat: 59.9139, Lon: 10.7522},
	"copenhagen":    {Lat: 55.6761, Lon: 12.5683},
	"lisbon":        {Lat: 38.7223, Lon: -9.1393},
}

// City looks up a gazetteer entry by name, case-insensitively.
func City(name string) (Point, bool) {
	p, ok := cities[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// CityNames returns the gazetteer's city names, unordered.
func CityNames() []string {
	names := make([]string, 0, len(cities))
	for name := range cities {
		names = append(names, name)
	}
	return names
}
