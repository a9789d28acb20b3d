package domain

import (
	"math"
	"sort"
	"strings"
)

const (
	FuelAvgas = "AVGAS"
	FuelJetA  = "JA-a"
)

// Airport is an operator-entered airfield record. The routing engine never mutates it.
type Airport struct {
	Identifier  string             `json:"identifier"`
	Name        string             `json:"name"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	Frequencies map[string]float64 `json:"frequencies"`
	FuelTypes   []string           `json:"fuel_types"`
}

// AirportKey is the comparable identity of an Airport: identifier, name and coordinates.
type AirportKey struct {
	Identifier string
	Name       string
	Latitude   float64
	Longitude  float64
}

// NewAirport builds an airport with coordinates rounded to four decimals and
// frequencies rounded to three.
func NewAirport(identifier, name string, lat, lon float64, frequencies map[string]float64, fuelTypes []string) Airport {
	freqs := make(map[string]float64, len(frequencies))
	for k, v := range frequencies {
		freqs[k] = round(v, 1000)
	}
	fuels := make([]string, len(fuelTypes))
	copy(fuels, fuelTypes)
	return Airport{
		Identifier:  identifier,
		Name:        name,
		Latitude:    round(lat, 10000),
		Longitude:   round(lon, 10000),
		Frequencies: freqs,
		FuelTypes:   fuels,
	}
}

func (a Airport) Key() AirportKey {
	return AirportKey{Identifier: a.Identifier, Name: a.Name, Latitude: a.Latitude, Longitude: a.Longitude}
}

func (a Airport) Equal(other Airport) bool {
	return a.Key() == other.Key()
}

// Stocks reports whether the airport sells the given fuel tag. Tags compare case-insensitively.
func (a Airport) Stocks(fuel string) bool {
	for _, f := range a.FuelTypes {
		if strings.EqualFold(strings.TrimSpace(f), fuel) {
			return true
		}
	}
	return false
}

func (a Airport) DisplayInfo() string {
	var sb strings.Builder
	sb.WriteString("Identifier: " + a.Identifier + ", ")
	sb.WriteString("Name: " + a.Name + ", ")
	sb.WriteString("Latitude: " + formatFloat(a.Latitude) + ", ")
	sb.WriteString("Longitude: " + formatFloat(a.Longitude) + ", ")
	sb.WriteString("Frequencies: ")
	names := make([]string, 0, len(a.Frequencies))
	for name := range a.Frequencies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(name + ": " + formatFloat(a.Frequencies[name]) + " MHz, ")
	}
	sb.WriteString("Fuel Types: ")
	if len(a.FuelTypes) == 0 {
		sb.WriteString("None")
	} else {
		sb.WriteString(strings.Join(a.FuelTypes, ", "))
	}
	return sb.String()
}

// Validate checks the record against the catalogue rules.
func (a Airport) Validate() error {
	verr := &ValidationError{}
	ident := strings.TrimSpace(a.Identifier)
	switch {
	case ident == "":
		verr.add("identifier", "is required")
	case len(ident) > 4:
		verr.add("identifier", "must be at most 4 characters")
	case strings.ContainsAny(ident, "0123456789"):
		verr.add("identifier", "must not contain digits")
	}
	if strings.TrimSpace(a.Name) == "" {
		verr.add("name", "is required")
	}
	if a.Latitude < -90 || a.Latitude > 90 || math.IsNaN(a.Latitude) {
		verr.add("latitude", "must be between -90 and 90")
	}
	if a.Longitude < -180 || a.Longitude > 180 || math.IsNaN(a.Longitude) {
		verr.add("longitude", "must be between -180 and 180")
	}
	seen := make(map[string]bool, len(a.FuelTypes))
	for _, f := range a.FuelTypes {
		canonical, ok := CanonicalFuel(f)
		if !ok {
			verr.add("fuel_types", "unknown fuel type "+f)
			continue
		}
		seen[canonical] = true
	}
	if len(seen) == 0 || len(seen) > 2 {
		verr.add("fuel_types", "one or two of AVGAS, JA-a are required")
	}
	return verr.orNil()
}

// CanonicalFuel maps a user-entered fuel tag onto AVGAS or JA-a.
func CanonicalFuel(tag string) (string, bool) {
	t := strings.TrimSpace(tag)
	switch {
	case strings.EqualFold(t, FuelAvgas):
		return FuelAvgas, true
	case strings.EqualFold(t, FuelJetA):
		return FuelJetA, true
	}
	return "", false
}

func round(v, scale float64) float64 {
	return math.Round(v*scale) / scale
}
