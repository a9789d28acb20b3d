package routing

import (
	"testing"

	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatItinerary(t *testing.T) {
	a := airport("AAAA", 0, 0)
	b := airport("BBBB", 0, 1)
	c := airport("CCCC", 1, 1)
	plane := shortRangeProp()

	got := FormatItinerary([]GeoEdge{NewGeoEdge(a, b), NewGeoEdge(b, c)}, plane)

	want := "Flight Plan:\n\n" +
		"1. AAAA Field to BBBB Field\n" +
		"   Distance: 60.00 Nautical Miles\n" +
		"   Heading: 90.0°\n" +
		"   Time Taken: 0.50 Hours\n" +
		"--------------------------------\n" +
		"2. BBBB Field to CCCC Field\n" +
		"   Distance: 60.00 Nautical Miles\n" +
		"   Heading: 0.0°\n" +
		"   Time Taken: 0.50 Hours\n" +
		"--------------------------------\n"
	assert.Equal(t, want, got)
}

func TestFormatItinerary_Empty(t *testing.T) {
	assert.Equal(t, "Flight Plan:\n\n", FormatItinerary(nil, shortRangeProp()))
}

func TestLegs(t *testing.T) {
	a := airport("AAAA", 0, 0)
	b := airport("BBBB", 0, 1)
	plane := domain.NewAirplane(7, "King Air", domain.AirplaneTurboprop, 500, 60, 240)

	legs := Legs([]GeoEdge{NewGeoEdge(a, b)}, plane)

	assert.Equal(t, []domain.Leg{{
		From:     "AAAA",
		FromName: "AAAA Field",
		To:       "BBBB",
		ToName:   "BBBB Field",
		Distance: 60,
		Heading:  InitialBearing(0, 0, 0, 1),
		Hours:    0.25,
	}}, legs)
}
