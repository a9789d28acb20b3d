// Package routing models airports as a fully connected graph and searches it
// for fuel-feasible routes. It is not fit for aeronautical use: distances are a
// flat-earth approximation.
package routing

import (
	"math"

	"github.com/Domenick1991/flightplanner/internal/domain"
)

// DegreeDistance is the number of distance units per degree of arc.
const DegreeDistance = 60.0

// GeoEdge is a directed link between two airports with its distance and
// initial heading derived from their coordinates.
type GeoEdge struct {
	origin      domain.Airport
	destination domain.Airport
	distance    float64
	heading     float64
}

func NewGeoEdge(origin, destination domain.Airport) GeoEdge {
	e := GeoEdge{origin: origin, destination: destination}
	e.recompute()
	return e
}

func (e GeoEdge) Origin() domain.Airport      { return e.origin }
func (e GeoEdge) Destination() domain.Airport { return e.destination }
func (e GeoEdge) Distance() float64           { return e.distance }
func (e GeoEdge) Heading() float64            { return e.heading }

func (e *GeoEdge) SetOrigin(a domain.Airport) {
	e.origin = a
	e.recompute()
}

func (e *GeoEdge) SetDestination(a domain.Airport) {
	e.destination = a
	e.recompute()
}

// Hours is the flying time across the edge at the given airspeed.
func (e GeoEdge) Hours(airspeed float64) float64 {
	return e.distance / airspeed
}

func (e *GeoEdge) recompute() {
	e.distance = FlatDistance(e.origin.Latitude, e.origin.Longitude, e.destination.Latitude, e.destination.Longitude)
	e.heading = InitialBearing(e.origin.Latitude, e.origin.Longitude, e.destination.Latitude, e.destination.Longitude)
}

// FlatDistance treats latitude and longitude as planar axes and scales the
// degree distance by DegreeDistance.
func FlatDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	return math.Sqrt(dLat*dLat+dLon*dLon) * DegreeDistance
}

// InitialBearing returns the spherical forward azimuth from the first point to
// the second in degrees, normalised into [0, 360).
func InitialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRad(lat1)
	phi2 := toRad(lat2)
	dLon := toRad(lon2) - toRad(lon1)

	y := math.Sin(dLon) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLon)

	return math.Mod(toDeg(math.Atan2(y, x))+360, 360)
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
