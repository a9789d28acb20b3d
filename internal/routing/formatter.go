package routing

import (
	"fmt"
	"strings"

	"github.com/Domenick1991/flightplanner/internal/domain"
)

const lineSeparator = "--------------------------------"

// FormatItinerary renders legs as a numbered flight plan report. Elapsed time
// for a leg is its distance over the airplane's airspeed.
func FormatItinerary(legs []GeoEdge, plane domain.Airplane) string {
	var sb strings.Builder
	sb.WriteString("Flight Plan:\n\n")
	for i, leg := range legs {
		fmt.Fprintf(&sb, "%d. %s to %s\n", i+1, leg.Origin().Name, leg.Destination().Name)
		fmt.Fprintf(&sb, "   Distance: %.2f Nautical Miles\n", leg.Distance())
		fmt.Fprintf(&sb, "   Heading: %.1f°\n", leg.Heading())
		fmt.Fprintf(&sb, "   Time Taken: %.2f Hours\n", leg.Hours(plane.Airspeed))
		sb.WriteString(lineSeparator + "\n")
	}
	return sb.String()
}

// Legs converts edges into their transport form.
func Legs(edges []GeoEdge, plane domain.Airplane) []domain.Leg {
	out := make([]domain.Leg, 0, len(edges))
	for _, e := range edges {
		out = append(out, domain.Leg{
			From:     e.Origin().Identifier,
			FromName: e.Origin().Name,
			To:       e.Destination().Identifier,
			ToName:   e.Destination().Name,
			Distance: e.Distance(),
			Heading:  e.Heading(),
			Hours:    e.Hours(plane.Airspeed),
		})
	}
	return out
}
