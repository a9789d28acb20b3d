package routing

import "github.com/Domenick1991/flightplanner/internal/domain"

func airport(ident string, lat, lon float64, fuels ...string) domain.Airport {
	return domain.NewAirport(ident, ident+" Field", lat, lon, map[string]float64{"TWR": 118.3}, fuels)
}

func propPlane(tank, burn, airspeed float64) domain.Airplane {
	return domain.NewAirplane(1, "Cessna 172", domain.AirplaneProp, tank, burn, airspeed)
}

func jetPlane(tank, burn, airspeed float64) domain.Airplane {
	return domain.NewAirplane(2, "Citation CJ4", domain.AirplaneJet, tank, burn, airspeed)
}

func path(edges []GeoEdge) []string {
	out := make([]string, 0, len(edges)+1)
	for i, e := range edges {
		if i == 0 {
			out = append(out, e.Origin().Identifier)
		}
		out = append(out, e.Destination().Identifier)
	}
	return out
}
