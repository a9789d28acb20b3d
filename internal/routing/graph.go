package routing

import "github.com/Domenick1991/flightplanner/internal/domain"

// RouteGraph is an adjacency mapping from airport identity to outgoing edges.
// Airports added through AddNode are connected to every other node in both
// directions. A graph is built per planning request and is not safe for
// concurrent mutation.
type RouteGraph struct {
	listings map[domain.AirportKey][]GeoEdge
	nodes    map[domain.AirportKey]domain.Airport
	order    []domain.AirportKey
}

func NewRouteGraph(airports []domain.Airport) *RouteGraph {
	g := &RouteGraph{
		listings: make(map[domain.AirportKey][]GeoEdge, len(airports)),
		nodes:    make(map[domain.AirportKey]domain.Airport, len(airports)),
	}
	for _, a := range airports {
		g.AddNode(a)
	}
	return g
}

// AddNode inserts the airport and the reciprocal edge pair to every existing
// node. Adding an airport equal to one already present is a no-op.
func (g *RouteGraph) AddNode(airport domain.Airport) {
	key := airport.Key()
	if _, ok := g.nodes[key]; ok {
		return
	}
	g.listings[key] = nil
	for _, other := range g.order {
		existing := g.nodes[other]
		g.listings[key] = append(g.listings[key], NewGeoEdge(airport, existing))
		g.listings[other] = append(g.listings[other], NewGeoEdge(existing, airport))
	}
	g.nodes[key] = airport
	g.order = append(g.order, key)
}

// AddEdge inserts a single directed edge when both endpoints are already nodes.
func (g *RouteGraph) AddEdge(from, to domain.Airport) bool {
	fk, tk := from.Key(), to.Key()
	if _, ok := g.nodes[fk]; !ok {
		return false
	}
	if _, ok := g.nodes[tk]; !ok {
		return false
	}
	g.listings[fk] = append(g.listings[fk], NewGeoEdge(from, to))
	return true
}

func (g *RouteGraph) Listings() map[domain.AirportKey][]GeoEdge {
	return g.listings
}

func (g *RouteGraph) Edges(airport domain.Airport) []GeoEdge {
	return g.listings[airport.Key()]
}

func (g *RouteGraph) Contains(airport domain.Airport) bool {
	_, ok := g.nodes[airport.Key()]
	return ok
}

// Airports returns the nodes in insertion order.
func (g *RouteGraph) Airports() []domain.Airport {
	out := make([]domain.Airport, 0, len(g.order))
	for _, k := range g.order {
		out = append(out, g.nodes[k])
	}
	return out
}

func (g *RouteGraph) EdgeCount() int {
	n := 0
	for _, edges := range g.listings {
		n += len(edges)
	}
	return n
}
