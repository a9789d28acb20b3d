package routing

import (
	"container/heap"
	"context"
	"log/slog"

	"github.com/Domenick1991/flightplanner/internal/domain"
)

// Planner runs fuel-aware shortest-distance searches over a RouteGraph.
type Planner struct {
	graph  *RouteGraph
	logger *slog.Logger
}

func NewPlanner(graph *RouteGraph, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{graph: graph, logger: logger}
}

func (p *Planner) Graph() *RouteGraph {
	return p.graph
}

// CheckApplicable reports why a search between from and to with plane would be
// meaningless, or nil.
func CheckApplicable(from, to domain.Airport, plane domain.Airplane) error {
	switch {
	case from.Equal(to):
		return ErrSameEndpoints
	case plane.Airspeed <= 0:
		return ErrInvalidAirspeed
	case plane.TankCapacity <= 0:
		return ErrInvalidTankCapacity
	}
	return nil
}

// FindRoute returns the edges of the shortest fuel-feasible route from one
// airport to another. The airplane departs with a full tank. A nil error with
// an empty slice means no route exists. Degenerate inputs return an error
// wrapping ErrNotApplicable without searching.
//
// Ties between equal cumulative distances are broken arbitrarily.
func (p *Planner) FindRoute(ctx context.Context, from, to domain.Airport, plane domain.Airplane) ([]GeoEdge, error) {
	if err := CheckApplicable(from, to, plane); err != nil {
		return nil, err
	}

	p.logger.Debug("route search started", "from", from.Identifier, "to", to.Identifier, "airplane", plane.Key)

	required := plane.RequiredFuel()
	origin, target := from.Key(), to.Key()

	dist := map[domain.AirportKey]float64{origin: 0}
	fuel := map[domain.AirportKey]float64{origin: plane.TankCapacity}
	prev := make(map[domain.AirportKey]GeoEdge)

	frontier := &frontier{}
	heap.Push(frontier, frontierItem{key: origin, airport: from, distance: 0})

	for frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item := heap.Pop(frontier).(frontierItem)
		if item.distance > dist[item.key] {
			continue
		}
		if item.key == target {
			break
		}

		for _, edge := range p.graph.Edges(item.airport) {
			next := edge.Destination()
			needed := edge.Hours(plane.Airspeed) * plane.BurnRate

			state, arriving := FuelTransition(fuel[item.key], needed, plane.TankCapacity, next.Stocks(required))
			if state == Infeasible {
				continue
			}

			nk := next.Key()
			candidate := dist[item.key] + edge.Distance()
			if best, seen := dist[nk]; seen && candidate >= best {
				continue
			}
			dist[nk] = candidate
			fuel[nk] = arriving
			prev[nk] = edge
			heap.Push(frontier, frontierItem{key: nk, airport: next, distance: candidate})
		}
	}

	var route []GeoEdge
	for step := target; ; {
		edge, ok := prev[step]
		if !ok {
			break
		}
		route = append(route, edge)
		step = edge.Origin().Key()
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	if len(route) == 0 {
		p.logger.Debug("no route found", "from", from.Identifier, "to", to.Identifier)
		return []GeoEdge{}, nil
	}
	p.logger.Debug("route found", "from", from.Identifier, "to", to.Identifier, "legs", len(route))
	return route, nil
}

// PlanItinerary chains FindRoute over consecutive waypoints. Each leg starts
// with a full tank. Any degenerate or unreachable leg aborts the whole
// itinerary; no partial result is returned.
func (p *Planner) PlanItinerary(ctx context.Context, waypoints []domain.Airport, plane domain.Airplane) ([]GeoEdge, error) {
	if len(waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}

	var legs []GeoEdge
	for i := 0; i < len(waypoints)-1; i++ {
		from, to := waypoints[i], waypoints[i+1]
		route, err := p.FindRoute(ctx, from, to, plane)
		if err != nil {
			return nil, err
		}
		if len(route) == 0 {
			return nil, &UnreachableError{From: from.Name, To: to.Name}
		}
		legs = append(legs, route...)
	}
	return legs, nil
}

type frontierItem struct {
	key      domain.AirportKey
	airport  domain.Airport
	distance float64
}

// frontier is a min-heap on distance. Stale entries are skipped on pop.
type frontier []frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].distance < f[j].distance }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
