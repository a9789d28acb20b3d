package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/Domenick1991/flightplanner/internal/kafka"
	"github.com/Domenick1991/flightplanner/internal/metrics"
	"github.com/Domenick1991/flightplanner/internal/routing"
	"github.com/google/uuid"
)

type PlanningUseCase interface {
	Plan(ctx context.Context, input PlanInput) (*domain.Itinerary, error)
	GetItinerary(ctx context.Context, id string) (*domain.Itinerary, error)
}

type PlanInput struct {
	AirplaneKey int      `json:"airplane_key"`
	Waypoints   []string `json:"waypoints"`
}

// Catalogue is the read side of the fleet service.
type Catalogue interface {
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	GetAirplane(ctx context.Context, key int) (*domain.Airplane, error)
}

type ItineraryStore interface {
	SaveItinerary(ctx context.Context, it *domain.Itinerary, ttl time.Duration) error
	GetItinerary(ctx context.Context, id string) (*domain.Itinerary, error)
}

type EventProducer interface {
	PublishWithRetry(ctx context.Context, topic, key string, payload interface{}, maxRetries int) error
}

type PlanningService struct {
	catalogue     Catalogue
	store         ItineraryStore
	producer      EventProducer
	topic         string
	retries       int
	searchTimeout time.Duration
	itineraryTTL  time.Duration
	now           func() time.Time
}

type Option func(*PlanningService)

func WithEvents(producer EventProducer, topic string, retries int) Option {
	return func(s *PlanningService) {
		s.producer = producer
		s.topic = topic
		s.retries = retries
	}
}

func WithStore(store ItineraryStore, ttl time.Duration) Option {
	return func(s *PlanningService) {
		s.store = store
		s.itineraryTTL = ttl
	}
}

func NewPlanningService(catalogue Catalogue, searchTimeout time.Duration, opts ...Option) *PlanningService {
	s := &PlanningService{
		catalogue:     catalogue,
		searchTimeout: searchTimeout,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan resolves the airplane and waypoints against the catalogue, searches a
// fuel-feasible route for every consecutive pair and records the outcome.
func (s *PlanningService) Plan(ctx context.Context, input PlanInput) (*domain.Itinerary, error) {
	started := s.now()

	plane, err := s.catalogue.GetAirplane(ctx, input.AirplaneKey)
	if err != nil {
		return nil, err
	}
	airports, err := s.catalogue.ListAirports(ctx)
	if err != nil {
		return nil, err
	}
	waypoints, err := resolveWaypoints(airports, input.Waypoints)
	if err != nil {
		return nil, err
	}

	graph := routing.NewRouteGraph(airports)
	metrics.GraphEdges.Set(float64(graph.EdgeCount()))

	searchCtx := ctx
	if s.searchTimeout > 0 {
		var cancel context.CancelFunc
		searchCtx, cancel = context.WithTimeout(ctx, s.searchTimeout)
		defer cancel()
	}

	slog.Debug("planning itinerary", "airplane", plane.Key, "waypoints", strings.Join(input.Waypoints, ","), "airports", len(airports))
	legs, err := routing.NewPlanner(graph, slog.Default()).PlanItinerary(searchCtx, waypoints, *plane)
	if err != nil {
		metrics.ObservePlan(outcomeOf(err), 0, s.now().Sub(started))
		s.publish(ctx, kafka.ItineraryEvent{
			Type:        kafka.EventItineraryFailed,
			AirplaneKey: plane.Key,
			Waypoints:   input.Waypoints,
			Reason:      err.Error(),
			At:          s.now(),
		})
		return nil, err
	}

	it := &domain.Itinerary{
		ID:          uuid.NewString(),
		AirplaneKey: plane.Key,
		Waypoints:   identifiers(waypoints),
		Legs:        routing.Legs(legs, *plane),
		Report:      routing.FormatItinerary(legs, *plane),
		CreatedAt:   s.now(),
	}
	for _, leg := range it.Legs {
		it.TotalDistance += leg.Distance
		it.TotalHours += leg.Hours
	}
	metrics.ObservePlan(metrics.OutcomePlanned, len(legs), s.now().Sub(started))

	if s.store != nil {
		if err := s.store.SaveItinerary(ctx, it, s.itineraryTTL); err != nil {
			slog.Warn("failed to store itinerary", "id", it.ID, "error", err)
		}
	}
	s.publish(ctx, kafka.ItineraryEvent{
		Type:          kafka.EventItineraryPlanned,
		ItineraryID:   it.ID,
		AirplaneKey:   plane.Key,
		Waypoints:     it.Waypoints,
		Legs:          len(it.Legs),
		TotalDistance: it.TotalDistance,
		At:            it.CreatedAt,
	})
	return it, nil
}

func (s *PlanningService) GetItinerary(ctx context.Context, id string) (*domain.Itinerary, error) {
	if s.store == nil {
		return nil, ErrItinerariesDisabled
	}
	return s.store.GetItinerary(ctx, id)
}

// ErrItinerariesDisabled is returned by GetItinerary when no store is configured.
var ErrItinerariesDisabled = errors.New("itinerary storage is not configured")

func (s *PlanningService) publish(ctx context.Context, event kafka.ItineraryEvent) {
	if s.producer == nil || s.topic == "" {
		return
	}
	key := event.ItineraryID
	if key == "" {
		key = fmt.Sprintf("airplane-%d", event.AirplaneKey)
	}
	if err := s.producer.PublishWithRetry(ctx, s.topic, key, event, s.retries); err != nil {
		slog.Warn("failed to publish itinerary event", "type", event.Type, "key", key, "error", err)
	}
}

// resolveWaypoints maps identifiers onto catalogue airports, case-insensitively.
func resolveWaypoints(airports []domain.Airport, idents []string) ([]domain.Airport, error) {
	if len(idents) < 2 {
		return nil, routing.ErrTooFewWaypoints
	}
	out := make([]domain.Airport, 0, len(idents))
	for _, ident := range idents {
		found := false
		for _, a := range airports {
			if strings.EqualFold(a.Identifier, strings.TrimSpace(ident)) {
				out = append(out, a)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("waypoint %q: %w", ident, domain.ErrAirportNotFound)
		}
	}
	return out, nil
}

func identifiers(airports []domain.Airport) []string {
	out := make([]string, len(airports))
	for i, a := range airports {
		out[i] = a.Identifier
	}
	return out
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, routing.ErrNotApplicable):
		return metrics.OutcomeNotApplicable
	case errors.Is(err, routing.ErrNoRoute):
		return metrics.OutcomeUnreachable
	default:
		return metrics.OutcomeError
	}
}

var _ PlanningUseCase = (*PlanningService)(nil)
