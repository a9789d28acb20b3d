package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/Domenick1991/flightplanner/internal/kafka"
	"github.com/Domenick1991/flightplanner/internal/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogue struct {
	mock.Mock
}

func (m *MockCatalogue) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockCatalogue) GetAirplane(ctx context.Context, key int) (*domain.Airplane, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveItinerary(ctx context.Context, it *domain.Itinerary, ttl time.Duration) error {
	return m.Called(ctx, it, ttl).Error(0)
}

func (m *MockStore) GetItinerary(ctx context.Context, id string) (*domain.Itinerary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Itinerary), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishWithRetry(ctx context.Context, topic, key string, payload interface{}, maxRetries int) error {
	return m.Called(ctx, topic, key, payload, maxRetries).Error(0)
}

// One degree of latitude is 60 distance units; the plane covers 100 on a full tank.
var (
	alpha   = domain.NewAirport("AAAA", "Alpha Field", 0, 0, nil, []string{domain.FuelAvgas})
	bravo   = domain.NewAirport("BBBB", "Bravo Field", 1, 0, nil, []string{domain.FuelAvgas})
	charlie = domain.NewAirport("CCCC", "Charlie Field", 2, 0, nil, []string{domain.FuelJetA})
	faraway = domain.NewAirport("FARR", "Faraway Field", 10, 0, nil, []string{domain.FuelAvgas})
	cub     = domain.NewAirplane(7, "Piper Cub", domain.AirplaneProp, 100, 1, 60)
)

func newCatalogue(ctx context.Context) *MockCatalogue {
	c := &MockCatalogue{}
	c.On("GetAirplane", ctx, 7).Return(&cub, nil)
	c.On("ListAirports", ctx).Return([]domain.Airport{alpha, bravo, charlie, faraway}, nil)
	return c
}

func TestPlanningService_Plan_Success(t *testing.T) {
	ctx := context.Background()
	catalogue, store, producer := newCatalogue(ctx), &MockStore{}, &MockProducer{}
	service := NewPlanningService(catalogue, time.Second,
		WithStore(store, time.Hour),
		WithEvents(producer, "itinerary_events", 3),
	)

	store.On("SaveItinerary", ctx, mock.AnythingOfType("*domain.Itinerary"), time.Hour).Return(nil).Once()
	producer.On("PublishWithRetry", ctx, "itinerary_events", mock.Anything, mock.MatchedBy(func(e kafka.ItineraryEvent) bool {
		return e.Type == kafka.EventItineraryPlanned && e.Legs == 4 && e.AirplaneKey == 7
	}), 3).Return(nil).Once()

	it, err := service.Plan(ctx, PlanInput{AirplaneKey: 7, Waypoints: []string{"aaaa", "BBBB", "AAAA", "CCCC"}})

	require.NoError(t, err)
	assert.NotEmpty(t, it.ID)
	assert.Equal(t, []string{"AAAA", "BBBB", "AAAA", "CCCC"}, it.Waypoints)
	// Alpha to Charlie is out of range and needs a fuel stop at Bravo.
	require.Len(t, it.Legs, 4)
	assert.Equal(t, "AAAA", it.Legs[0].From)
	assert.Equal(t, "BBBB", it.Legs[2].To)
	assert.Equal(t, "CCCC", it.Legs[3].To)
	assert.InDelta(t, 240, it.TotalDistance, 1e-9)
	assert.InDelta(t, 4.0, it.TotalHours, 1e-9)
	assert.Contains(t, it.Report, "1. Alpha Field to Bravo Field")
	assert.Contains(t, it.Report, "4. Bravo Field to Charlie Field")

	store.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestPlanningService_Plan_Unreachable(t *testing.T) {
	ctx := context.Background()
	catalogue, store, producer := newCatalogue(ctx), &MockStore{}, &MockProducer{}
	service := NewPlanningService(catalogue, time.Second,
		WithStore(store, time.Hour),
		WithEvents(producer, "itinerary_events", 1),
	)

	producer.On("PublishWithRetry", ctx, "itinerary_events", "airplane-7", mock.MatchedBy(func(e kafka.ItineraryEvent) bool {
		return e.Type == kafka.EventItineraryFailed && e.Reason == "flight plan not possible between Alpha Field and Faraway Field"
	}), 1).Return(errors.New("broker down")).Once()

	it, err := service.Plan(ctx, PlanInput{AirplaneKey: 7, Waypoints: []string{"AAAA", "FARR"}})

	assert.Nil(t, it)
	var unreachable *routing.UnreachableError
	require.ErrorAs(t, err, &unreachable)
	assert.Equal(t, "Alpha Field", unreachable.From)
	assert.ErrorIs(t, err, routing.ErrNoRoute)
	store.AssertNotCalled(t, "SaveItinerary")
	producer.AssertExpectations(t)
}

func TestPlanningService_Plan_NotApplicable(t *testing.T) {
	ctx := context.Background()
	service := NewPlanningService(newCatalogue(ctx), time.Second)

	_, err := service.Plan(ctx, PlanInput{AirplaneKey: 7, Waypoints: []string{"AAAA", "AAAA"}})

	assert.ErrorIs(t, err, routing.ErrSameEndpoints)
	assert.ErrorIs(t, err, routing.ErrNotApplicable)
}

func TestPlanningService_Plan_ResolutionErrors(t *testing.T) {
	ctx := context.Background()
	catalogue := newCatalogue(ctx)
	catalogue.On("GetAirplane", ctx, 99).Return(nil, domain.ErrAirplaneNotFound)
	service := NewPlanningService(catalogue, 0)

	_, err := service.Plan(ctx, PlanInput{AirplaneKey: 99, Waypoints: []string{"AAAA", "BBBB"}})
	assert.ErrorIs(t, err, domain.ErrAirplaneNotFound)

	_, err = service.Plan(ctx, PlanInput{AirplaneKey: 7, Waypoints: []string{"AAAA", "ZZZZ"}})
	assert.ErrorIs(t, err, domain.ErrAirportNotFound)
	assert.ErrorContains(t, err, `"ZZZZ"`)

	_, err = service.Plan(ctx, PlanInput{AirplaneKey: 7, Waypoints: []string{"AAAA"}})
	assert.ErrorIs(t, err, routing.ErrTooFewWaypoints)
}

func TestPlanningService_Plan_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	service := NewPlanningService(newCatalogue(ctx), time.Second)

	_, err := service.Plan(ctx, PlanInput{AirplaneKey: 7, Waypoints: []string{"AAAA", "BBBB"}})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlanningService_GetItinerary(t *testing.T) {
	ctx := context.Background()
	store := &MockStore{}
	service := NewPlanningService(&MockCatalogue{}, time.Second, WithStore(store, time.Hour))

	want := &domain.Itinerary{ID: "abc"}
	store.On("GetItinerary", ctx, "abc").Return(want, nil).Once()

	got, err := service.GetItinerary(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = NewPlanningService(&MockCatalogue{}, time.Second).GetItinerary(ctx, "abc")
	assert.ErrorIs(t, err, ErrItinerariesDisabled)
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, "not_applicable", outcomeOf(routing.ErrInvalidAirspeed))
	assert.Equal(t, "unreachable", outcomeOf(&routing.UnreachableError{From: "A", To: "B"}))
	assert.Equal(t, "error", outcomeOf(context.DeadlineExceeded))
}
