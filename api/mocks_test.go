package api

import (
	"context"

	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/Domenick1991/flightplanner/internal/service/planner"
	"github.com/stretchr/testify/mock"
)

type MockFleet struct {
	mock.Mock
}

func (m *MockFleet) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockFleet) FindAirports(ctx context.Context, query string) ([]domain.Airport, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockFleet) GetAirport(ctx context.Context, identifier string) (*domain.Airport, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockFleet) AddAirport(ctx context.Context, airport domain.Airport) (*domain.Airport, error) {
	args := m.Called(ctx, airport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockFleet) EditAirport(ctx context.Context, identifier string, airport domain.Airport) (*domain.Airport, error) {
	args := m.Called(ctx, identifier, airport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockFleet) DeleteAirport(ctx context.Context, identifier string) error {
	return m.Called(ctx, identifier).Error(0)
}

func (m *MockFleet) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airplane), args.Error(1)
}

func (m *MockFleet) GetAirplane(ctx context.Context, key int) (*domain.Airplane, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockFleet) AddAirplane(ctx context.Context, airplane domain.Airplane) (*domain.Airplane, error) {
	args := m.Called(ctx, airplane)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockFleet) DeleteAirplane(ctx context.Context, key int) error {
	return m.Called(ctx, key).Error(0)
}

type MockPlanner struct {
	mock.Mock
}

func (m *MockPlanner) Plan(ctx context.Context, input planner.PlanInput) (*domain.Itinerary, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Itinerary), args.Error(1)
}

func (m *MockPlanner) GetItinerary(ctx context.Context, id string) (*domain.Itinerary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Itinerary), args.Error(1)
}
