package fleet

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/Domenick1991/flightplanner/internal/repository"
)

type AirportUseCase interface {
	ListAirports(ctx context.Context) ([]domain.Airport, error)
	FindAirports(ctx context.Context, query string) ([]domain.Airport, error)
	GetAirport(ctx context.Context, identifier string) (*domain.Airport, error)
	AddAirport(ctx context.Context, airport domain.Airport) (*domain.Airport, error)
	EditAirport(ctx context.Context, identifier string, airport domain.Airport) (*domain.Airport, error)
	DeleteAirport(ctx context.Context, identifier string) error
}

type AirplaneUseCase interface {
	ListAirplanes(ctx context.Context) ([]domain.Airplane, error)
	GetAirplane(ctx context.Context, key int) (*domain.Airplane, error)
	AddAirplane(ctx context.Context, airplane domain.Airplane) (*domain.Airplane, error)
	DeleteAirplane(ctx context.Context, key int) error
}

// Cache holds whole-catalogue snapshots. A nil slice with a nil error is a miss.
type Cache interface {
	GetAirports(ctx context.Context) ([]domain.Airport, error)
	SetAirports(ctx context.Context, airports []domain.Airport) error
	InvalidateAirports(ctx context.Context) error
	GetAirplanes(ctx context.Context) ([]domain.Airplane, error)
	SetAirplanes(ctx context.Context, airplanes []domain.Airplane) error
	InvalidateAirplanes(ctx context.Context) error
}

type FleetService struct {
	airports  repository.AirportRepository
	airplanes repository.AirplaneRepository
	cache     Cache
}

func NewFleetService(airports repository.AirportRepository, airplanes repository.AirplaneRepository, cache Cache) *FleetService {
	return &FleetService{airports: airports, airplanes: airplanes, cache: cache}
}

func (s *FleetService) ListAirports(ctx context.Context) ([]domain.Airport, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirports(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	airports, err := s.airports.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetAirports(ctx, airports)
	}
	return airports, nil
}

// FindAirports matches query against identifiers and names case-insensitively.
// Exact matches come first, then substring matches.
func (s *FleetService) FindAirports(ctx context.Context, query string) ([]domain.Airport, error) {
	airports, err := s.ListAirports(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(query))
	if search == "" {
		return airports, nil
	}

	var exact, partial []domain.Airport
	for _, a := range airports {
		ident, name := strings.ToLower(a.Identifier), strings.ToLower(a.Name)
		switch {
		case ident == search || name == search:
			exact = append(exact, a)
		case strings.Contains(ident, search) || strings.Contains(name, search):
			partial = append(partial, a)
		}
	}
	return append(append(make([]domain.Airport, 0, len(exact)+len(partial)), exact...), partial...), nil
}

func (s *FleetService) GetAirport(ctx context.Context, identifier string) (*domain.Airport, error) {
	return s.airports.GetByIdentifier(ctx, identifier)
}

func (s *FleetService) AddAirport(ctx context.Context, airport domain.Airport) (*domain.Airport, error) {
	normalized, err := normalizeAirport(airport)
	if err != nil {
		return nil, err
	}
	if err := s.airports.Create(ctx, normalized); err != nil {
		return nil, err
	}
	s.invalidateAirports(ctx)
	return &normalized, nil
}

func (s *FleetService) EditAirport(ctx context.Context, identifier string, airport domain.Airport) (*domain.Airport, error) {
	normalized, err := normalizeAirport(airport)
	if err != nil {
		return nil, err
	}
	if err := s.airports.Update(ctx, identifier, normalized); err != nil {
		return nil, err
	}
	s.invalidateAirports(ctx)
	return &normalized, nil
}

func (s *FleetService) DeleteAirport(ctx context.Context, identifier string) error {
	if err := s.airports.Delete(ctx, identifier); err != nil {
		return err
	}
	s.invalidateAirports(ctx)
	return nil
}

func (s *FleetService) ListAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirplanes(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	airplanes, err := s.airplanes.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetAirplanes(ctx, airplanes)
	}
	return airplanes, nil
}

func (s *FleetService) GetAirplane(ctx context.Context, key int) (*domain.Airplane, error) {
	return s.airplanes.GetByKey(ctx, key)
}

func (s *FleetService) AddAirplane(ctx context.Context, airplane domain.Airplane) (*domain.Airplane, error) {
	normalized := domain.NewAirplane(airplane.Key, strings.TrimSpace(airplane.MakeAndModel), airplane.Type,
		airplane.TankCapacity, airplane.BurnRate, airplane.Airspeed)
	if err := normalized.Validate(); err != nil {
		return nil, err
	}
	if err := s.airplanes.Create(ctx, normalized); err != nil {
		return nil, err
	}
	s.invalidateAirplanes(ctx)
	return &normalized, nil
}

func (s *FleetService) DeleteAirplane(ctx context.Context, key int) error {
	if err := s.airplanes.Delete(ctx, key); err != nil {
		return err
	}
	s.invalidateAirplanes(ctx)
	return nil
}

// Refresh reloads both catalogues from storage into the cache.
func (s *FleetService) Refresh(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	airports, err := s.airports.List(ctx)
	if err != nil {
		return fmt.Errorf("refresh airports: %w", err)
	}
	airplanes, err := s.airplanes.List(ctx)
	if err != nil {
		return fmt.Errorf("refresh airplanes: %w", err)
	}
	if err := s.cache.SetAirports(ctx, airports); err != nil {
		return fmt.Errorf("cache airports: %w", err)
	}
	if err := s.cache.SetAirplanes(ctx, airplanes); err != nil {
		return fmt.Errorf("cache airplanes: %w", err)
	}
	slog.Debug("catalogue cache refreshed", "airports", len(airports), "airplanes", len(airplanes))
	return nil
}

func (s *FleetService) invalidateAirports(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAirports(ctx); err != nil {
		slog.Warn("invalidate airport cache", "error", err)
	}
}

func (s *FleetService) invalidateAirplanes(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAirplanes(ctx); err != nil {
		slog.Warn("invalidate airplane cache", "error", err)
	}
}

// normalizeAirport upper-cases the identifier, canonicalises fuel tags and rounds values.
func normalizeAirport(a domain.Airport) (domain.Airport, error) {
	fuels := make([]string, 0, len(a.FuelTypes))
	for _, f := range a.FuelTypes {
		if canon, ok := domain.CanonicalFuel(f); ok {
			f = canon
		}
		if !slices.Contains(fuels, f) {
			fuels = append(fuels, f)
		}
	}
	n := domain.NewAirport(strings.ToUpper(strings.TrimSpace(a.Identifier)), strings.TrimSpace(a.Name),
		a.Latitude, a.Longitude, a.Frequencies, fuels)
	if err := n.Validate(); err != nil {
		return domain.Airport{}, err
	}
	return n, nil
}

var (
	_ AirportUseCase  = (*FleetService)(nil)
	_ AirplaneUseCase = (*FleetService)(nil)
)
