package flatfile

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/Domenick1991/flightplanner/internal/repository"
)

// AirportStore is an AirportRepository over a flat file. Every mutation
// rewrites the whole file and only takes effect in memory once the write
// succeeds. Changes made by other processes are picked up on the next call.
type AirportStore struct {
	mu       sync.Mutex
	files    fileSet
	airports []domain.Airport
}

func OpenAirports(path string, attempts int, backoff time.Duration) (*AirportStore, error) {
	s := &AirportStore{files: fileSet{path: path, attempts: attempts, backoff: backoff}}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *AirportStore) List(ctx context.Context) ([]domain.Airport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
	return slices.Clone(s.airports), nil
}

func (s *AirportStore) GetByIdentifier(ctx context.Context, identifier string) (*domain.Airport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
	i := s.indexOf(identifier)
	if i < 0 {
		return nil, domain.ErrAirportNotFound
	}
	a := s.airports[i]
	return &a, nil
}

func (s *AirportStore) Create(ctx context.Context, airport domain.Airport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
	if s.indexOf(airport.Identifier) >= 0 {
		return domain.ErrAlreadyExists
	}
	return s.commit(ctx, append(slices.Clone(s.airports), airport))
}

func (s *AirportStore) Update(ctx context.Context, identifier string, airport domain.Airport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
	i := s.indexOf(identifier)
	if i < 0 {
		return domain.ErrAirportNotFound
	}
	if j := s.indexOf(airport.Identifier); j >= 0 && j != i {
		return domain.ErrAlreadyExists
	}
	next := slices.Clone(s.airports)
	next[i] = airport
	return s.commit(ctx, next)
}

func (s *AirportStore) Delete(ctx context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
	i := s.indexOf(identifier)
	if i < 0 {
		return domain.ErrAirportNotFound
	}
	return s.commit(ctx, slices.Delete(slices.Clone(s.airports), i, i+1))
}

func (s *AirportStore) indexOf(identifier string) int {
	for i, a := range s.airports {
		if strings.EqualFold(a.Identifier, identifier) {
			return i
		}
	}
	return -1
}

func (s *AirportStore) load() error {
	recs, err := s.files.readRecords()
	if err != nil {
		return err
	}
	airports := make([]domain.Airport, 0, len(recs))
	for i, rec := range recs {
		a, err := decodeAirport(rec)
		if err != nil {
			slog.Warn("skipping airport record", "path", s.files.path, "line", i+1, "error", err)
			continue
		}
		airports = append(airports, a)
	}
	s.airports = airports
	return nil
}

// sync reloads the catalogue when another writer changed the file.
func (s *AirportStore) sync() {
	if !s.files.stale() {
		return
	}
	if err := s.load(); err != nil {
		slog.Warn("reload airports failed, serving last good copy", "path", s.files.path, "error", err)
	}
}

// commit writes next to disk and adopts it only on success.
func (s *AirportStore) commit(ctx context.Context, next []domain.Airport) error {
	recs := make([][]string, 0, len(next))
	for _, a := range next {
		recs = append(recs, encodeAirport(a))
	}
	if err := s.files.writeRecords(ctx, recs); err != nil {
		return fmt.Errorf("save airports: %w", err)
	}
	s.airports = next
	return nil
}

var _ repository.AirportRepository = (*AirportStore)(nil)
