package flatfile

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/Domenick1991/flightplanner/internal/repository"
)

// AirplaneStore is an AirplaneRepository over a flat file.
type AirplaneStore struct {
	mu        sync.Mutex
	files     fileSet
	airplanes []domain.Airplane
}

func OpenAirplanes(path string, attempts int, backoff time.Duration) (*AirplaneStore, error) {
	s := &AirplaneStore{files: fileSet{path: path, attempts: attempts, backoff: backoff}}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *AirplaneStore) List(ctx context.Context) ([]domain.Airplane, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
	return slices.Clone(s.airplanes), nil
}

func (s *AirplaneStore) GetByKey(ctx context.Context, key int) (*domain.Airplane, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
	i := s.indexOf(key)
	if i < 0 {
		return nil, domain.ErrAirplaneNotFound
	}
	p := s.airplanes[i]
	return &p, nil
}

func (s *AirplaneStore) Create(ctx context.Context, airplane domain.Airplane) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
	if s.indexOf(airplane.Key) >= 0 {
		return domain.ErrAlreadyExists
	}
	return s.commit(ctx, append(slices.Clone(s.airplanes), airplane))
}

func (s *AirplaneStore) Delete(ctx context.Context, key int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync()
	i := s.indexOf(key)
	if i < 0 {
		return domain.ErrAirplaneNotFound
	}
	return s.commit(ctx, slices.Delete(slices.Clone(s.airplanes), i, i+1))
}

func (s *AirplaneStore) indexOf(key int) int {
	for i, p := range s.airplanes {
		if p.Key == key {
			return i
		}
	}
	return -1
}

func (s *AirplaneStore) load() error {
	recs, err := s.files.readRecords()
	if err != nil {
		return err
	}
	airplanes := make([]domain.Airplane, 0, len(recs))
	for i, rec := range recs {
		p, err := decodeAirplane(rec)
		if err != nil {
			slog.Warn("skipping airplane record", "path", s.files.path, "line", i+1, "error", err)
			continue
		}
		airplanes = append(airplanes, p)
	}
	s.airplanes = airplanes
	return nil
}

func (s *AirplaneStore) sync() {
	if !s.files.stale() {
		return
	}
	if err := s.load(); err != nil {
		slog.Warn("reload airplanes failed, serving last good copy", "path", s.files.path, "error", err)
	}
}

func (s *AirplaneStore) commit(ctx context.Context, next []domain.Airplane) error {
	recs := make([][]string, 0, len(next))
	for _, p := range next {
		recs = append(recs, encodeAirplane(p))
	}
	if err := s.files.writeRecords(ctx, recs); err != nil {
		return fmt.Errorf("save airplanes: %w", err)
	}
	s.airplanes = next
	return nil
}

var _ repository.AirplaneRepository = (*AirplaneStore)(nil)
