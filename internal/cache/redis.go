package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/flightplanner/config"
	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/Domenick1991/flightplanner/internal/metrics"
	"github.com/redis/go-redis/v9"
)

// ErrItineraryNotFound is returned for unknown or expired itinerary IDs.
var ErrItineraryNotFound = errors.New("itinerary not found")

type RedisCache struct {
	client       redis.Cmdable
	catalogueTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client:       redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		catalogueTTL: cfg.CatalogueTTL(),
	}
}

// NewWithClient wraps an existing client, e.g. a cluster client or a test double.
func NewWithClient(client redis.Cmdable, catalogueTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, catalogueTTL: catalogueTTL}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) GetAirports(ctx context.Context) ([]domain.Airport, error) {
	var airports []domain.Airport
	ok, err := c.getJSON(ctx, airportsKey(), &airports)
	if err != nil || !ok {
		return nil, err
	}
	return airports, nil
}

func (c *RedisCache) SetAirports(ctx context.Context, airports []domain.Airport) error {
	return c.setJSON(ctx, airportsKey(), airports, c.catalogueTTL)
}

func (c *RedisCache) InvalidateAirports(ctx context.Context) error {
	return c.client.Del(ctx, airportsKey()).Err()
}

func (c *RedisCache) GetAirplanes(ctx context.Context) ([]domain.Airplane, error) {
	var airplanes []domain.Airplane
	ok, err := c.getJSON(ctx, airplanesKey(), &airplanes)
	if err != nil || !ok {
		return nil, err
	}
	return airplanes, nil
}

func (c *RedisCache) SetAirplanes(ctx context.Context, airplanes []domain.Airplane) error {
	return c.setJSON(ctx, airplanesKey(), airplanes, c.catalogueTTL)
}

func (c *RedisCache) InvalidateAirplanes(ctx context.Context) error {
	return c.client.Del(ctx, airplanesKey()).Err()
}

func (c *RedisCache) SaveItinerary(ctx context.Context, it *domain.Itinerary, ttl time.Duration) error {
	return c.setJSON(ctx, itineraryKey(it.ID), it, ttl)
}

func (c *RedisCache) GetItinerary(ctx context.Context, id string) (*domain.Itinerary, error) {
	var it domain.Itinerary
	ok, err := c.getJSON(ctx, itineraryKey(id), &it)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrItineraryNotFound
	}
	return &it, nil
}

// getJSON reports false on a miss.
func (c *RedisCache) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.CacheMisses.WithLabelValues(labelFor(key)).Inc()
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	metrics.CacheHits.WithLabelValues(labelFor(key)).Inc()
	return true, nil
}

func (c *RedisCache) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

func airportsKey() string {
	return "cache:airports"
}

func airplanesKey() string {
	return "cache:airplanes"
}

func itineraryKey(id string) string {
	return fmt.Sprintf("itinerary:%s", id)
}

func labelFor(key string) string {
	if strings.HasPrefix(key, "itinerary:") {
		return "itinerary"
	}
	return key
}
