package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverFile     = "file"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Storage   StorageConfig   `yaml:"storage"`
	Planner   PlannerConfig   `yaml:"planner"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Worker    WorkerConfig    `yaml:"worker"`
	Log       LogConfig       `yaml:"log"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
	// SwaggerDir holds the OpenAPI document served under /swagger/ for the /docs/ UI.
	SwaggerDir string `yaml:"swagger_dir"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	// CatalogueTTLSeconds bounds how long cached airport and airplane lists live.
	CatalogueTTLSeconds int `yaml:"catalogue_ttl_seconds"`
}

func (r RedisConfig) CatalogueTTL() time.Duration {
	return time.Duration(r.CatalogueTTLSeconds) * time.Second
}

type KafkaConfig struct {
	Brokers        []string `yaml:"brokers"`
	ItineraryTopic string   `yaml:"itinerary_topic"`
	GroupID        string   `yaml:"group_id"`
	PublishRetries int      `yaml:"publish_retries"`
}

type StorageConfig struct {
	Driver        string `yaml:"driver"`
	AirportsFile  string `yaml:"airports_file"`
	AirplanesFile string `yaml:"airplanes_file"`
	WriteAttempts int    `yaml:"write_attempts"`
}

type PlannerConfig struct {
	SearchTimeoutSeconds int `yaml:"search_timeout_seconds"`
	ItineraryTTLMinutes  int `yaml:"itinerary_ttl_minutes"`
}

func (p PlannerConfig) SearchTimeout() time.Duration {
	return time.Duration(p.SearchTimeoutSeconds) * time.Second
}

func (p PlannerConfig) ItineraryTTL() time.Duration {
	return time.Duration(p.ItineraryTTLMinutes) * time.Minute
}

// RateLimitConfig throttles /api per client IP. RPS 0 disables the limiter.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type WorkerConfig struct {
	CacheRefreshMinutes int `yaml:"cache_refresh_minutes"`
	// MetricsAddress is where the worker serves /metrics; empty turns it off.
	MetricsAddress string `yaml:"metrics_address"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used for every key the file leaves out.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{Address: ":8080"},
		GRPC: GRPCConfig{Address: ":9090"},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			Name:    "flightplanner",
			SSLMode: "disable",
		},
		Redis: RedisConfig{Addr: "localhost:6379", CatalogueTTLSeconds: 60},
		Kafka: KafkaConfig{
			Brokers:        []string{"localhost:9092"},
			ItineraryTopic: "itinerary_events",
			GroupID:        "flightplanner-worker",
			PublishRetries: 3,
		},
		Storage: StorageConfig{
			Driver:        StorageDriverPostgres,
			AirportsFile:  "Airports.csv",
			AirplanesFile: "Airplanes.csv",
			WriteAttempts: 3,
		},
		Planner:   PlannerConfig{SearchTimeoutSeconds: 10, ItineraryTTLMinutes: 60},
		RateLimit: RateLimitConfig{RPS: 5, Burst: 10},
		Worker:    WorkerConfig{CacheRefreshMinutes: 5, MetricsAddress: ":9101"},
		Log:       LogConfig{Level: "info", Format: "json"},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Address == "" {
		errs = append(errs, errors.New("http.address is required"))
	}
	if c.GRPC.Address == "" {
		errs = append(errs, errors.New("grpc.address is required"))
	}
	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			errs = append(errs, errors.New("database.host and database.name are required for the postgres driver"))
		}
	case StorageDriverFile:
		if c.Storage.AirportsFile == "" || c.Storage.AirplanesFile == "" {
			errs = append(errs, errors.New("storage.airports_file and storage.airplanes_file are required for the file driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q must be %q or %q", c.Storage.Driver, StorageDriverPostgres, StorageDriverFile))
	}
	if c.Storage.WriteAttempts < 1 {
		errs = append(errs, errors.New("storage.write_attempts must be at least 1"))
	}
	if c.Planner.SearchTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("planner.search_timeout_seconds must be positive"))
	}
	if c.Planner.ItineraryTTLMinutes <= 0 {
		errs = append(errs, errors.New("planner.itinerary_ttl_minutes must be positive"))
	}
	if c.RateLimit.RPS < 0 {
		errs = append(errs, errors.New("rate_limit.rps must not be negative"))
	} else if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		errs = append(errs, errors.New("rate_limit.burst must be at least 1 when rate_limit.rps is set"))
	}
	if c.Worker.CacheRefreshMinutes <= 0 {
		errs = append(errs, errors.New("worker.cache_refresh_minutes must be positive"))
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.ItineraryTopic == "" {
		errs = append(errs, errors.New("kafka.itinerary_topic is required when brokers are set"))
	}
	return errors.Join(errs...)
}
