package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightplanner/api"
	"github.com/Domenick1991/flightplanner/config"
	"github.com/Domenick1991/flightplanner/internal/bootstrap"
	"github.com/Domenick1991/flightplanner/internal/cache"
	"github.com/Domenick1991/flightplanner/internal/flatfile"
	"github.com/Domenick1991/flightplanner/internal/kafka"
	"github.com/Domenick1991/flightplanner/internal/logging"
	"github.com/Domenick1991/flightplanner/internal/repository"
	"github.com/Domenick1991/flightplanner/internal/service/fleet"
	"github.com/Domenick1991/flightplanner/internal/service/planner"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]bootstrap.Check{}

	var (
		airportRepo  repository.AirportRepository
		airplaneRepo repository.AirplaneRepository
	)
	switch cfg.Storage.Driver {
	case config.StorageDriverFile:
		backoff := 100 * time.Millisecond
		airports, err := flatfile.OpenAirports(cfg.Storage.AirportsFile, cfg.Storage.WriteAttempts, backoff)
		if err != nil {
			log.Fatalf("open airports file: %v", err)
		}
		airplanes, err := flatfile.OpenAirplanes(cfg.Storage.AirplanesFile, cfg.Storage.WriteAttempts, backoff)
		if err != nil {
			log.Fatalf("open airplanes file: %v", err)
		}
		airportRepo, airplaneRepo = airports, airplanes
	default:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		checks["postgres"] = pool.Ping
		airportRepo = repository.NewAirportRepository(pool)
		airplaneRepo = repository.NewAirplaneRepository(pool)
	}

	redisCache := cache.NewRedisCache(cfg.Redis)
	checks["redis"] = redisCache.Ping

	fleetService := fleet.NewFleetService(airportRepo, airplaneRepo, redisCache)

	opts := []planner.Option{planner.WithStore(redisCache, cfg.Planner.ItineraryTTL())}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			slog.Warn("kafka unavailable, itinerary events may be dropped", "error", err)
		}
		opts = append(opts, planner.WithEvents(producer, cfg.Kafka.ItineraryTopic, cfg.Kafka.PublishRetries))
	}
	planningService := planner.NewPlanningService(fleetService, cfg.Planner.SearchTimeout(), opts...)

	router := api.NewRouter(fleetService, fleetService, planningService, api.RouterConfig{
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	})

	if err := bootstrap.Run(ctx, cfg, router, checks); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
