package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightplanner/config"
	"github.com/Domenick1991/flightplanner/internal/cache"
	"github.com/Domenick1991/flightplanner/internal/flatfile"
	"github.com/Domenick1991/flightplanner/internal/kafka"
	"github.com/Domenick1991/flightplanner/internal/logging"
	"github.com/Domenick1991/flightplanner/internal/metrics"
	"github.com/Domenick1991/flightplanner/internal/notify"
	"github.com/Domenick1991/flightplanner/internal/repository"
	"github.com/Domenick1991/flightplanner/internal/service/fleet"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		airportRepo  repository.AirportRepository
		airplaneRepo repository.AirplaneRepository
	)
	if cfg.Storage.Driver == config.StorageDriverFile {
		airports, err := flatfile.OpenAirports(cfg.Storage.AirportsFile, cfg.Storage.WriteAttempts, 0)
		if err != nil {
			log.Fatalf("open airports file: %v", err)
		}
		airplanes, err := flatfile.OpenAirplanes(cfg.Storage.AirplanesFile, cfg.Storage.WriteAttempts, 0)
		if err != nil {
			log.Fatalf("open airplanes file: %v", err)
		}
		airportRepo, airplaneRepo = airports, airplanes
	} else {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		airportRepo = repository.NewAirportRepository(pool)
		airplaneRepo = repository.NewAirplaneRepository(pool)
	}

	fleetService := fleet.NewFleetService(airportRepo, airplaneRepo, cache.NewRedisCache(cfg.Redis))

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.ItineraryTopic)
	defer consumer.Close()

	sender := notify.NewSender(os.Stdout)

	if cfg.Worker.MetricsAddress != "" {
		metricsServer := metrics.NewServer(cfg.Worker.MetricsAddress)
		go func() {
			slog.Info("worker metrics listening", "address", cfg.Worker.MetricsAddress)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server stopped", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				slog.Warn("metrics server shutdown", "error", err)
			}
		}()
	}

	go func() {
		err := consumer.Consume(ctx, kafka.ItineraryHandler(func(ctx context.Context, event kafka.ItineraryEvent) error {
			metrics.EventsConsumed.WithLabelValues(event.Type).Inc()
			return sender.Send(ctx, event)
		}))
		if err != nil {
			slog.Error("consumer stopped", "error", err)
		}
	}()

	refresh := func() {
		if err := fleetService.Refresh(ctx); err != nil {
			slog.Warn("catalogue cache refresh failed", "error", err)
		}
	}
	refresh()

	refreshTicker := time.NewTicker(time.Duration(cfg.Worker.CacheRefreshMinutes) * time.Minute)
	defer refreshTicker.Stop()

	for {
		select {
		case <-refreshTicker.C:
			refresh()
		case <-ctx.Done():
			slog.Info("shutting down worker")
			return
		}
	}
}
