// Command import copies the flat-file airport and airplane catalogues into PostgreSQL.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/Domenick1991/flightplanner/config"
	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/Domenick1991/flightplanner/internal/flatfile"
	"github.com/Domenick1991/flightplanner/internal/logging"
	"github.com/Domenick1991/flightplanner/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	airportsFile := flag.String("airports", "", "airports file (defaults to storage.airports_file)")
	airplanesFile := flag.String("airplanes", "", "airplanes file (defaults to storage.airplanes_file)")
	flag.Parse()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	if *airportsFile == "" {
		*airportsFile = cfg.Storage.AirportsFile
	}
	if *airplanesFile == "" {
		*airplanesFile = cfg.Storage.AirplanesFile
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	airports, err := flatfile.OpenAirports(*airportsFile, cfg.Storage.WriteAttempts, 0)
	if err != nil {
		log.Fatalf("open airports file: %v", err)
	}
	airplanes, err := flatfile.OpenAirplanes(*airplanesFile, cfg.Storage.WriteAttempts, 0)
	if err != nil {
		log.Fatalf("open airplanes file: %v", err)
	}

	airportRepo := repository.NewAirportRepository(pool)
	airplaneRepo := repository.NewAirplaneRepository(pool)

	list, _ := airports.List(ctx)
	imported, skipped := 0, 0
	for _, a := range list {
		if err := a.Validate(); err != nil {
			slog.Warn("skipping invalid airport", "identifier", a.Identifier, "error", err)
			skipped++
			continue
		}
		if err := airportRepo.Create(ctx, a); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				skipped++
				continue
			}
			log.Fatalf("import airport %s: %v", a.Identifier, err)
		}
		imported++
	}
	slog.Info("airports imported", "imported", imported, "skipped", skipped)

	planes, _ := airplanes.List(ctx)
	imported, skipped = 0, 0
	for _, p := range planes {
		if err := p.Validate(); err != nil {
			slog.Warn("skipping invalid airplane", "key", p.Key, "error", err)
			skipped++
			continue
		}
		if err := airplaneRepo.Create(ctx, p); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				skipped++
				continue
			}
			log.Fatalf("import airplane %d: %v", p.Key, err)
		}
		imported++
	}
	slog.Info("airplanes imported", "imported", imported, "skipped", skipped)
}
