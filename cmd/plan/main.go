// Command plan prints a flight plan for one airplane over a list of waypoint
// identifiers, reading the catalogue from flat files.
//
//	plan -airplane 0 KSEA KPDX KSFO
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Domenick1991/flightplanner/internal/flatfile"
	"github.com/Domenick1991/flightplanner/internal/logging"
	"github.com/Domenick1991/flightplanner/internal/service/fleet"
	"github.com/Domenick1991/flightplanner/internal/service/planner"
)

func main() {
	airportsFile := flag.String("airports", "Airports.csv", "airports file")
	airplanesFile := flag.String("airplanes", "Airplanes.csv", "airplanes file")
	airplaneKey := flag.Int("airplane", 0, "airplane key")
	timeout := flag.Duration("timeout", 10*time.Second, "search timeout")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logging.Setup(*logLevel, "text")

	airports, err := flatfile.OpenAirports(*airportsFile, flatfile.DefaultWriteAttempts, 0)
	if err != nil {
		log.Fatalf("open airports file: %v", err)
	}
	airplanes, err := flatfile.OpenAirplanes(*airplanesFile, flatfile.DefaultWriteAttempts, 0)
	if err != nil {
		log.Fatalf("open airplanes file: %v", err)
	}

	service := planner.NewPlanningService(fleet.NewFleetService(airports, airplanes, nil), *timeout)
	it, err := service.Plan(context.Background(), planner.PlanInput{AirplaneKey: *airplaneKey, Waypoints: flag.Args()})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Print(it.Report)
	fmt.Printf("Total Distance: %.2f Nautical Miles\nTotal Time: %.2f Hours\n", it.TotalDistance, it.TotalHours)
}
