// Package flatfile keeps the airport and airplane catalogues in line-oriented
// CSV files. A load that cannot read the main file falls back to the ".tmp"
// copy written before every save.
package flatfile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Domenick1991/flightplanner/internal/domain"
)

const (
	airportFields  = 6
	airplaneFields = 6
)

func encodeAirport(a domain.Airport) []string {
	names := make([]string, 0, len(a.Frequencies))
	for name := range a.Frequencies {
		names = append(names, name)
	}
	sort.Strings(names)
	freqs := make([]string, 0, len(names))
	for _, name := range names {
		freqs = append(freqs, name+":"+strconv.FormatFloat(a.Frequencies[name], 'f', -1, 64))
	}
	return []string{
		a.Identifier,
		a.Name,
		strconv.FormatFloat(a.Latitude, 'f', -1, 64),
		strconv.FormatFloat(a.Longitude, 'f', -1, 64),
		strings.Join(freqs, ";"),
		strings.Join(a.FuelTypes, ";"),
	}
}

func decodeAirport(rec []string) (domain.Airport, error) {
	if len(rec) < airportFields {
		return domain.Airport{}, fmt.Errorf("airport record has %d fields, want %d", len(rec), airportFields)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("longitude: %w", err)
	}

	freqs := make(map[string]float64)
	raw := strings.NewReplacer("{", "", "}", "").Replace(strings.TrimSpace(rec[4]))
	for _, pair := range strings.Split(raw, ";") {
		name, value, ok := strings.Cut(pair, ":")
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return domain.Airport{}, fmt.Errorf("frequency %s: %w", strings.TrimSpace(name), err)
		}
		freqs[strings.TrimSpace(name)] = v
	}

	var fuels []string
	for _, f := range strings.Split(rec[5], ";") {
		if f = strings.TrimSpace(f); f != "" {
			fuels = append(fuels, f)
		}
	}

	return domain.NewAirport(strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1]), lat, lon, freqs, fuels), nil
}

func encodeAirplane(p domain.Airplane) []string {
	return []string{
		strconv.Itoa(p.Key),
		p.MakeAndModel,
		strconv.Itoa(int(p.Type)),
		strconv.FormatFloat(p.TankCapacity, 'f', -1, 64),
		strconv.FormatFloat(p.BurnRate, 'f', -1, 64),
		strconv.FormatFloat(p.Airspeed, 'f', -1, 64),
	}
}

func decodeAirplane(rec []string) (domain.Airplane, error) {
	if len(rec) < airplaneFields {
		return domain.Airplane{}, fmt.Errorf("airplane record has %d fields, want %d", len(rec), airplaneFields)
	}
	key, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("key: %w", err)
	}
	typ, err := strconv.Atoi(strings.TrimSpace(rec[2]))
	if err != nil {
		return domain.Airplane{}, fmt.Errorf("type: %w", err)
	}
	nums := make([]float64, 3)
	for i, field := range rec[3:6] {
		if nums[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
			return domain.Airplane{}, fmt.Errorf("field %d: %w", i+4, err)
		}
	}
	return domain.NewAirplane(key, strings.TrimSpace(rec[1]), domain.AirplaneType(typ), nums[0], nums[1], nums[2]), nil
}
