package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type AirplaneType int

const (
	AirplaneJet       AirplaneType = 1
	AirplaneTurboprop AirplaneType = 2
	AirplaneProp      AirplaneType = 3
)

func (t AirplaneType) String() string {
	switch t {
	case AirplaneJet:
		return "Jet"
	case AirplaneTurboprop:
		return "Turboprop"
	case AirplaneProp:
		return "Prop plane"
	default:
		return "Unknown Type of Plane"
	}
}

// RequiredFuel is the fuel tag an airplane of this type must find to refuel.
func (t AirplaneType) RequiredFuel() string {
	if t == AirplaneProp {
		return FuelAvgas
	}
	return FuelJetA
}

// Airplane is a fleet record. TankCapacity is in fuel units, BurnRate in units
// per hour and Airspeed in distance units per hour.
type Airplane struct {
	Key          int          `json:"key"`
	MakeAndModel string       `json:"make_and_model"`
	Type         AirplaneType `json:"type"`
	TankCapacity float64      `json:"tank_capacity"`
	BurnRate     float64      `json:"burn_rate"`
	Airspeed     float64      `json:"airspeed"`
}

func NewAirplane(key int, makeAndModel string, typ AirplaneType, tank, burn, airspeed float64) Airplane {
	return Airplane{
		Key:          key,
		MakeAndModel: makeAndModel,
		Type:         typ,
		TankCapacity: round(tank, 10000),
		BurnRate:     round(burn, 10000),
		Airspeed:     round(airspeed, 10000),
	}
}

func (p Airplane) RequiredFuel() string {
	return p.Type.RequiredFuel()
}

// Range is the distance a full tank covers without refuelling.
func (p Airplane) Range() float64 {
	if p.BurnRate <= 0 {
		return math.Inf(1)
	}
	return p.TankCapacity / p.BurnRate * p.Airspeed
}

func (p Airplane) DisplayInfo() string {
	return fmt.Sprintf("Key: %d, Make and Model: %s, Type: %s, Tank Size: %s Gallons, Fuel Burn Rate: %s G/h, Airspeed: %s Knots",
		p.Key, p.MakeAndModel, p.Type, formatFloat(p.TankCapacity), formatFloat(p.BurnRate), formatFloat(p.Airspeed))
}

func (p Airplane) Validate() error {
	verr := &ValidationError{}
	if p.Key < 0 {
		verr.add("key", "must not be negative")
	}
	if strings.TrimSpace(p.MakeAndModel) == "" {
		verr.add("make_and_model", "is required")
	}
	if p.Type < AirplaneJet || p.Type > AirplaneProp {
		verr.add("type", "must be 1 (Jet), 2 (Turboprop) or 3 (Prop)")
	}
	if p.TankCapacity <= 0 {
		verr.add("tank_capacity", "must be greater than 0")
	}
	if p.BurnRate < 0 {
		verr.add("burn_rate", "must not be negative")
	}
	if p.Airspeed <= 0 {
		verr.add("airspeed", "must be greater than 0")
	}
	return verr.orNil()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
