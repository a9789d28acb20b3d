package routing

// FuelState classifies a leg against the fuel on board at departure.
type FuelState int

const (
	// HasEnough: the fuel on board covers the leg.
	HasEnough FuelState = iota
	// RefuelAvailable: the fuel on board is short but the far end sells the
	// required fuel and a full tank covers the leg.
	RefuelAvailable
	// Infeasible: the leg cannot be flown.
	Infeasible
)

func (s FuelState) String() string {
	switch s {
	case HasEnough:
		return "has-enough"
	case RefuelAvailable:
		return "needs-refuel-available"
	default:
		return "infeasible"
	}
}

// FuelTransition decides whether a leg needing required fuel can be flown with
// onBoard fuel and what the airplane arrives with. Landing where the required
// fuel is sold tops the tank up to capacity. Comparisons are exact: a leg that
// needs exactly the fuel on board is feasible and arrives with zero.
func FuelTransition(onBoard, required, capacity float64, destinationSellsFuel bool) (FuelState, float64) {
	state := HasEnough
	usable := onBoard
	if usable < required {
		if !destinationSellsFuel {
			return Infeasible, 0
		}
		usable = capacity
		if usable < required {
			return Infeasible, 0
		}
		state = RefuelAvailable
	}
	if destinationSellsFuel {
		return state, capacity
	}
	return state, usable - required
}
