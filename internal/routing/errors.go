package routing

import (
	"errors"
	"fmt"
)

var (
	// ErrNotApplicable marks a request whose inputs make a search meaningless.
	ErrNotApplicable = errors.New("route not applicable")

	ErrSameEndpoints       = fmt.Errorf("%w: origin and destination are the same", ErrNotApplicable)
	ErrInvalidAirspeed     = fmt.Errorf("%w: airspeed is not greater than 0", ErrNotApplicable)
	ErrInvalidTankCapacity = fmt.Errorf("%w: tank capacity is not greater than 0", ErrNotApplicable)

	ErrTooFewWaypoints = errors.New("an itinerary needs at least two waypoints")
	ErrNoRoute         = errors.New("no route found")
)

// UnreachableError names the leg for which no fuel-feasible route exists.
type UnreachableError struct {
	From string
	To   string
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("flight plan not possible between %s and %s", e.From, e.To)
}

func (e *UnreachableError) Unwrap() error {
	return ErrNoRoute
}
