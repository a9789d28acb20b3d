package kafka

import "time"

const (
	EventItineraryPlanned = "itinerary_planned"
	EventItineraryFailed  = "itinerary_failed"
)

// ItineraryEvent is published once per planning attempt.
type ItineraryEvent struct {
	Type          string    `json:"type"`
	ItineraryID   string    `json:"itinerary_id,omitempty"`
	AirplaneKey   int       `json:"airplane_key"`
	Waypoints     []string  `json:"waypoints"`
	Legs          int       `json:"legs"`
	TotalDistance float64   `json:"total_distance"`
	Reason        string    `json:"reason,omitempty"`
	At            time.Time `json:"at"`
}
