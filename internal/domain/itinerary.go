package domain

import "time"

type Leg struct {
	From     string  `json:"from"`
	FromName string  `json:"from_name"`
	To       string  `json:"to"`
	ToName   string  `json:"to_name"`
	Distance float64 `json:"distance"`
	Heading  float64 `json:"heading"`
	Hours    float64 `json:"hours"`
}

type Itinerary struct {
	ID            string    `json:"id"`
	AirplaneKey   int       `json:"airplane_key"`
	Waypoints     []string  `json:"waypoints"`
	Legs          []Leg     `json:"legs"`
	TotalDistance float64   `json:"total_distance"`
	TotalHours    float64   `json:"total_hours"`
	Report        string    `json:"report"`
	CreatedAt     time.Time `json:"created_at"`
}
