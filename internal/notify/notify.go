package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Domenick1991/flightplanner/internal/kafka"
)

// Sender turns itinerary events into human-readable notifications.
type Sender struct {
	out io.Writer
}

func NewSender(out io.Writer) *Sender {
	if out == nil {
		out = os.Stdout
	}
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, event kafka.ItineraryEvent) error {
	route := strings.Join(event.Waypoints, " -> ")
	var line string
	switch event.Type {
	case kafka.EventItineraryPlanned:
		line = fmt.Sprintf("itinerary %s planned for airplane %d: %s, %d legs, %.2f NM\n",
			event.ItineraryID, event.AirplaneKey, route, event.Legs, event.TotalDistance)
	case kafka.EventItineraryFailed:
		line = fmt.Sprintf("itinerary for airplane %d over %s failed: %s\n", event.AirplaneKey, route, event.Reason)
	default:
		slog.Warn("ignoring unknown event type", "type", event.Type)
		return nil
	}
	_, err := io.WriteString(s.out, line)
	return err
}
