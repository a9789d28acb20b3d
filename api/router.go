package api

import (
	"github.com/Domenick1991/flightplanner/internal/metrics"
	"github.com/Domenick1991/flightplanner/internal/service/fleet"
	"github.com/Domenick1991/flightplanner/internal/service/planner"
	"github.com/gin-gonic/gin"
)

// RouterConfig tunes the router. RateLimitRPS 0 leaves /api/itineraries unthrottled.
type RouterConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter builds the REST surface mounted under /api.
func NewRouter(airports fleet.AirportUseCase, airplanes fleet.AirplaneUseCase, plans planner.PlanningUseCase, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), metrics.Middleware())

	group := r.Group("/api")
	NewAirportHandler(airports).Register(group.Group("/airports"))
	NewAirplaneHandler(airplanes).Register(group.Group("/airplanes"))

	var limit []gin.HandlerFunc
	if cfg.RateLimitRPS > 0 {
		limit = append(limit, RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}
	NewItineraryHandler(plans).Register(group.Group("/itineraries"), limit...)

	return r
}
