package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Domenick1991/flightplanner/internal/cache"
	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/Domenick1991/flightplanner/internal/routing"
	"github.com/Domenick1991/flightplanner/internal/service/planner"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAirportNotFound),
		errors.Is(err, domain.ErrAirplaneNotFound),
		errors.Is(err, cache.ErrItineraryNotFound),
		errors.Is(err, planner.ErrItinerariesDisabled):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, routing.ErrNotApplicable),
		errors.Is(err, routing.ErrNoRoute),
		errors.Is(err, routing.ErrTooFewWaypoints):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		body["fields"] = verr.Fields
	}
	c.JSON(statusFor(err), body)
}
