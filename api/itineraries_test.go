package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Domenick1991/flightplanner/internal/cache"
	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/Domenick1991/flightplanner/internal/routing"
	"github.com/Domenick1991/flightplanner/internal/service/planner"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestItineraryHandler_plan(t *testing.T) {
	mockService := &MockPlanner{}
	handler := NewItineraryHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/itineraries", strings.NewReader(`{"airplane_key":0,"waypoints":["KSEA","KPDX"]}`))

	it := &domain.Itinerary{ID: "abc", Waypoints: []string{"KSEA", "KPDX"}, Report: "Flight Plan:\n\n"}
	mockService.On("Plan", c.Request.Context(), planner.PlanInput{AirplaneKey: 0, Waypoints: []string{"KSEA", "KPDX"}}).Return(it, nil)

	handler.plan(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"report":"Flight Plan:\n\n"`)
	mockService.AssertExpectations(t)
}

func TestItineraryHandler_planErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"unreachable", &routing.UnreachableError{From: "Seattle", To: "Honolulu"}, http.StatusUnprocessableEntity},
		{"not applicable", routing.ErrSameEndpoints, http.StatusUnprocessableEntity},
		{"too few waypoints", routing.ErrTooFewWaypoints, http.StatusUnprocessableEntity},
		{"unknown airport", fmt.Errorf("waypoint ZZZZ: %w", domain.ErrAirportNotFound), http.StatusNotFound},
		{"unknown airplane", domain.ErrAirplaneNotFound, http.StatusNotFound},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockPlanner{}
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/api/itineraries", strings.NewReader(`{"airplane_key":1,"waypoints":["KSEA","PHNL"]}`))
			mockService.On("Plan", c.Request.Context(), mock.Anything).Return(nil, tc.err)

			NewItineraryHandler(mockService).plan(c)

			assert.Equal(t, tc.code, w.Code)
			assert.Contains(t, w.Body.String(), tc.err.Error())
		})
	}
}

func TestItineraryHandler_planMissingAirplane(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/itineraries", strings.NewReader(`{"waypoints":["KSEA","KPDX"]}`))

	NewItineraryHandler(&MockPlanner{}).plan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestItineraryHandler_get(t *testing.T) {
	mockService := &MockPlanner{}
	handler := NewItineraryHandler(mockService)
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Request = httptest.NewRequest("GET", "/api/itineraries/abc", nil)
	mockService.On("GetItinerary", c.Request.Context(), "abc").Return(&domain.Itinerary{ID: "abc"}, nil)
	handler.get(c)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "gone"}}
	c.Request = httptest.NewRequest("GET", "/api/itineraries/gone", nil)
	mockService.On("GetItinerary", c.Request.Context(), "gone").Return(nil, cache.ErrItineraryNotFound)
	handler.get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
