package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func scrape(t *testing.T) string {
	t.Helper()
	w := httptest.NewRecorder()
	HTTPHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/airports/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/airports/KSEA", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	body := scrape(t)
	assert.Contains(t, body, `flightplanner_http_requests_total{method="GET",path="/api/airports/:id",status="204"}`)
	assert.NotContains(t, body, "KSEA")
}

func TestObservePlan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ObservePlan(OutcomePlanned, 3, time.Millisecond)
	ObservePlan(OutcomeUnreachable, 0, time.Millisecond)

	body := scrape(t)
	assert.Contains(t, body, `flightplanner_planner_itineraries_total{outcome="planned"}`)
	assert.Contains(t, body, `flightplanner_planner_itineraries_total{outcome="unreachable"}`)
	assert.Contains(t, body, "flightplanner_planner_legs_per_itinerary_count 1")
}

func TestNewServer_ExposesWorkerCounters(t *testing.T) {
	EventsConsumed.WithLabelValues("itinerary_planned").Inc()

	srv := NewServer(":0")
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `flightplanner_worker_events_consumed_total{type="itinerary_planned"}`)

	w = httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
