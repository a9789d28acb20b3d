package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flightplanner",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "flightplanner",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path"})

	// Planning metrics
	ItinerariesPlanned = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flightplanner",
		Subsystem: "planner",
		Name:      "itineraries_total",
		Help:      "Itinerary planning attempts by outcome",
	}, []string{"outcome"})

	PlanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "flightplanner",
		Subsystem: "planner",
		Name:      "plan_duration_seconds",
		Help:      "Time spent planning one itinerary",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})

	LegsPerItinerary = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "flightplanner",
		Subsystem: "planner",
		Name:      "legs_per_itinerary",
		Help:      "Number of legs in successfully planned itineraries",
		Buckets:   prometheus.LinearBuckets(1, 2, 8),
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "flightplanner",
		Subsystem: "planner",
		Name:      "graph_edges",
		Help:      "Directed edges in the most recently built route graph",
	})

	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flightplanner",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Total cache hits",
	}, []string{"operation"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flightplanner",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Total cache misses",
	}, []string{"operation"})

	EventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flightplanner",
		Subsystem: "worker",
		Name:      "events_consumed_total",
		Help:      "Itinerary events handled by the worker",
	}, []string{"type"})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "flightplanner",
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the planning rate limiter",
	})
)

// Middleware records request metrics. Paths are the matched route pattern so
// identifiers do not blow up label cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// ObservePlan records the outcome of one planning attempt.
func ObservePlan(outcome string, legs int, elapsed time.Duration) {
	ItinerariesPlanned.WithLabelValues(outcome).Inc()
	PlanDuration.Observe(elapsed.Seconds())
	if outcome == OutcomePlanned {
		LegsPerItinerary.Observe(float64(legs))
	}
}

const (
	OutcomePlanned       = "planned"
	OutcomeNotApplicable = "not_applicable"
	OutcomeUnreachable   = "unreachable"
	OutcomeError         = "error"
)

// HTTPHandler serves the default registry.
func HTTPHandler() http.Handler {
	return promhttp.Handler()
}

// NewServer exposes /metrics on addr for processes without an API server.
func NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", HTTPHandler())
	return &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
}
