package api

import (
	"net/http"

	"github.com/Domenick1991/flightplanner/internal/service/planner"
	"github.com/gin-gonic/gin"
)

type ItineraryHandler struct {
	service planner.PlanningUseCase
}

type planRequest struct {
	AirplaneKey *int     `json:"airplane_key"`
	Waypoints   []string `json:"waypoints"`
}

func NewItineraryHandler(service planner.PlanningUseCase) *ItineraryHandler {
	return &ItineraryHandler{service: service}
}

// Register mounts the routes; extra handlers (e.g. a rate limiter) run before planning.
func (h *ItineraryHandler) Register(router *gin.RouterGroup, planMiddleware ...gin.HandlerFunc) {
	router.POST("", append(planMiddleware, h.plan)...)
	router.GET("/:id", h.get)
}

func (h *ItineraryHandler) plan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AirplaneKey == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "airplane_key is required"})
		return
	}
	it, err := h.service.Plan(c.Request.Context(), planner.PlanInput{AirplaneKey: *req.AirplaneKey, Waypoints: req.Waypoints})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

func (h *ItineraryHandler) get(c *gin.Context) {
	it, err := h.service.GetItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}
