package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/Domenick1991/flightplanner/internal/service/fleet"
	"github.com/gin-gonic/gin"
)

type AirplaneHandler struct {
	service fleet.AirplaneUseCase
}

type airplaneRequest struct {
	Key          *int    `json:"key"`
	MakeAndModel string  `json:"make_and_model"`
	Type         int     `json:"type"`
	TankCapacity float64 `json:"tank_capacity"`
	BurnRate     float64 `json:"burn_rate"`
	Airspeed     float64 `json:"airspeed"`
}

type airplaneResponse struct {
	domain.Airplane
	TypeName     string `json:"type_name"`
	RequiredFuel string `json:"required_fuel"`
	Display      string `json:"display"`
	// Range is omitted for airplanes that burn no fuel.
	Range *float64 `json:"range,omitempty"`
}

func newAirplaneResponse(p domain.Airplane) airplaneResponse {
	resp := airplaneResponse{Airplane: p, TypeName: p.Type.String(), RequiredFuel: p.RequiredFuel(), Display: p.DisplayInfo()}
	if r := p.Range(); !math.IsInf(r, 1) {
		resp.Range = &r
	}
	return resp
}

func NewAirplaneHandler(service fleet.AirplaneUseCase) *AirplaneHandler {
	return &AirplaneHandler{service: service}
}

func (h *AirplaneHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:key", h.get)
	router.POST("", h.create)
	router.DELETE("/:key", h.delete)
}

func (h *AirplaneHandler) list(c *gin.Context) {
	airplanes, err := h.service.ListAirplanes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]airplaneResponse, 0, len(airplanes))
	for _, p := range airplanes {
		out = append(out, newAirplaneResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *AirplaneHandler) get(c *gin.Context) {
	key, err := strconv.Atoi(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid key"})
		return
	}
	airplane, err := h.service.GetAirplane(c.Request.Context(), key)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAirplaneResponse(*airplane))
}

func (h *AirplaneHandler) create(c *gin.Context) {
	var req airplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Key == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}
	airplane, err := h.service.AddAirplane(c.Request.Context(), domain.Airplane{
		Key:          *req.Key,
		MakeAndModel: req.MakeAndModel,
		Type:         domain.AirplaneType(req.Type),
		TankCapacity: req.TankCapacity,
		BurnRate:     req.BurnRate,
		Airspeed:     req.Airspeed,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newAirplaneResponse(*airplane))
}

func (h *AirplaneHandler) delete(c *gin.Context) {
	key, err := strconv.Atoi(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid key"})
		return
	}
	if err := h.service.DeleteAirplane(c.Request.Context(), key); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
