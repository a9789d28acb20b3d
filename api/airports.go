package api

import (
	"net/http"

	"github.com/Domenick1991/flightplanner/internal/domain"
	"github.com/Domenick1991/flightplanner/internal/service/fleet"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service fleet.AirportUseCase
}

type airportRequest struct {
	Identifier  string             `json:"identifier"`
	Name        string             `json:"name"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	Frequencies map[string]float64 `json:"frequencies"`
	FuelTypes   []string           `json:"fuel_types"`
}

func (r airportRequest) toDomain() domain.Airport {
	return domain.Airport{
		Identifier:  r.Identifier,
		Name:        r.Name,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Frequencies: r.Frequencies,
		FuelTypes:   r.FuelTypes,
	}
}

type airportResponse struct {
	domain.Airport
	Display string `json:"display"`
}

func NewAirportHandler(service fleet.AirportUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

// list returns the catalogue, or search results when q is set.
func (h *AirportHandler) list(c *gin.Context) {
	var (
		airports []domain.Airport
		err      error
	)
	if q := c.Query("q"); q != "" {
		airports, err = h.service.FindAirports(c.Request.Context(), q)
	} else {
		airports, err = h.service.ListAirports(c.Request.Context())
	}
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]airportResponse, 0, len(airports))
	for _, a := range airports {
		out = append(out, airportResponse{Airport: a, Display: a.DisplayInfo()})
	}
	c.JSON(http.StatusOK, out)
}

func (h *AirportHandler) get(c *gin.Context) {
	airport, err := h.service.GetAirport(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airportResponse{Airport: *airport, Display: airport.DisplayInfo()})
}

func (h *AirportHandler) create(c *gin.Context) {
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airport, err := h.service.AddAirport(c.Request.Context(), req.toDomain())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airportResponse{Airport: *airport, Display: airport.DisplayInfo()})
}

func (h *AirportHandler) update(c *gin.Context) {
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	airport, err := h.service.EditAirport(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airportResponse{Airport: *airport, Display: airport.DisplayInfo()})
}

func (h *AirportHandler) delete(c *gin.Context) {
	if err := h.service.DeleteAirport(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
