package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"trip-planner/internal/api/errors"
	"trip-planner/internal/api/middleware"
	"trip-planner/internal/api/v1/dto"
	"trip-planner/internal/api/v1/services"
)

// GeoHandler handles geocoding, routing and nearby-place endpoints
type GeoHandler struct {
	service services.GeoService
}

// NewGeoHandler creates a new geo handler
func NewGeoHandler(service services.GeoService) *GeoHandler {
	return &GeoHandler{service: service}
}

// Geocode handles GET /api/v1/geo/geocode
func (h *GeoHandler) Geocode(c *gin.Context) {
	var query dto.GeocodeQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.service.Geocode(c.Request.Context(), query.Query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if result == nil {
		middleware.HandleError(c, errors.NewNotFoundError("address"))
		return
	}

	c.JSON(http.StatusOK, result)
}

// ReverseGeocode handles GET /api/v1/geo/reverse
func (h *GeoHandler) ReverseGeocode(c *gin.Context) {
	var query dto.ReverseGeocodeQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.service.ReverseGeocode(c.Request.Context(), query.Lat, query.Lng)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if result == nil {
		middleware.HandleError(c, errors.NewNotFoundError("address"))
		return
	}

	c.JSON(http.StatusOK, result)
}

// Distance handles GET /api/v1/geo/distance
func (h *GeoHandler) Distance(c *gin.Context) {
	var query dto.DistanceQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.service.Distance(c.Request.Context(), query.FromLat, query.FromLng, query.ToLat, query.ToLng)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if result == nil {
		middleware.HandleError(c, errors.NewNotFoundError("route"))
		return
	}

	c.JSON(http.StatusOK, result)
}

// Nearby handles GET /api/v1/geo/nearby
func (h *GeoHandler) Nearby(c *gin.Context) {
	var query dto.NearbyQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	places, err := h.service.Nearby(c.Request.Context(), query.Lat, query.Lng, query.Query, query.Radius)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": places, "count": len(places)})
}
