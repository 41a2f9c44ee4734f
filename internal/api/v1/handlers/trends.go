package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"trip-planner/internal/api/errors"
	"trip-planner/internal/api/middleware"
	"trip-planner/internal/api/v1/dto"
	"trip-planner/internal/api/v1/services"
)

// TrendsHandler handles search-trend endpoints
type TrendsHandler struct {
	service services.TrendsService
}

// NewTrendsHandler creates a new trends handler
func NewTrendsHandler(service services.TrendsService) *TrendsHandler {
	return &TrendsHandler{service: service}
}

// KeywordTrends handles POST /api/v1/trends/keywords
func (h *TrendsHandler) KeywordTrends(c *gin.Context) {
	var req dto.KeywordTrendsRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	report, err := h.service.KeywordTrends(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if report == nil {
		middleware.HandleError(c, errors.NewNotFoundError("trend data"))
		return
	}

	c.JSON(http.StatusOK, report)
}

// CompareKeywords handles POST /api/v1/trends/compare
func (h *TrendsHandler) CompareKeywords(c *gin.Context) {
	var req dto.CompareKeywordsRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	report, err := h.service.CompareKeywords(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if report == nil {
		middleware.HandleError(c, errors.NewNotFoundError("trend data"))
		return
	}

	c.JSON(http.StatusOK, report)
}

// AgeGenderTrends handles POST /api/v1/trends/age-gender
func (h *TrendsHandler) AgeGenderTrends(c *gin.Context) {
	var req dto.AgeGenderTrendsRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	report, err := h.service.AgeGenderTrends(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if report == nil {
		middleware.HandleError(c, errors.NewNotFoundError("trend data"))
		return
	}

	c.JSON(http.StatusOK, report)
}

// DeviceTrends handles POST /api/v1/trends/device
func (h *TrendsHandler) DeviceTrends(c *gin.Context) {
	var req dto.DeviceTrendsRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	report, err := h.service.DeviceTrends(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if report == nil {
		middleware.HandleError(c, errors.NewNotFoundError("trend data"))
		return
	}

	c.JSON(http.StatusOK, report)
}

// DestinationPopularity handles GET /api/v1/trends/destinations/:name/popularity
func (h *TrendsHandler) DestinationPopularity(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		middleware.HandleError(c, errors.NewValidationError("destination name is required", nil))
		return
	}

	var query dto.PopularityQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.service.DestinationPopularity(c.Request.Context(), name, &query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if result == nil {
		middleware.HandleError(c, errors.NewNotFoundError("popularity data"))
		return
	}

	c.JSON(http.StatusOK, result)
}

// SeasonalInsights handles GET /api/v1/trends/destinations/:name/seasonal
func (h *TrendsHandler) SeasonalInsights(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		middleware.HandleError(c, errors.NewValidationError("destination name is required", nil))
		return
	}

	var query dto.SeasonalQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.service.SeasonalInsights(c.Request.Context(), name, query.Months)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if result == nil {
		middleware.HandleError(c, errors.NewNotFoundError("seasonal data"))
		return
	}

	c.JSON(http.StatusOK, result)
}
