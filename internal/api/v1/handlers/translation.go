package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"trip-planner/internal/api/middleware"
	"trip-planner/internal/api/v1/dto"
	"trip-planner/internal/api/v1/services"
)

// TranslationHandler handles translation and language-detection endpoints
type TranslationHandler struct {
	service services.TranslationService
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(service services.TranslationService) *TranslationHandler {
	return &TranslationHandler{service: service}
}

// Translate handles POST /api/v1/translation/translate
func (h *TranslationHandler) Translate(c *gin.Context) {
	var req dto.TranslateRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.service.Translate(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// TranslateBatch handles POST /api/v1/translation/batch
func (h *TranslationHandler) TranslateBatch(c *gin.Context) {
	var req dto.BatchTranslateRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	results, err := h.service.TranslateBatch(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"translations": results, "count": len(results)})
}

// Detect handles POST /api/v1/translation/detect
func (h *TranslationHandler) Detect(c *gin.Context) {
	var req dto.DetectRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	detection, err := h.service.Detect(c.Request.Context(), req.Text)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, detection)
}

// Languages handles GET /api/v1/translation/languages
func (h *TranslationHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LanguagesResponse{Languages: h.service.Languages()})
}
