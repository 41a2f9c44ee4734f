package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"trip-planner/internal/api/errors"
	"trip-planner/internal/api/middleware"
	"trip-planner/internal/api/v1/dto"
	"trip-planner/internal/api/v1/services"
)

// maxUploadBytes bounds OCR and speech uploads. Clova Speech itself
// caps short-sentence recognition well below this.
const maxUploadBytes = 50 << 20

// MediaHandler handles OCR and speech-to-text endpoints
type MediaHandler struct {
	service services.MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(service services.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// OCR handles POST /api/v1/media/ocr with a multipart "image" field
func (h *MediaHandler) OCR(c *gin.Context) {
	data, filename, err := readUpload(c, "image")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.service.ExtractText(c.Request.Context(), data, filename)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Speech handles POST /api/v1/media/speech with a multipart "audio" field
func (h *MediaHandler) Speech(c *gin.Context) {
	var query dto.SpeechQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	data, _, err := readUpload(c, "audio")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.service.Transcribe(c.Request.Context(), data, query.Language)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SpeechLanguages handles GET /api/v1/media/speech/languages
func (h *MediaHandler) SpeechLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SpeechLanguagesResponse{Languages: h.service.SpeechLanguages()})
}

func readUpload(c *gin.Context, field string) ([]byte, string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, "", errors.NewValidationError("missing multipart field: "+field, nil)
	}
	if header.Size > maxUploadBytes {
		return nil, "", errors.NewValidationError("uploaded file exceeds size limit", nil)
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", errors.NewValidationError("cannot open uploaded file", nil)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return nil, "", errors.NewInternalError("reading uploaded file failed")
	}
	return data, header.Filename, nil
}
