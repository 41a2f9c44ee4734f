package routes

import (
	"github.com/gin-gonic/gin"
	"trip-planner/internal/api/v1/handlers"
	"trip-planner/internal/api/v1/services"
)

// ServiceContainer bundles the service implementations the v1 routes need
type ServiceContainer struct {
	Geo         services.GeoService
	Translation services.TranslationService
	Media       services.MediaService
	Trends      services.TrendsService
}

// RegisterRoutes mounts all v1 endpoints under the given router group
func RegisterRoutes(rg *gin.RouterGroup, c *ServiceContainer) {
	geoHandler := handlers.NewGeoHandler(c.Geo)
	translationHandler := handlers.NewTranslationHandler(c.Translation)
	mediaHandler := handlers.NewMediaHandler(c.Media)
	trendsHandler := handlers.NewTrendsHandler(c.Trends)

	geo := rg.Group("/geo")
	{
		geo.GET("/geocode", geoHandler.Geocode)
		geo.GET("/reverse", geoHandler.ReverseGeocode)
		geo.GET("/distance", geoHandler.Distance)
		geo.GET("/nearby", geoHandler.Nearby)
	}

	translation := rg.Group("/translation")
	{
		translation.POST("/translate", translationHandler.Translate)
		translation.POST("/batch", translationHandler.TranslateBatch)
		translation.POST("/detect", translationHandler.Detect)
		translation.GET("/languages", translationHandler.Languages)
	}

	media := rg.Group("/media")
	{
		media.POST("/ocr", mediaHandler.OCR)
		media.POST("/speech", mediaHandler.Speech)
		media.GET("/speech/languages", mediaHandler.SpeechLanguages)
	}

	trends := rg.Group("/trends")
	{
		trends.POST("/keywords", trendsHandler.KeywordTrends)
		trends.POST("/compare", trendsHandler.CompareKeywords)
		trends.POST("/age-gender", trendsHandler.AgeGenderTrends)
		trends.POST("/device", trendsHandler.DeviceTrends)
		trends.GET("/destinations/:name/popularity", trendsHandler.DestinationPopularity)
		trends.GET("/destinations/:name/seasonal", trendsHandler.SeasonalInsights)
	}
}
