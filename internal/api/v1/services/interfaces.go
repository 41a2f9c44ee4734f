package services

import (
	"context"

	"trip-planner/internal/api/v1/dto"
	"trip-planner/internal/app/naver/datalab"
	"trip-planner/internal/app/naver/maps"
	"trip-planner/internal/app/naver/ocr"
	"trip-planner/internal/app/naver/papago"
	"trip-planner/internal/app/naver/speech"
)

// GeoService exposes the maps integration to the API layer
type GeoService interface {
	Geocode(ctx context.Context, query string) (*maps.GeocodeResult, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*maps.ReverseGeocodeResult, error)
	Distance(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (*maps.RouteSummary, error)
	Nearby(ctx context.Context, lat, lng float64, query string, radiusMeters int) ([]maps.Place, error)
}

// TranslationService exposes the Papago integration to the API layer
type TranslationService interface {
	Translate(ctx context.Context, req *dto.TranslateRequest) (*papago.Translation, error)
	Detect(ctx context.Context, text string) (*papago.Detection, error)
	TranslateBatch(ctx context.Context, req *dto.BatchTranslateRequest) ([]papago.Translation, error)
	Languages() []string
}

// MediaService exposes the OCR and speech integrations to the API layer
type MediaService interface {
	ExtractText(ctx context.Context, imageBytes []byte, filename string) (*ocr.Result, error)
	Transcribe(ctx context.Context, audioBytes []byte, language string) (*speech.Transcription, error)
	SpeechLanguages() []string
}

// TrendsService exposes the DataLab integration to the API layer
type TrendsService interface {
	KeywordTrends(ctx context.Context, req *dto.KeywordTrendsRequest) (*datalab.TrendReport, error)
	CompareKeywords(ctx context.Context, req *dto.CompareKeywordsRequest) (*datalab.TrendReport, error)
	AgeGenderTrends(ctx context.Context, req *dto.AgeGenderTrendsRequest) (*datalab.TrendReport, error)
	DeviceTrends(ctx context.Context, req *dto.DeviceTrendsRequest) (*datalab.TrendReport, error)
	DestinationPopularity(ctx context.Context, destination string, query *dto.PopularityQuery) (*datalab.DestinationPopularity, error)
	SeasonalInsights(ctx context.Context, keyword string, months int) (*datalab.SeasonalInsights, error)
}
