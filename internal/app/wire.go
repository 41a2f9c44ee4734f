//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"trip-planner/internal/api/v1/routes"
	"trip-planner/internal/api/v1/services"
	"trip-planner/internal/app/naver/datalab"
	"trip-planner/internal/app/naver/maps"
	"trip-planner/internal/app/naver/ocr"
	"trip-planner/internal/app/naver/papago"
	"trip-planner/internal/app/naver/speech"
)

// InitServiceContainer wires the full adapter and service graph
func InitServiceContainer() *routes.ServiceContainer {
	wire.Build(
		provideServicesConfig,
		provideLogger,
		provideCache,
		provideMapsAdapter,
		providePapagoAdapter,
		provideOCRAdapter,
		provideSpeechAdapter,
		provideDatalabAdapter,
		services.NewGeoService,
		services.NewTranslationService,
		services.NewMediaService,
		services.NewTrendsService,
		provideContainer,
	)
	return &routes.ServiceContainer{}
}

// InitMapsAdapter wires a standalone maps adapter for CLI use
func InitMapsAdapter() *maps.Adapter {
	wire.Build(provideServicesConfig, provideLogger, provideMapsAdapter)
	return &maps.Adapter{}
}

// InitPapagoAdapter wires a standalone translation adapter for CLI use
func InitPapagoAdapter() *papago.Adapter {
	wire.Build(provideServicesConfig, provideLogger, providePapagoAdapter)
	return &papago.Adapter{}
}

// InitOCRAdapter wires a standalone OCR adapter for CLI use
func InitOCRAdapter() *ocr.Adapter {
	wire.Build(provideServicesConfig, provideLogger, provideOCRAdapter)
	return &ocr.Adapter{}
}

// InitSpeechAdapter wires a standalone speech adapter for CLI use
func InitSpeechAdapter() *speech.Adapter {
	wire.Build(provideServicesConfig, provideLogger, provideSpeechAdapter)
	return &speech.Adapter{}
}

// InitDatalabAdapter wires a standalone trends adapter for CLI use
func InitDatalabAdapter() *datalab.Adapter {
	wire.Build(provideServicesConfig, provideLogger, provideDatalabAdapter)
	return &datalab.Adapter{}
}
