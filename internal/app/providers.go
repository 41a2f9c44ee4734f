package app

import (
	"os"
	"strconv"

	"go.uber.org/zap"
	"trip-planner/internal/api/v1/routes"
	"trip-planner/internal/api/v1/services"
	"trip-planner/internal/app/cache"
	appconfig "trip-planner/internal/app/config"
	"trip-planner/internal/app/naver/datalab"
	"trip-planner/internal/app/naver/maps"
	"trip-planner/internal/app/naver/ocr"
	"trip-planner/internal/app/naver/papago"
	"trip-planner/internal/app/naver/speech"
	"trip-planner/internal/config"
	"trip-planner/internal/logging"
)

// provideServicesConfig loads the integration config, preferring a YAML
// file when SERVICES_CONFIG points at one and falling back to env vars.
func provideServicesConfig() *appconfig.ServicesConfig {
	if path := os.Getenv("SERVICES_CONFIG"); path != "" {
		cfg, err := appconfig.LoadServicesConfig(path)
		if err == nil {
			return cfg
		}
	}
	_ = config.LoadEnv()
	return appconfig.FromCredentials(config.GetNaverCredentials())
}

func provideLogger(cfg *appconfig.ServicesConfig) *zap.Logger {
	return logging.MustNewLogger(cfg.Debug)
}

// provideCache uses Redis when REDIS_ADDR is set, otherwise a no-op
// cache so every call goes straight upstream.
func provideCache() cache.Cache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return cache.NewNoopCache()
	}
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return cache.NewRedisCache(addr, os.Getenv("REDIS_PASSWORD"), db)
}

func provideMapsAdapter(cfg *appconfig.ServicesConfig, logger *zap.Logger) *maps.Adapter {
	return maps.NewAdapter(cfg.MapsConfig(logger))
}

func providePapagoAdapter(cfg *appconfig.ServicesConfig, logger *zap.Logger) *papago.Adapter {
	return papago.NewAdapter(cfg.PapagoConfig(logger))
}

func provideOCRAdapter(cfg *appconfig.ServicesConfig, logger *zap.Logger) *ocr.Adapter {
	return ocr.NewAdapter(cfg.OCRConfig(logger))
}

func provideSpeechAdapter(cfg *appconfig.ServicesConfig, logger *zap.Logger) *speech.Adapter {
	return speech.NewAdapter(cfg.SpeechConfig(logger))
}

func provideDatalabAdapter(cfg *appconfig.ServicesConfig, logger *zap.Logger) *datalab.Adapter {
	return datalab.NewAdapter(cfg.DatalabConfig(logger))
}

func provideContainer(
	geo services.GeoService,
	translation services.TranslationService,
	media services.MediaService,
	trends services.TrendsService,
) *routes.ServiceContainer {
	return &routes.ServiceContainer{
		Geo:         geo,
		Translation: translation,
		Media:       media,
		Trends:      trends,
	}
}
