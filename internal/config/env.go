package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// NaverCredentials holds every NAVER credential loaded from environment.
// Maps, Papago and DataLab use NCP gateway key pairs; OCR and Speech use
// a single secret plus a per-project invoke URL; local search uses the
// separate developer-portal pair.
type NaverCredentials struct {
	MapsClientID     string
	MapsClientSecret string

	SearchClientID     string
	SearchClientSecret string

	PapagoClientID     string
	PapagoClientSecret string

	OCRSecretKey string
	OCRInvokeURL string

	SpeechSecretKey string
	SpeechInvokeURL string

	DatalabClientID     string
	DatalabClientSecret string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetNaverCredentials reads the NAVER credentials from environment
// variables. Absent credentials disable the corresponding adapter rather
// than failing here.
func GetNaverCredentials() *NaverCredentials {
	return &NaverCredentials{
		MapsClientID:     strings.TrimSpace(os.Getenv("NAVER_MAPS_CLIENT_ID")),
		MapsClientSecret: strings.TrimSpace(os.Getenv("NAVER_MAPS_CLIENT_SECRET")),

		SearchClientID:     strings.TrimSpace(os.Getenv("NAVER_SEARCH_CLIENT_ID")),
		SearchClientSecret: strings.TrimSpace(os.Getenv("NAVER_SEARCH_CLIENT_SECRET")),

		PapagoClientID:     strings.TrimSpace(os.Getenv("NAVER_PAPAGO_CLIENT_ID")),
		PapagoClientSecret: strings.TrimSpace(os.Getenv("NAVER_PAPAGO_CLIENT_SECRET")),

		OCRSecretKey: strings.TrimSpace(os.Getenv("NAVER_OCR_SECRET_KEY")),
		OCRInvokeURL: strings.TrimSpace(os.Getenv("NAVER_OCR_INVOKE_URL")),

		SpeechSecretKey: strings.TrimSpace(os.Getenv("NAVER_SPEECH_SECRET_KEY")),
		SpeechInvokeURL: strings.TrimSpace(os.Getenv("NAVER_SPEECH_INVOKE_URL")),

		DatalabClientID:     strings.TrimSpace(os.Getenv("NAVER_DATALAB_CLIENT_ID")),
		DatalabClientSecret: strings.TrimSpace(os.Getenv("NAVER_DATALAB_CLIENT_SECRET")),
	}
}

// ConfiguredServices lists which services have their required credentials
// present, for startup logging.
func (c *NaverCredentials) ConfiguredServices() []string {
	var services []string
	if c.MapsClientID != "" && c.MapsClientSecret != "" {
		services = append(services, "maps")
	}
	if c.SearchClientID != "" && c.SearchClientSecret != "" {
		services = append(services, "local_search")
	}
	if c.PapagoClientID != "" && c.PapagoClientSecret != "" {
		services = append(services, "papago")
	}
	if c.OCRSecretKey != "" && c.OCRInvokeURL != "" {
		services = append(services, "ocr")
	}
	if c.SpeechSecretKey != "" && c.SpeechInvokeURL != "" {
		services = append(services, "speech")
	}
	if c.DatalabClientID != "" && c.DatalabClientSecret != "" {
		services = append(services, "datalab")
	}
	return services
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
