package config

import "time"

// Service default configuration constants
const (
	// Timeout defaults
	DefaultMapsTimeout    = 30 * time.Second
	DefaultPapagoTimeout  = 30 * time.Second
	DefaultOCRTimeout     = 60 * time.Second
	DefaultSpeechTimeout  = 120 * time.Second
	DefaultDatalabTimeout = 30 * time.Second

	// Retry defaults
	DefaultMaxAttempts  = 3
	DefaultRetryDelayMs = 1000

	// Network defaults
	DefaultHTTPPort = "8080"
)

// ServiceDefaults holds the default call policy for one service
type ServiceDefaults struct {
	Timeout      time.Duration
	MaxAttempts  int
	RetryDelayMs int
}

// GetServiceDefaults returns default configuration for a given service
func GetServiceDefaults(service string) ServiceDefaults {
	defaults := ServiceDefaults{
		Timeout:      30 * time.Second,
		MaxAttempts:  DefaultMaxAttempts,
		RetryDelayMs: DefaultRetryDelayMs,
	}

	switch service {
	case "maps":
		defaults.Timeout = DefaultMapsTimeout
	case "papago":
		defaults.Timeout = DefaultPapagoTimeout
	case "ocr":
		// OCR uploads images, give it more room
		defaults.Timeout = DefaultOCRTimeout
	case "speech":
		// Audio uploads are the largest payloads
		defaults.Timeout = DefaultSpeechTimeout
	case "datalab":
		defaults.Timeout = DefaultDatalabTimeout
	}

	return defaults
}
