package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	baseconfig "trip-planner/internal/config"

	"trip-planner/internal/app/naver"
	"trip-planner/internal/app/naver/datalab"
	"trip-planner/internal/app/naver/maps"
	"trip-planner/internal/app/naver/ocr"
	"trip-planner/internal/app/naver/papago"
	"trip-planner/internal/app/naver/speech"
)

// knownServices is the closed set of configurable integrations
var knownServices = map[string]bool{
	"maps":    true,
	"papago":  true,
	"ocr":     true,
	"speech":  true,
	"datalab": true,
}

// ServicesConfig is the overall configuration for every NAVER integration
type ServicesConfig struct {
	Debug    bool                     `yaml:"debug,omitempty"`
	Services map[string]ServiceConfig `yaml:"services"`
}

// ServiceConfig configures a single integration. Which credential fields
// apply depends on the service: maps/papago/datalab use the client
// id/secret pair (maps additionally the search pair for local POI
// search), ocr/speech use secret_key plus invoke_url.
type ServiceConfig struct {
	Enabled            bool        `yaml:"enabled"`
	ClientID           string      `yaml:"client_id,omitempty"`
	ClientSecret       string      `yaml:"client_secret,omitempty"`
	SearchClientID     string      `yaml:"search_client_id,omitempty"`
	SearchClientSecret string      `yaml:"search_client_secret,omitempty"`
	SecretKey          string      `yaml:"secret_key,omitempty"`
	InvokeURL          string      `yaml:"invoke_url,omitempty"`
	TimeoutSec         int         `yaml:"timeout_sec,omitempty"`
	Retry              RetryConfig `yaml:"retry,omitempty"`
}

// RetryConfig represents retry settings for a service
type RetryConfig struct {
	MaxAttempts int `yaml:"max_attempts,omitempty"`
	DelayMs     int `yaml:"delay_ms,omitempty"`
}

// LoadServicesConfig loads service configuration from a YAML file
func LoadServicesConfig(configPath string) (*ServicesConfig, error) {
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config ServicesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.expandEnvironmentVariables()
	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// FromCredentials builds a configuration straight from environment
// credentials, used when no YAML file is supplied. Every service with
// credentials present is enabled.
func FromCredentials(creds *baseconfig.NaverCredentials) *ServicesConfig {
	config := &ServicesConfig{
		Services: map[string]ServiceConfig{
			"maps": {
				Enabled:            true,
				ClientID:           creds.MapsClientID,
				ClientSecret:       creds.MapsClientSecret,
				SearchClientID:     creds.SearchClientID,
				SearchClientSecret: creds.SearchClientSecret,
			},
			"papago": {
				Enabled:      true,
				ClientID:     creds.PapagoClientID,
				ClientSecret: creds.PapagoClientSecret,
			},
			"ocr": {
				Enabled:   true,
				SecretKey: creds.OCRSecretKey,
				InvokeURL: creds.OCRInvokeURL,
			},
			"speech": {
				Enabled:   true,
				SecretKey: creds.SpeechSecretKey,
				InvokeURL: creds.SpeechInvokeURL,
			},
			"datalab": {
				Enabled:      true,
				ClientID:     creds.DatalabClientID,
				ClientSecret: creds.DatalabClientSecret,
			},
		},
	}
	config.setDefaults()
	return config
}

// expandEnvironmentVariables resolves ${VAR} references in credential and
// URL fields so secrets can stay out of the YAML file.
func (c *ServicesConfig) expandEnvironmentVariables() {
	expand := func(value string) string {
		if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
			return os.Getenv(strings.TrimSuffix(strings.TrimPrefix(value, "${"), "}"))
		}
		return value
	}

	for name, service := range c.Services {
		service.ClientID = expand(service.ClientID)
		service.ClientSecret = expand(service.ClientSecret)
		service.SearchClientID = expand(service.SearchClientID)
		service.SearchClientSecret = expand(service.SearchClientSecret)
		service.SecretKey = expand(service.SecretKey)
		service.InvokeURL = expand(service.InvokeURL)
		c.Services[name] = service
	}
}

// setDefaults fills per-service timeout and retry policy defaults
func (c *ServicesConfig) setDefaults() {
	if c.Services == nil {
		c.Services = map[string]ServiceConfig{}
	}
	for name, service := range c.Services {
		defaults := baseconfig.GetServiceDefaults(name)
		if service.TimeoutSec == 0 {
			service.TimeoutSec = int(defaults.Timeout / time.Second)
		}
		if service.Retry.MaxAttempts == 0 {
			service.Retry.MaxAttempts = defaults.MaxAttempts
		}
		if service.Retry.DelayMs == 0 {
			service.Retry.DelayMs = defaults.RetryDelayMs
		}
		c.Services[name] = service
	}
}

// Validate validates the configuration
func (c *ServicesConfig) Validate() error {
	for name, service := range c.Services {
		if !knownServices[name] {
			return fmt.Errorf("unknown service '%s'", name)
		}
		err := baseconfig.ValidateServiceConfig(
			time.Duration(service.TimeoutSec)*time.Second,
			service.Retry.MaxAttempts,
			service.Retry.DelayMs,
			name,
		)
		if err != nil {
			return err
		}
		if service.InvokeURL != "" {
			if err := baseconfig.ValidateURL(service.InvokeURL, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// service returns the named service's config, zero-valued when absent
func (c *ServicesConfig) service(name string) ServiceConfig {
	if c.Services == nil {
		return ServiceConfig{}
	}
	return c.Services[name]
}

func (s ServiceConfig) timeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

func (s ServiceConfig) retry() naver.RetryConfig {
	return naver.RetryConfig{
		MaxAttempts: s.Retry.MaxAttempts,
		Delay:       time.Duration(s.Retry.DelayMs) * time.Millisecond,
	}
}

// MapsConfig builds the maps adapter configuration
func (c *ServicesConfig) MapsConfig(logger *zap.Logger) maps.Config {
	s := c.service("maps")
	return maps.Config{
		Enabled:            s.Enabled,
		ClientID:           s.ClientID,
		ClientSecret:       s.ClientSecret,
		SearchClientID:     s.SearchClientID,
		SearchClientSecret: s.SearchClientSecret,
		Timeout:            s.timeout(),
		Retry:              s.retry(),
		Debug:              c.Debug,
		Logger:             logger,
	}
}

// PapagoConfig builds the translation adapter configuration
func (c *ServicesConfig) PapagoConfig(logger *zap.Logger) papago.Config {
	s := c.service("papago")
	return papago.Config{
		Enabled:      s.Enabled,
		ClientID:     s.ClientID,
		ClientSecret: s.ClientSecret,
		Timeout:      s.timeout(),
		Retry:        s.retry(),
		Debug:        c.Debug,
		Logger:       logger,
	}
}

// OCRConfig builds the OCR adapter configuration
func (c *ServicesConfig) OCRConfig(logger *zap.Logger) ocr.Config {
	s := c.service("ocr")
	return ocr.Config{
		Enabled:   s.Enabled,
		SecretKey: s.SecretKey,
		InvokeURL: s.InvokeURL,
		Timeout:   s.timeout(),
		Retry:     s.retry(),
		Debug:     c.Debug,
		Logger:    logger,
	}
}

// SpeechConfig builds the speech adapter configuration
func (c *ServicesConfig) SpeechConfig(logger *zap.Logger) speech.Config {
	s := c.service("speech")
	return speech.Config{
		Enabled:   s.Enabled,
		SecretKey: s.SecretKey,
		InvokeURL: s.InvokeURL,
		Timeout:   s.timeout(),
		Retry:     s.retry(),
		Debug:     c.Debug,
		Logger:    logger,
	}
}

// DatalabConfig builds the search-trend adapter configuration
func (c *ServicesConfig) DatalabConfig(logger *zap.Logger) datalab.Config {
	s := c.service("datalab")
	return datalab.Config{
		Enabled:      s.Enabled,
		ClientID:     s.ClientID,
		ClientSecret: s.ClientSecret,
		Timeout:      s.timeout(),
		Retry:        s.retry(),
		Debug:        c.Debug,
		Logger:       logger,
	}
}
