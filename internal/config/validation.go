package config

import (
	"fmt"
	"strings"
	"time"
)

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 10*time.Minute {
		return fmt.Errorf("%s timeout too large (max 10 minutes)", name)
	}
	return nil
}

// ValidateRetries validates the attempt limit
func ValidateRetries(attempts int, name string) error {
	if attempts <= 0 {
		return fmt.Errorf("%s max attempts must be positive", name)
	}
	if attempts > 10 {
		return fmt.Errorf("%s max attempts too high (max 10)", name)
	}
	return nil
}

// ValidateRetryDelay validates retry delay
func ValidateRetryDelay(delayMs int, name string) error {
	if delayMs < 0 {
		return fmt.Errorf("%s retry delay cannot be negative", name)
	}
	if delayMs > 60000 {
		return fmt.Errorf("%s retry delay too high (max 60 seconds)", name)
	}
	return nil
}

// ValidateURL validates URL format
func ValidateURL(url string, name string) error {
	if url == "" {
		return fmt.Errorf("%s URL is required", name)
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%s URL must start with http:// or https://", name)
	}

	return nil
}

// ValidatePort validates port number
func ValidatePort(port string, name string) error {
	if port == "" {
		return fmt.Errorf("%s port is required", name)
	}
	if len(port) > 5 {
		return fmt.Errorf("%s port invalid", name)
	}
	return nil
}

// ValidateServiceConfig validates a service's common call policy
func ValidateServiceConfig(timeout time.Duration, maxAttempts int, retryDelayMs int, serviceName string) error {
	if err := ValidateTimeout(timeout, serviceName); err != nil {
		return err
	}
	if err := ValidateRetries(maxAttempts, serviceName); err != nil {
		return err
	}
	if err := ValidateRetryDelay(retryDelayMs, serviceName); err != nil {
		return err
	}
	return nil
}
