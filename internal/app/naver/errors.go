package naver

import "fmt"

// ServiceError represents a failed call to a NAVER Cloud Platform API.
// HTTPStatus carries the upstream response status (0 for transport-level
// failures), Context identifies the logical operation that failed
// ("geocode", "translate", "ocr", ...), not the transport detail.
type ServiceError struct {
	HTTPStatus int    `json:"http_status"`
	Message    string `json:"message"`
	Context    string `json:"context"`
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if e.HTTPStatus == 0 {
		return fmt.Sprintf("%s: %s", e.Context, e.Message)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Context, e.Message, e.HTTPStatus)
}

// ConfigError represents an invalid argument detected before any network
// activity, such as an unsupported language code or an out-of-range
// keyword-group count. It is deliberately a distinct type from
// ServiceError so callers can map the two to different responses.
type ConfigError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewConfigError creates a ConfigError for the given field
func NewConfigError(field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Field: field, Message: fmt.Sprintf(format, args...)}
}
