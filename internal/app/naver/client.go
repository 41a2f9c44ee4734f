package naver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTimeout is the per-call timeout applied when a service does
	// not configure its own.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxAttempts bounds the retry loop for transport failures.
	DefaultMaxAttempts = 3

	// DefaultRetryDelay separates consecutive attempts.
	DefaultRetryDelay = 1000 * time.Millisecond
)

// RetryConfig controls the transport-failure retry loop. Retries apply
// only to network-level faults; an HTTP 4xx/5xx response is surfaced to
// the caller on the first attempt that produced it.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts,omitempty"`
	Delay       time.Duration `yaml:"delay,omitempty"`
}

// ClientConfig configures an authenticated HTTP client for one service
type ClientConfig struct {
	Service string
	Auth    AuthScheme
	Timeout time.Duration
	Retry   RetryConfig
	Debug   bool
	Logger  *zap.Logger
}

// Client is the shared authenticated HTTP client used by every adapter.
// It injects the service's authentication headers, applies the timeout
// and the bounded fixed-delay retry policy, and normalizes non-2xx
// responses into ServiceError values. A Client is immutable after
// construction and safe for concurrent use.
type Client struct {
	service string
	http    *http.Client
	auth    AuthScheme
	retry   RetryConfig
	debug   bool
	logger  *zap.Logger
}

// NewClient creates a client with defaults applied for any zero field
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Retry.Delay == 0 {
		cfg.Retry.Delay = DefaultRetryDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Client{
		service: cfg.Service,
		http:    &http.Client{Timeout: cfg.Timeout},
		auth:    cfg.Auth,
		retry:   cfg.Retry,
		debug:   cfg.Debug,
		logger:  cfg.Logger,
	}
}

// Auth returns the client's authentication scheme, used by adapters for
// their enablement predicate.
func (c *Client) Auth() AuthScheme { return c.auth }

// Request describes one outbound API call. Exactly one of Body and
// RawBody may be set: Body is marshaled as JSON, RawBody is sent verbatim
// with ContentType (Clova Speech posts raw audio as octet-stream).
type Request struct {
	Method      string
	URL         string
	Query       url.Values
	Body        interface{}
	RawBody     []byte
	ContentType string

	// Operation tags the logical call for ServiceError.Context and metrics
	Operation string
}

// upstreamError is the error envelope the NCP gateway returns for
// rejected requests.
type upstreamError struct {
	ErrorMessage string `json:"errorMessage"`
}

// Do executes the request under the retry policy and returns the raw
// response body. A non-2xx response produces a *ServiceError carrying the
// upstream status and the extracted errorMessage; a transport failure is
// retried up to the attempt limit and then surfaced as a *ServiceError
// with status 0.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	endpoint := req.URL
	if len(req.Query) > 0 {
		endpoint = endpoint + "?" + req.Query.Encode()
	}

	var payload []byte
	contentType := req.ContentType
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &ServiceError{Message: fmt.Sprintf("failed to encode request body: %v", err), Context: req.Operation}
		}
		payload = data
		if contentType == "" {
			contentType = "application/json"
		}
	} else if req.RawBody != nil {
		payload = req.RawBody
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	if c.debug {
		// Never log credentials, only the call shape
		c.logger.Debug("naver api request",
			zap.String("service", c.service),
			zap.String("operation", req.Operation),
			zap.String("method", req.Method),
			zap.String("endpoint", req.URL),
			zap.Int("query_params", len(req.Query)),
			zap.Int("body_bytes", len(payload)),
		)
	}

	start := time.Now()
	var lastErr error
	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, &ServiceError{Message: fmt.Sprintf("failed to create request: %v", err), Context: req.Operation}
		}
		if contentType != "" {
			httpReq.Header.Set("Content-Type", contentType)
		} else {
			httpReq.Header.Set("Content-Type", "application/json")
		}
		c.auth.apply(httpReq.Header)

		resp, err := c.http.Do(httpReq)
		if err != nil {
			// Transport-level fault: retry after the fixed delay
			lastErr = err
			c.logger.Debug("naver api transport failure",
				zap.String("service", c.service),
				zap.String("operation", req.Operation),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			if attempt < c.retry.MaxAttempts {
				time.Sleep(c.retry.Delay)
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			if attempt < c.retry.MaxAttempts {
				time.Sleep(c.retry.Delay)
			}
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			recordCall(c.service, req.Operation, outcomeSuccess, time.Since(start))
			return body, nil
		}

		// Application-level HTTP error: surface immediately, never retry
		recordCall(c.service, req.Operation, outcomeUpstreamError, time.Since(start))
		return nil, &ServiceError{
			HTTPStatus: resp.StatusCode,
			Message:    extractErrorMessage(body),
			Context:    req.Operation,
		}
	}

	recordCall(c.service, req.Operation, outcomeTransportFault, time.Since(start))
	return nil, &ServiceError{
		Message: fmt.Sprintf("request failed after %d attempts: %v", c.retry.MaxAttempts, lastErr),
		Context: req.Operation,
	}
}

// DoJSON executes the request and unmarshals the 2xx body into out
func (c *Client) DoJSON(ctx context.Context, req Request, out interface{}) error {
	body, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ServiceError{Message: fmt.Sprintf("failed to decode response: %v", err), Context: req.Operation}
	}
	return nil
}

// extractErrorMessage pulls the gateway's errorMessage field out of an
// error body, falling back to a generic message when absent.
func extractErrorMessage(body []byte) string {
	var envelope upstreamError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.ErrorMessage != "" {
		return envelope.ErrorMessage
	}
	return "Unknown error"
}
