package services

import (
	goerrors "errors"
	"net/http"

	"trip-planner/internal/api/errors"
	"trip-planner/internal/app/naver"
)

// translateError maps integration-layer errors onto API errors:
// ConfigError (bad input, no network call) becomes a 422 validation
// error, ServiceError passes the upstream status through (502 for
// transport-level failures), anything else is internal.
func translateError(err error) error {
	var cfgErr *naver.ConfigError
	if goerrors.As(err, &cfgErr) {
		return errors.NewValidationError(cfgErr.Message, map[string]string{cfgErr.Field: cfgErr.Message})
	}

	var svcErr *naver.ServiceError
	if goerrors.As(err, &svcErr) {
		if svcErr.HTTPStatus == 0 {
			return errors.NewUpstreamError(http.StatusBadGateway, svcErr.Error())
		}
		return errors.NewUpstreamError(svcErr.HTTPStatus, svcErr.Message)
	}

	return errors.NewInternalError(err.Error())
}

// disabledError is the uniform response for integrations that are
// switched off or missing credentials. Disablement is not a failure at
// the adapter level, but the API has nothing to serve.
func disabledError(service string) error {
	return errors.NewServiceUnavailableError(service + " integration is not configured")
}
