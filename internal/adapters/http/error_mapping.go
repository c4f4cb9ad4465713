package httpadapter

import (
	"context"
	"errors"
	"net/http"

	"github.com/pvolkov/briefly/internal/core/domain"
)

// statusClientClosedRequest marks a caller that went away mid-request
// (nginx convention); no registered status code fits.
const statusClientClosedRequest = 499

// mapErrorToHTTPStatus translates pipeline error kinds into transport
// statuses. Upstream generation failures are gateway-class errors, not the
// caller's fault.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest
	case domain.IsKind(err, domain.ErrInvalidInput),
		domain.IsKind(err, domain.ErrEmptyInput),
		domain.IsKind(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case domain.IsKind(err, domain.ErrCorruptFile):
		return http.StatusUnprocessableEntity
	case domain.IsKind(err, domain.ErrRateLimited):
		return http.StatusServiceUnavailable
	case domain.IsKind(err, domain.ErrGenerationTimeout):
		return http.StatusGatewayTimeout
	case domain.IsKind(err, domain.ErrUnauthorized),
		domain.IsKind(err, domain.ErrServiceFailure),
		domain.IsKind(err, domain.ErrExtractionIO):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorCategory buckets a failure for logs and metrics: what broke, not
// which HTTP code it maps to.
func errorCategory(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case domain.IsExtractionError(err):
		return "extraction"
	case domain.IsGenerationError(err):
		return "generation"
	default:
		return "input"
	}
}
