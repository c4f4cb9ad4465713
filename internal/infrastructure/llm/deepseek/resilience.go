package deepseek

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/pvolkov/briefly/internal/core/domain"
	"github.com/pvolkov/briefly/internal/infrastructure/resilience"
)

var errNoChoices = errors.New("no choices in response")

// wrapGenerationError maps transport and status failures onto the
// generation error kinds so callers can react per cause.
func wrapGenerationError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.WrapError(domain.ErrGenerationTimeout, operation, err)
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return domain.WrapError(domain.ErrUnauthorized, operation, err)
		case http.StatusTooManyRequests:
			return domain.WrapError(domain.ErrRateLimited, operation, err)
		default:
			return domain.WrapError(domain.ErrServiceFailure, operation, err)
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.WrapError(domain.ErrGenerationTimeout, operation, err)
	}

	return domain.WrapError(domain.ErrServiceFailure, operation, err)
}

// recordsBreakerFailure counts upstream-health failures only: timeouts,
// transport errors, 408/429 and 5xx. Client-side mistakes (400, bad auth)
// must not open the breaker.
func recordsBreakerFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if resilience.IsCircuitOpen(err) {
		return true
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusRequestTimeout, http.StatusTooManyRequests,
			http.StatusInternalServerError, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
