package generation

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Classification is the verdict Classify reaches for a failed attempt:
// whether the error is transient enough to retry, and the human-readable
// message reported if the verdict ends the loop.
type Classification struct {
	Retry   bool
	Message string
}

// Classify inspects the failure from a generation attempt and decides whether
// it is worth retrying. It is a pure function: same error, same verdict.
//
// Permanent failures are model rejections, authentication failures,
// cancellation, and anything unrecognized. Rate limits, other remote-service
// errors, and network-level failures are treated as transient.
func Classify(err error) Classification {
	var modelErr *ModelError
	if errors.As(err, &modelErr) {
		return Classification{Retry: false, Message: fmt.Sprintf("Model error: %s", modelErr.Detail)}
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		detail := strings.ToLower(apiErr.Detail)
		switch {
		case strings.Contains(detail, "rate limit"):
			return Classification{Retry: true, Message: "Rate limit exceeded"}
		case strings.Contains(detail, "unauthorized"):
			return Classification{Retry: false, Message: "Invalid API token"}
		default:
			return Classification{Retry: true, Message: fmt.Sprintf("API error: %s", apiErr.Detail)}
		}
	}

	// Cancellation comes from the caller, not the service. Never retried.
	if errors.Is(err, context.Canceled) {
		return Classification{Retry: false, Message: "Cancelled"}
	}

	if isNetworkError(err) {
		return Classification{Retry: true, Message: fmt.Sprintf("Network error: %v", err)}
	}

	return Classification{Retry: false, Message: fmt.Sprintf("Unexpected error: %v", err)}
}

// isNetworkError reports whether err is a transport-level failure: timeout,
// connection reset, DNS resolution, unreachable host.
func isNetworkError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr)
}
