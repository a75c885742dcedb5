package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is the terminal result of the retry loop. It wraps
	// the classification message of the failure that ended the loop.
	ErrGenerationFailed = errors.New("failed to generate image")

	// ErrMalformedResponse is returned when the remote service responds
	// successfully but the response contains no result URL.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// ModelError is a permanent rejection of the request content by the remote
// model. It is never retried.
type ModelError struct {
	Detail string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model error: %s", e.Detail)
}

// APIError is a remote-service error that is not a model rejection: rate
// limits, auth failures, server errors. Whether it is retried depends on
// its detail text (see Classify).
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("api error: %s", e.Detail)
}
