package sync

import (
	"errors"
	"net/http"
)

// ConfigError signals that a required server-side value (shared secret or
// upstream credential) is missing. Always a deployment defect, never a
// caller problem.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// UnauthorizedError signals that the caller's key does not match the
// configured secret. Carries no detail beyond "invalid key".
type UnauthorizedError struct{}

func (e *UnauthorizedError) Error() string {
	return "invalid key"
}

// UpstreamError signals that a third-party API returned a non-success status
// or an in-band error payload. The upstream's own status and message are
// passed through for diagnosability.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// StatusForError maps the sync error taxonomy to HTTP status codes.
func StatusForError(err error) int {
	var unauthorizedErr *UnauthorizedError
	if errors.As(err, &unauthorizedErr) {
		return http.StatusUnauthorized
	}

	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return http.StatusInternalServerError
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
