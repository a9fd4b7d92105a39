// ABOUTME: Error types for the backend API boundary
// ABOUTME: Typed APIError plus the terminal session-expiry sentinel

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired marks a terminal authentication failure: the access token
// was rejected and could not be refreshed. Callers must not retry; the local
// session has already been cleared.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Status     string // backend envelope status when present, e.g. "error"
	Message    string // backend message or HTTP status text
	RequestID  string // the X-Request-ID sent with the failing request
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// IsInvalidCredentials reports whether err is the backend rejecting a login
// attempt, as opposed to a transport or server failure.
func IsInvalidCredentials(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusBadRequest)
}
