package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the status code it should be reported with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// StatusCode returns the status carried by err, or fallback.
func StatusCode(err error, fallback int) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode != 0 {
		return httpErr.StatusCode
	}
	return fallback
}

var (
	ErrBadRequest      = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized    = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)
