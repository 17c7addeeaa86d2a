// Package errors holds transport-level error values shared by delivery packages.
package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status the delivery layer should answer with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates an HTTPError whose envelope code equals the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")

// AsHTTPError unwraps err into an HTTPError if it holds one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
