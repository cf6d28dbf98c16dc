package handler

import (
	"errors"
	"net/http"
)

var (
	ErrNilResponse = errors.New("handler returned nil response")
	ErrPanic       = errors.New("handler panicked")
)

// InternalErrorMessage is the only message a client sees for a 5xx.
const InternalErrorMessage = "Failed to process request"

// HTTPError is an error with a status code and a message that is safe to
// show to the client.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest      = HTTPError{Code: http.StatusBadRequest, Message: "Bad Request"}
	ErrForbidden       = HTTPError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrTooManyRequests = HTTPError{Code: http.StatusTooManyRequests, Message: "Too Many Requests"}
)
