package errors

import "fmt"

// HTTPError carries an HTTP status code alongside a user-facing message.
// Delivery layers build these from domain errors in mapError.
type HTTPError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string) HTTPError {
	return HTTPError{StatusCode: status, Message: message}
}

// NewHTTPErrorf creates a new HTTPError with a formatted message.
func NewHTTPErrorf(status int, format string, args ...any) HTTPError {
	return HTTPError{StatusCode: status, Message: fmt.Sprintf(format, args...)}
}
