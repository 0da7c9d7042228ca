package exceptions

import (
	"errors"
	"fmt"
)

// HttpError is returned by the HMS call helper for any non-2xx response.
type HttpError struct {
	StatusCode int
	StatusText string
	Body       string
}

func NewHttpError(statusCode int, statusText, body string) *HttpError {
	return &HttpError{
		StatusCode: statusCode,
		StatusText: statusText,
		Body:       body,
	}
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("HTTP %d %s: %s", e.StatusCode, e.StatusText, e.Body)
}

// AsHttpError reports whether err carries an HttpError anywhere in its chain.
func AsHttpError(err error) (*HttpError, bool) {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
