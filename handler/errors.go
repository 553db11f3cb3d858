package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError represents an HTTP error with status code and translation key.
// The Key field is intended for i18n; error pages can use it to look up a
// translated message.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Translation key (e.g., "not_found", "unauthorized")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates a custom HTTP error with the given status code and translation key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrForbidden            = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrUnprocessableEntity  = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests      = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrInternalServerError  = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrServiceUnavailable   = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)

type failResponse struct {
	err error
}

func (f failResponse) Render(http.ResponseWriter, *http.Request) error {
	return f.err
}

// Fail returns a Response whose Render reports err without writing anything,
// handing the error to the ErrorHandler configured in Wrap.
func Fail(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return failResponse{err: err}
}
