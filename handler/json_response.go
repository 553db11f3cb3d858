package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// jsonResponse implements StatusResponse for JSON rendering
type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

func (j jsonResponse) StatusCode() int { return j.status }

func (j jsonResponse) WithStatus(code int) Response {
	j.status = code
	return j
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON creates a JSON response. Errors are turned into an error body with a
// matching status: 422 for ValidationError, the HTTPError code, 500 otherwise.
func JSON(v any, opts ...JSONOption) StatusResponse {
	r := jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error = errorToDetail(val, &r.status)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// JSONError creates a JSON error response, 500 unless the error says otherwise.
func JSONError(err error, opts ...JSONOption) StatusResponse {
	r := jsonResponse{status: http.StatusInternalServerError}
	r.body.Error = errorToDetail(err, &r.status)

	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// errorToDetail converts error to ErrorDetail and sets appropriate status
func errorToDetail(err error, status *int) *ErrorDetail {
	if *status == http.StatusOK {
		*status = http.StatusInternalServerError
	}

	var valErr ValidationError
	if errors.As(err, &valErr) {
		*status = http.StatusUnprocessableEntity
		detail := &ErrorDetail{
			Code:    "validation_error",
			Message: valErr.Error(),
		}
		if len(valErr) > 0 {
			detail.Details = make(map[string][]string, len(valErr))
			maps.Copy(detail.Details, valErr)
		}
		return detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		*status = httpErr.Code
		return &ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		}
	}

	return &ErrorDetail{
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
