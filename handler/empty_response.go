package handler

import "net/http"

// emptyResponse represents an empty HTTP response with only a status code
type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

func (e emptyResponse) StatusCode() int { return e.status }

func (e emptyResponse) WithStatus(code int) Response {
	e.status = code
	return e
}

// Empty creates an empty response with status 204 (No Content).
func Empty() StatusResponse {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus creates an empty response with a custom status code.
//
//	return handler.EmptyWithStatus(http.StatusAccepted)
func EmptyWithStatus(status int) StatusResponse {
	return emptyResponse{status: status}
}
