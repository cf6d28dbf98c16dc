package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON envelope of every error response.
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// SuccessBody is the JSON envelope of a successful request.
type SuccessBody struct {
	Success bool `json:"success"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	return WriteJSON(w, j.status, j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus sets the HTTP status code. The default is 200.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON renders v as the response body.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Success renders {"success":true} with status 200.
func Success() Response {
	return JSON(SuccessBody{Success: true})
}

// JSONError renders {"error":<message>} with the error's status code.
func JSONError(err HTTPError) Response {
	return JSON(ErrorBody{Error: err.Message}, WithJSONStatus(err.Code))
}

// WriteJSON writes v with the given status. It is used directly by
// middleware that answers before a HandlerFunc runs.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error":<message>} with the error's status code.
func WriteError(w http.ResponseWriter, err HTTPError) error {
	return WriteJSON(w, err.Code, ErrorBody{Error: err.Message})
}
