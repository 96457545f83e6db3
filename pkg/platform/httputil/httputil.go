// Package httputil centralizes JSON response writing so every handler emits
// the same envelopes: resources as plain JSON, errors as {message, field?}.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "talentradar/pkg/domain-errors"
)

// ErrorResponse is the wire shape for all error responses. Field is only set
// for validation errors that can name the offending input.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into an HTTP error response. Internal
// errors are written with a generic message so persistence failures never
// leak details to clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	resp := ErrorResponse{Message: err.Error()}
	if code == dErrors.CodeInternal {
		resp.Message = "Internal server error"
	}
	if code == dErrors.CodeValidation || code == dErrors.CodeBadRequest {
		resp.Field = dErrors.FieldOf(err)
	}
	WriteJSON(w, ToHTTPStatus(code), resp)
}

// ToHTTPStatus maps a domain error code to its HTTP status.
func ToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeBadRequest, dErrors.CodeValidation:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
