// Package respond writes JSON bodies and maps service errors to HTTP
// statuses. Every handler renders through it so error bodies stay uniform.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hsm-gustavo/smart-pantry/internal/common"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid credentials"`
	Message string `json:"message,omitempty" example:"Email or password is incorrect"`
}

func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, statusCode int, error string, message string) {
	JSON(w, statusCode, ErrorResponse{Error: error, Message: message})
}

// Status maps a service error onto an HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, common.ErrUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrArchiveDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FromError renders err with the status chosen by Status. Internal errors
// are reported with a generic message.
func FromError(w http.ResponseWriter, err error, message string) {
	status := Status(err)
	switch status {
	case http.StatusInternalServerError:
		Error(w, status, "server error", message)
	case http.StatusBadRequest:
		Error(w, status, "validation failed", message)
	case http.StatusConflict:
		Error(w, status, "conflict", message)
	case http.StatusUnauthorized:
		Error(w, status, "unauthorized", message)
	case http.StatusNotFound:
		Error(w, status, "not found", message)
	default:
		Error(w, status, http.StatusText(status), message)
	}
}
