package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/rdrx/internal/logger"
	"github.com/sbilibin2017/rdrx/internal/middlewares"
	"github.com/sbilibin2017/rdrx/internal/services"
)

// ErrorResponse is the body of every failed API call.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	// default: false
	Success bool `json:"success"`

	// Human readable reason
	// default: Internal server error
	Message string `json:"message"`
}

// MessageResponse is the body of API calls that return no data.
// swagger:model MessageResponse
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: status < http.StatusBadRequest, Message: message})
}

// writeError maps a service error to its status code. Errors that are not a
// *services.Failure are logged and reported as internal.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var failure *services.Failure
	if !errors.As(err, &failure) || failureStatus(failure) == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.GetRequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeMessage(w, failureStatus(failure), failure.Message)
}

func failureStatus(f *services.Failure) int {
	switch {
	case errors.Is(f, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(f, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(f, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(f, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(f, services.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads the request body into dst. It answers 400 and returns
// false when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
