package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-finance-ledger/internal/logger"
	"github.com/sbilibin2017/gw-finance-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
	"github.com/sbilibin2017/gw-finance-ledger/internal/services"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Name of the invalid form field, set on validation errors
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps domain errors to a status code and JSON body.
// Anything unrecognized is logged and reported as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	if ve, ok := services.IsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ve.Error(), Field: ve.Field})
		return
	}

	switch {
	case errors.Is(err, services.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "Email already registered")
	case errors.Is(err, services.ErrDuplicateUsername):
		writeError(w, http.StatusConflict, "Username already taken")
	case errors.Is(err, services.ErrDuplicateContact):
		writeError(w, http.StatusConflict, "A message from this email was already received")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrInvalidResetToken):
		writeError(w, http.StatusBadRequest, "Invalid or expired reset token")
	default:
		logger.FromContext(r.Context()).Errorw("internal server error", "action", action, "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return false
	}
	return true
}

// identity returns the caller resolved by AuthMiddleware or writes 401.
func identity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	id, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return id, ok
}
