package handler

import (
	"encoding/json"
	"net/http"

	apperrors "makom-backend/pkg/errors"
	"makom-backend/pkg/logger"
)

// errorEnvelope is the fixed failure shape for every endpoint
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}, log *logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Failed to encode response")
	}
}

// writeError writes the failure envelope with the given status and message
func writeError(w http.ResponseWriter, status int, message string, log *logger.Logger) {
	writeJSON(w, status, errorEnvelope{Success: false, Error: message}, log)
}

// writeServiceError translates a service error into the failure envelope.
// AppErrors carry their own status and client-safe message; anything else is
// collapsed to a generic 500 so backend detail never leaks.
func writeServiceError(w http.ResponseWriter, err error, log *logger.Logger) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		writeError(w, appErr.StatusCode, appErr.Message, log)
		return
	}
	log.WithError(err).Error("Unhandled service error")
	writeError(w, http.StatusInternalServerError, "Internal server error", log)
}
