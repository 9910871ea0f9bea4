package handler

import (
	"encoding/json"
	"net/http"

	"makom-backend/internal/domain"
	"makom-backend/internal/service"
	"makom-backend/pkg/logger"
)

// ContactHandler handles contact-form HTTP requests
type ContactHandler struct {
	service service.ContactService
	logger  *logger.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(svc service.ContactService, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		service: svc,
		logger:  log,
	}
}

// SubmitResponse is the success envelope for a stored submission
type SubmitResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// Submit handles POST /api/contact. The body is decoded strictly: unknown
// fields and malformed JSON fail closed before validation runs.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.logger.WithError(err).Error("Failed to decode contact request body")
		writeError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	saved, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, SubmitResponse{Success: true, ID: saved.ID}, h.logger)
}
