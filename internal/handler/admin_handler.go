package handler

import (
	"net/http"
	"strconv"

	"makom-backend/internal/domain"
	"makom-backend/internal/service"
	"makom-backend/pkg/logger"
)

const (
	defaultAdminListLimit = 50
	maxAdminListLimit     = 100
)

// AdminHandler serves the back-office read endpoints
type AdminHandler struct {
	contacts service.ContactService
	logger   *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(contacts service.ContactService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		contacts: contacts,
		logger:   log,
	}
}

// SubmissionListResponse is the success envelope for the admin listing
type SubmissionListResponse struct {
	Success     bool                       `json:"success"`
	Submissions []domain.ContactSubmission `json:"submissions"`
}

// ListContactSubmissions handles GET /api/admin/contact-submissions
func (h *AdminHandler) ListContactSubmissions(w http.ResponseWriter, r *http.Request) {
	limit := defaultAdminListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxAdminListLimit {
		limit = maxAdminListLimit
	}

	subs, err := h.contacts.ListRecent(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, SubmissionListResponse{
		Success:     true,
		Submissions: subs,
	}, h.logger)
}
