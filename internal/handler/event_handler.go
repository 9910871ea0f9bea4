package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"makom-backend/internal/domain"
	"makom-backend/internal/service"
	"makom-backend/pkg/logger"
)

// EventHandler handles event HTTP requests
type EventHandler struct {
	service service.EventService
	logger  *logger.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(svc service.EventService, log *logger.Logger) *EventHandler {
	return &EventHandler{
		service: svc,
		logger:  log,
	}
}

// EventListResponse is the success envelope for the partitioned listing
type EventListResponse struct {
	Success  bool           `json:"success"`
	Upcoming []domain.Event `json:"upcoming"`
	Past     []domain.Event `json:"past"`
}

// EventDetailResponse is the success envelope for a single event
type EventDetailResponse struct {
	Success      bool                      `json:"success"`
	Event        domain.Event              `json:"event"`
	Sponsorships []domain.EventSponsorship `json:"sponsorships"`
}

// List handles GET /api/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, EventListResponse{
		Success:  true,
		Upcoming: list.Upcoming,
		Past:     list.Past,
	}, h.logger)
}

// GetBySlug handles GET /api/events/{slug}
func (h *EventHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	detail, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, EventDetailResponse{
		Success:      true,
		Event:        detail.Event,
		Sponsorships: detail.Sponsorships,
	}, h.logger)
}
