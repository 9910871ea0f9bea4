package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"makom-backend/internal/domain"
	"makom-backend/pkg/supabase"
)

const (
	eventTable       = "events"
	sponsorshipTable = "event_sponsorships"
)

// eventRepository reads events through PostgREST. Events are created and
// updated out-of-band; this repository never writes.
type eventRepository struct {
	client *supabase.Client
}

// NewEventRepository creates a new event repository
func NewEventRepository(client *supabase.Client) EventRepository {
	return &eventRepository{client: client}
}

// ListActive returns all active events ordered by date ascending
func (r *eventRepository) ListActive(ctx context.Context) ([]domain.Event, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("active", "eq.true")
	query.Set("order", "date.asc")

	var events []domain.Event
	if err := r.client.Select(ctx, eventTable, query, &events); err != nil {
		return nil, fmt.Errorf("failed to list active events: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}

// GetActiveBySlug returns the active event with the given slug
func (r *eventRepository) GetActiveBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("slug", "eq."+slug)
	query.Set("active", "eq.true")
	query.Set("limit", "1")

	var events []domain.Event
	if err := r.client.Select(ctx, eventTable, query, &events); err != nil {
		return nil, fmt.Errorf("failed to get event by slug: %w", err)
	}
	if len(events) == 0 {
		return nil, ErrNotFound
	}
	return &events[0], nil
}

// ListSponsorships returns the sponsorship tiers for one event ordered by
// price descending. Ties keep the backend-assigned order.
func (r *eventRepository) ListSponsorships(ctx context.Context, eventID int64) ([]domain.EventSponsorship, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("event_id", "eq."+strconv.FormatInt(eventID, 10))
	query.Set("order", "price.desc")

	var tiers []domain.EventSponsorship
	if err := r.client.Select(ctx, sponsorshipTable, query, &tiers); err != nil {
		return nil, fmt.Errorf("failed to list sponsorships: %w", err)
	}
	if tiers == nil {
		tiers = []domain.EventSponsorship{}
	}
	return tiers, nil
}
