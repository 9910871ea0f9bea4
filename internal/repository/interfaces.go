package repository

import (
	"context"

	"makom-backend/internal/domain"
)

// ContactRepository defines the interface for contact submission persistence
type ContactRepository interface {
	// Insert persists a new submission and returns the stored row, id and
	// timestamps assigned by the backend
	Insert(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error)

	// ListRecent returns the newest submissions, created_at descending
	ListRecent(ctx context.Context, limit int) ([]domain.ContactSubmission, error)
}

// EventRepository defines the interface for event read operations
type EventRepository interface {
	// ListActive returns all active events ordered by date ascending
	ListActive(ctx context.Context) ([]domain.Event, error)

	// GetActiveBySlug returns the active event with the given slug, or
	// ErrNotFound when no such row exists
	GetActiveBySlug(ctx context.Context, slug string) (*domain.Event, error)

	// ListSponsorships returns the sponsorship tiers for one event ordered
	// by price descending
	ListSponsorships(ctx context.Context, eventID int64) ([]domain.EventSponsorship, error)
}
