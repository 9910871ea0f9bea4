package service

import (
	"context"

	"makom-backend/internal/domain"
)

// ContactService defines the interface for contact-form operations
type ContactService interface {
	// Submit validates and persists a contact submission, then forwards it
	// to the configured spreadsheet without waiting for the result
	Submit(ctx context.Context, req *domain.ContactRequest) (*domain.ContactSubmission, error)

	// ListRecent returns the newest submissions for the admin back-office
	ListRecent(ctx context.Context, limit int) ([]domain.ContactSubmission, error)
}

// EventService defines the interface for event read operations
type EventService interface {
	// List returns active events partitioned into upcoming and past
	List(ctx context.Context) (*domain.EventList, error)

	// GetBySlug returns one active event with its sponsorship tiers
	GetBySlug(ctx context.Context, slug string) (*domain.EventDetail, error)
}

// ContactSyncer forwards a persisted submission to an external destination.
// Calls are best-effort; failures are logged by the caller and never reach
// the HTTP response.
type ContactSyncer interface {
	SyncContact(ctx context.Context, sub *domain.ContactSubmission) error
}
