package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"makom-backend/internal/domain"
	"makom-backend/pkg/supabase"
)

const contactTable = "contact_submissions"

// contactRepository persists contact submissions through PostgREST
type contactRepository struct {
	client *supabase.Client
}

// NewContactRepository creates a new contact repository
func NewContactRepository(client *supabase.Client) ContactRepository {
	return &contactRepository{client: client}
}

// Insert persists a new submission. PostgREST returns the inserted rows as an
// array; an empty array means the insert silently did nothing, which is
// reported as an error so the caller never claims success without a row.
func (r *contactRepository) Insert(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	var rows []domain.ContactSubmission
	if err := r.client.Insert(ctx, contactTable, sub, &rows); err != nil {
		return nil, fmt.Errorf("failed to insert contact submission: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert into %s returned no rows", contactTable)
	}
	return &rows[0], nil
}

// ListRecent returns the newest submissions, created_at descending
func (r *contactRepository) ListRecent(ctx context.Context, limit int) ([]domain.ContactSubmission, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "created_at.desc")
	query.Set("limit", strconv.Itoa(limit))

	var rows []domain.ContactSubmission
	if err := r.client.Select(ctx, contactTable, query, &rows); err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	if rows == nil {
		rows = []domain.ContactSubmission{}
	}
	return rows, nil
}
