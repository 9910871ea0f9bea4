package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makom-backend/internal/domain"
	"makom-backend/pkg/logger"
	"makom-backend/pkg/supabase"
)

func newTestContactRepo(t *testing.T, handler http.HandlerFunc) ContactRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log, err := logger.New("error")
	require.NoError(t, err)

	return NewContactRepository(supabase.New(server.URL, "test-key", log))
}

func TestContactRepositoryInsert(t *testing.T) {
	t.Run("returns persisted row", func(t *testing.T) {
		repo := newTestContactRepo(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/rest/v1/contact_submissions", r.URL.Path)
			assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

			var payload map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "contact_form", payload["source"])
			// Omitted optionals must arrive as null, not empty strings
			assert.Nil(t, payload["phone"])
			assert.Nil(t, payload["subject"])

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[{"id":"abc-123","name":"A","email":"a@b.com","message":"hi","source":"contact_form","created_at":"2026-08-29T10:00:00Z"}]`))
		})

		sub := (&domain.ContactRequest{Name: "A", Email: "a@b.com", Message: "hi"}).Submission()
		saved, err := repo.Insert(context.Background(), sub)

		require.NoError(t, err)
		assert.Equal(t, "abc-123", saved.ID)
		require.NotNil(t, saved.CreatedAt)
	})

	t.Run("empty representation is an error", func(t *testing.T) {
		repo := newTestContactRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[]`))
		})

		sub := (&domain.ContactRequest{Name: "A", Email: "a@b.com", Message: "hi"}).Submission()
		_, err := repo.Insert(context.Background(), sub)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "returned no rows")
	})

	t.Run("backend failure", func(t *testing.T) {
		repo := newTestContactRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"permission denied"}`))
		})

		sub := (&domain.ContactRequest{Name: "A", Email: "a@b.com", Message: "hi"}).Submission()
		_, err := repo.Insert(context.Background(), sub)

		require.Error(t, err)
	})
}

func TestContactRepositoryListRecent(t *testing.T) {
	repo := newTestContactRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode([]domain.ContactSubmission{
			{ID: "b", Name: "Second"},
			{ID: "a", Name: "First"},
		})
	})

	rows, err := repo.ListRecent(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0].ID)
}
