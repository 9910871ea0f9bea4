package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makom-backend/internal/domain"
	apperrors "makom-backend/pkg/errors"
)

func TestAdminHandlerListContactSubmissions(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubContactService{list: []domain.ContactSubmission{
			{ID: "b", Name: "Second", Email: "b@x.com", Message: "later"},
			{ID: "a", Name: "First", Email: "a@x.com", Message: "earlier"},
		}}
		h := NewAdminHandler(svc, testLogger(t))

		rec := httptest.NewRecorder()
		h.ListContactSubmissions(rec, httptest.NewRequest(http.MethodGet, "/api/admin/contact-submissions", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var got struct {
			Success     bool                       `json:"success"`
			Submissions []domain.ContactSubmission `json:"submissions"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.Success)
		require.Len(t, got.Submissions, 2)
		assert.Equal(t, "b", got.Submissions[0].ID)
	})

	t.Run("backend failure", func(t *testing.T) {
		svc := &stubContactService{listErr: apperrors.NewInternalError("Failed to fetch contact submissions", nil)}
		h := NewAdminHandler(svc, testLogger(t))

		rec := httptest.NewRecorder()
		h.ListContactSubmissions(rec, httptest.NewRequest(http.MethodGet, "/api/admin/contact-submissions", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"success":false,"error":"Failed to fetch contact submissions"}`, rec.Body.String())
	})
}
