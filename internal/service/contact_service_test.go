package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makom-backend/internal/domain"
	apperrors "makom-backend/pkg/errors"
	"makom-backend/pkg/logger"
)

type fakeContactRepo struct {
	insertErr   error
	inserted    *domain.ContactSubmission
	insertCalls int
	listRows    []domain.ContactSubmission
	listErr     error
}

func (f *fakeContactRepo) Insert(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	now := time.Now().UTC()
	saved := *sub
	saved.ID = "3f1d2a0e-7c44-4b1b-9a58-0f6f7b1a9c21"
	saved.CreatedAt = &now
	f.inserted = &saved
	return &saved, nil
}

func (f *fakeContactRepo) ListRecent(ctx context.Context, limit int) ([]domain.ContactSubmission, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listRows, nil
}

type fakeSyncer struct {
	err    error
	called chan *domain.ContactSubmission
}

func newFakeSyncer(err error) *fakeSyncer {
	return &fakeSyncer{err: err, called: make(chan *domain.ContactSubmission, 1)}
}

func (f *fakeSyncer) SyncContact(ctx context.Context, sub *domain.ContactSubmission) error {
	f.called <- sub
	return f.err
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error")
	require.NoError(t, err)
	return log
}

func TestContactServiceSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *domain.ContactRequest
		wantMsg string
	}{
		{
			name:    "missing name",
			req:     &domain.ContactRequest{Email: "a@b.com", Message: "hi"},
			wantMsg: "Name, email, and message are required",
		},
		{
			name:    "missing email",
			req:     &domain.ContactRequest{Name: "A", Message: "hi"},
			wantMsg: "Name, email, and message are required",
		},
		{
			name:    "missing message",
			req:     &domain.ContactRequest{Name: "A", Email: "a@b.com"},
			wantMsg: "Name, email, and message are required",
		},
		{
			name:    "malformed email",
			req:     &domain.ContactRequest{Name: "A", Email: "nope", Message: "hi"},
			wantMsg: "Invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeContactRepo{}
			svc := NewContactService(repo, nil, testLogger(t))

			saved, err := svc.Submit(context.Background(), tt.req)

			require.Error(t, err)
			assert.Nil(t, saved)

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, 400, appErr.StatusCode)
			assert.Equal(t, tt.wantMsg, appErr.Message)

			// Validation failures must never reach the backend
			assert.Zero(t, repo.insertCalls)
		})
	}
}

func TestContactServiceSubmitPersistenceFailure(t *testing.T) {
	repo := &fakeContactRepo{insertErr: errors.New("connection refused")}
	syncer := newFakeSyncer(nil)
	svc := NewContactService(repo, syncer, testLogger(t))

	saved, err := svc.Submit(context.Background(), &domain.ContactRequest{
		Name: "A", Email: "a@b.com", Message: "hi",
	})

	require.Error(t, err)
	assert.Nil(t, saved)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.StatusCode)
	assert.Equal(t, "Failed to save contact submission", appErr.Message)

	// The sync adapter only ever sees persisted rows
	select {
	case <-syncer.called:
		t.Fatal("syncer must not be invoked when persistence fails")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestContactServiceSubmitSuccess(t *testing.T) {
	repo := &fakeContactRepo{}
	syncer := newFakeSyncer(nil)
	svc := NewContactService(repo, syncer, testLogger(t))

	saved, err := svc.Submit(context.Background(), &domain.ContactRequest{
		Name: "A", Email: "a@b.com", Message: "hi",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, domain.ContactSourceForm, saved.Source)
	assert.Nil(t, saved.Phone)
	assert.Nil(t, saved.Subject)

	select {
	case forwarded := <-syncer.called:
		assert.Equal(t, saved.ID, forwarded.ID)
	case <-time.After(time.Second):
		t.Fatal("syncer was not invoked after a successful insert")
	}
}

func TestContactServiceSubmitSyncFailureIsInvisible(t *testing.T) {
	repo := &fakeContactRepo{}
	syncer := newFakeSyncer(errors.New("sheets quota exceeded"))
	svc := NewContactService(repo, syncer, testLogger(t))

	saved, err := svc.Submit(context.Background(), &domain.ContactRequest{
		Name: "A", Email: "a@b.com", Message: "hi",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	select {
	case <-syncer.called:
	case <-time.After(time.Second):
		t.Fatal("syncer was not invoked")
	}
}

func TestContactServiceSubmitWithoutSyncer(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, nil, testLogger(t))

	saved, err := svc.Submit(context.Background(), &domain.ContactRequest{
		Name: "A", Email: "a@b.com", Message: "hi",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
}

func TestContactServiceListRecent(t *testing.T) {
	t.Run("returns rows", func(t *testing.T) {
		rows := []domain.ContactSubmission{{ID: "1"}, {ID: "2"}}
		svc := NewContactService(&fakeContactRepo{listRows: rows}, nil, testLogger(t))

		got, err := svc.ListRecent(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("backend failure is generic", func(t *testing.T) {
		svc := NewContactService(&fakeContactRepo{listErr: errors.New("boom")}, nil, testLogger(t))

		_, err := svc.ListRecent(context.Background(), 10)
		require.Error(t, err)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 500, appErr.StatusCode)
		assert.Equal(t, "Failed to fetch contact submissions", appErr.Message)
	})
}
