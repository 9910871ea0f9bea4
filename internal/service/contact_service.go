package service

import (
	"context"
	"time"

	"makom-backend/internal/domain"
	"makom-backend/internal/repository"
	apperrors "makom-backend/pkg/errors"
	"makom-backend/pkg/logger"
)

// syncTimeout bounds the detached spreadsheet forwarding. One attempt, no
// retries; a submission that misses the sheet is still in the database.
const syncTimeout = 10 * time.Second

// contactService implements ContactService
type contactService struct {
	repo   repository.ContactRepository
	syncer ContactSyncer
	logger *logger.Logger
}

// NewContactService creates a new contact service. syncer may be nil when
// spreadsheet forwarding is not configured.
func NewContactService(repo repository.ContactRepository, syncer ContactSyncer, log *logger.Logger) ContactService {
	return &contactService{
		repo:   repo,
		syncer: syncer,
		logger: log,
	}
}

// Submit validates, persists and forwards a contact submission. The forward
// runs in a detached goroutine with its own context, so the caller's
// response never waits on it and never observes its failure.
func (s *contactService) Submit(ctx context.Context, req *domain.ContactRequest) (*domain.ContactSubmission, error) {
	if err := domain.ValidateContactRequest(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	saved, err := s.repo.Insert(ctx, req.Submission())
	if err != nil {
		s.logger.WithError(err).Error("Failed to save contact submission")
		return nil, apperrors.NewInternalError("Failed to save contact submission", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"submission_id": saved.ID,
		"source":        saved.Source,
	}).Info("Contact submission saved")

	if s.syncer != nil {
		go s.forward(saved)
	}

	return saved, nil
}

// ListRecent returns the newest submissions for the admin back-office
func (s *contactService) ListRecent(ctx context.Context, limit int) ([]domain.ContactSubmission, error) {
	subs, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list contact submissions")
		return nil, apperrors.NewInternalError("Failed to fetch contact submissions", err)
	}
	return subs, nil
}

// forward pushes one submission to the spreadsheet. It owns its context and
// error channel: outcomes are logged and go nowhere else.
func (s *contactService) forward(sub *domain.ContactSubmission) {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	if err := s.syncer.SyncContact(ctx, sub); err != nil {
		s.logger.WithError(err).WithField("submission_id", sub.ID).Warn("Spreadsheet sync failed")
		return
	}

	s.logger.WithField("submission_id", sub.ID).Debug("Submission forwarded to spreadsheet")
}
