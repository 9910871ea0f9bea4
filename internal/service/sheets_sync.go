package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"makom-backend/internal/domain"
	"makom-backend/pkg/logger"
)

// sheetsSync appends persisted contact submissions to a Google Sheets
// spreadsheet, one row per submission.
type sheetsSync struct {
	srv           *sheetsv4.Service
	spreadsheetID string
	sheetName     string
	logger        *logger.Logger
}

// NewSheetsSync creates a ContactSyncer backed by the Google Sheets API
func NewSheetsSync(ctx context.Context, credentialsFile, spreadsheetID, sheetName string, log *logger.Logger) (ContactSyncer, error) {
	if _, err := os.Stat(credentialsFile); err != nil {
		return nil, fmt.Errorf("service account json: %w", err)
	}

	srv, err := sheetsv4.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &sheetsSync{
		srv:           srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        log,
	}, nil
}

// SyncContact appends one submission as a spreadsheet row. A single attempt;
// the caller decides what to do with the error (it logs and moves on).
func (s *sheetsSync) SyncContact(ctx context.Context, sub *domain.ContactSubmission) error {
	createdAt := ""
	if sub.CreatedAt != nil {
		createdAt = sub.CreatedAt.Format(time.RFC3339)
	}

	row := []interface{}{
		createdAt,
		sub.Name,
		sub.Email,
		stringValue(sub.Phone),
		stringValue(sub.Subject),
		sub.Message,
		sub.Source,
	}

	vr := &sheetsv4.ValueRange{Values: [][]interface{}{row}}
	_, err := s.srv.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetName+"!A:G", vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to spreadsheet: %w", err)
	}
	return nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
