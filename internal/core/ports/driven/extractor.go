package driven

import (
	"context"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

// GmailExtractor lists Gmail messages inside a time range.
type GmailExtractor interface {
	Extract(ctx context.Context, r domain.TimeRange) ([]domain.Email, error)
}

// ChatExtractor lists Google Chat messages across all accessible spaces.
type ChatExtractor interface {
	Extract(ctx context.Context, r domain.TimeRange) ([]domain.ChatMessage, error)
}

// CalendarExtractor lists events on the primary calendar.
type CalendarExtractor interface {
	Extract(ctx context.Context, r domain.TimeRange) ([]domain.CalendarEvent, error)
}

// DocsExtractor lists Google Docs modified inside a time range.
type DocsExtractor interface {
	Extract(ctx context.Context, r domain.TimeRange) ([]domain.DocActivity, error)
}
