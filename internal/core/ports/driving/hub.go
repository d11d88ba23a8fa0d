package driving

import (
	"context"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

// HubService relays extraction requests to the configured Google services.
// Every operation accepts an optional time range and returns the shaped
// records in the hub's wire format.
type HubService interface {
	// Gmail lists Gmail messages in the range.
	Gmail(ctx context.Context, r domain.TimeRange) ([]domain.Email, error)

	// Chats lists Google Chat messages across all spaces in the range.
	Chats(ctx context.Context, r domain.TimeRange) ([]domain.ChatMessage, error)

	// Calendar lists primary-calendar events in the range.
	Calendar(ctx context.Context, r domain.TimeRange) ([]domain.CalendarEvent, error)

	// Docs lists Google Docs modified in the range.
	Docs(ctx context.Context, r domain.TimeRange) ([]domain.DocActivity, error)

	// Runs returns recent extraction runs, newest first.
	Runs(ctx context.Context, limit int) ([]domain.Run, error)
}
