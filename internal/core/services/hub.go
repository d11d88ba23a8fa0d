package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driven"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driving"
	"github.com/veldt-labs/workspacehub/internal/logger"
)

// Ensure HubService implements the interface.
var _ driving.HubService = (*HubService)(nil)

// HubService relays extraction requests to the Google service extractors
// and records a run for each one. A nil RunStore disables run history.
type HubService struct {
	gmail    driven.GmailExtractor
	chat     driven.ChatExtractor
	calendar driven.CalendarExtractor
	docs     driven.DocsExtractor
	runs     driven.RunStore
}

// HubPorts bundles the dependencies of the hub service.
type HubPorts struct {
	Gmail    driven.GmailExtractor
	Chat     driven.ChatExtractor
	Calendar driven.CalendarExtractor
	Docs     driven.DocsExtractor
	Runs     driven.RunStore
}

// NewHubService creates a hub service over the given extractors.
func NewHubService(ports HubPorts) *HubService {
	return &HubService{
		gmail:    ports.Gmail,
		chat:     ports.Chat,
		calendar: ports.Calendar,
		docs:     ports.Docs,
		runs:     ports.Runs,
	}
}

// Gmail lists Gmail messages in the range.
func (s *HubService) Gmail(ctx context.Context, r domain.TimeRange) ([]domain.Email, error) {
	if s.gmail == nil {
		return nil, domain.ErrAuthRequired
	}
	started := time.Now()
	emails, err := s.gmail.Extract(ctx, r)
	s.record(ctx, domain.ServiceGmail, r, len(emails), started, err)
	if err != nil {
		return nil, err
	}
	if emails == nil {
		emails = []domain.Email{}
	}
	return emails, nil
}

// Chats lists Google Chat messages across all spaces in the range.
func (s *HubService) Chats(ctx context.Context, r domain.TimeRange) ([]domain.ChatMessage, error) {
	if s.chat == nil {
		return nil, domain.ErrAuthRequired
	}
	started := time.Now()
	messages, err := s.chat.Extract(ctx, r)
	s.record(ctx, domain.ServiceChat, r, len(messages), started, err)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	return messages, nil
}

// Calendar lists primary-calendar events in the range.
func (s *HubService) Calendar(ctx context.Context, r domain.TimeRange) ([]domain.CalendarEvent, error) {
	if s.calendar == nil {
		return nil, domain.ErrAuthRequired
	}
	started := time.Now()
	events, err := s.calendar.Extract(ctx, r)
	s.record(ctx, domain.ServiceCalendar, r, len(events), started, err)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.CalendarEvent{}
	}
	return events, nil
}

// Docs lists Google Docs modified in the range.
func (s *HubService) Docs(ctx context.Context, r domain.TimeRange) ([]domain.DocActivity, error) {
	if s.docs == nil {
		return nil, domain.ErrAuthRequired
	}
	started := time.Now()
	activity, err := s.docs.Extract(ctx, r)
	s.record(ctx, domain.ServiceDocs, r, len(activity), started, err)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		activity = []domain.DocActivity{}
	}
	return activity, nil
}

// Runs returns recent extraction runs, newest first.
func (s *HubService) Runs(ctx context.Context, limit int) ([]domain.Run, error) {
	if s.runs == nil {
		return []domain.Run{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	return s.runs.List(ctx, limit)
}

// record persists a run. Failures to record never fail the extraction.
func (s *HubService) record(ctx context.Context, svc domain.Service, r domain.TimeRange, count int, started time.Time, extractErr error) {
	if s.runs == nil {
		return
	}

	run := domain.Run{
		ID:        uuid.New().String(),
		Service:   svc,
		Range:     r.String(),
		ItemCount: count,
		Duration:  time.Since(started),
		StartedAt: started,
	}
	if extractErr != nil {
		run.Error = extractErr.Error()
		run.ItemCount = 0
	}

	if err := s.runs.Record(ctx, run); err != nil {
		logger.Warn("recording %s run: %v", svc, err)
	}
}
