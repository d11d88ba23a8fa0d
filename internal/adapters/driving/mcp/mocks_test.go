package mcp

import (
	"context"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driving"
)

var _ driving.HubService = (*mockHubService)(nil)

// mockHubService returns canned results for the tool handler tests.
type mockHubService struct {
	emails   []domain.Email
	chats    []domain.ChatMessage
	events   []domain.CalendarEvent
	docs     []domain.DocActivity
	runs     []domain.Run
	err      error
	lastSeen domain.TimeRange
}

func (m *mockHubService) Gmail(_ context.Context, r domain.TimeRange) ([]domain.Email, error) {
	m.lastSeen = r
	return m.emails, m.err
}

func (m *mockHubService) Chats(_ context.Context, r domain.TimeRange) ([]domain.ChatMessage, error) {
	m.lastSeen = r
	return m.chats, m.err
}

func (m *mockHubService) Calendar(_ context.Context, r domain.TimeRange) ([]domain.CalendarEvent, error) {
	m.lastSeen = r
	return m.events, m.err
}

func (m *mockHubService) Docs(_ context.Context, r domain.TimeRange) ([]domain.DocActivity, error) {
	m.lastSeen = r
	return m.docs, m.err
}

func (m *mockHubService) Runs(_ context.Context, _ int) ([]domain.Run, error) {
	return m.runs, m.err
}
