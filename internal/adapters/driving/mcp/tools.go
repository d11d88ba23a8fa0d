package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

// RangeInput is the shared input schema for the extraction tools.
type RangeInput struct {
	StartDate string `json:"start_date,omitempty" jsonschema:"start of the range, YYYY-MM-DD or RFC 3339"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"end of the range, YYYY-MM-DD or RFC 3339"`
}

// GmailOutput is the output schema for the get_gmail tool.
type GmailOutput struct {
	Emails []domain.Email `json:"emails"`
	Count  int            `json:"count"`
}

// ChatsOutput is the output schema for the get_chats tool.
type ChatsOutput struct {
	Messages []domain.ChatMessage `json:"messages"`
	Count    int                  `json:"count"`
}

// CalendarOutput is the output schema for the get_calendar tool.
type CalendarOutput struct {
	Events []domain.CalendarEvent `json:"events"`
	Count  int                    `json:"count"`
}

// DocsOutput is the output schema for the get_docs tool.
type DocsOutput struct {
	Activities []domain.DocActivity `json:"activities"`
	Count      int                  `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_gmail",
		Description: "Fetch Gmail messages, optionally restricted to a date range",
	}, s.handleGmail)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_chats",
		Description: "Fetch Google Chat messages across all spaces, optionally restricted to a date range",
	}, s.handleChats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_calendar",
		Description: "Fetch Google Calendar events from the primary calendar, optionally restricted to a date range",
	}, s.handleCalendar)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_docs",
		Description: "Fetch Google Docs modification activity, optionally restricted to a date range",
	}, s.handleDocs)
}

// handleGmail handles the get_gmail tool invocation.
func (s *Server) handleGmail(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RangeInput,
) (*mcp.CallToolResult, GmailOutput, error) {
	timeRange, err := domain.ParseTimeRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, GmailOutput{}, err
	}

	emails, err := s.hub.Gmail(ctx, timeRange)
	if err != nil {
		return nil, GmailOutput{}, err
	}

	return nil, GmailOutput{Emails: emails, Count: len(emails)}, nil
}

// handleChats handles the get_chats tool invocation.
func (s *Server) handleChats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RangeInput,
) (*mcp.CallToolResult, ChatsOutput, error) {
	timeRange, err := domain.ParseTimeRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, ChatsOutput{}, err
	}

	messages, err := s.hub.Chats(ctx, timeRange)
	if err != nil {
		return nil, ChatsOutput{}, err
	}

	return nil, ChatsOutput{Messages: messages, Count: len(messages)}, nil
}

// handleCalendar handles the get_calendar tool invocation.
func (s *Server) handleCalendar(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RangeInput,
) (*mcp.CallToolResult, CalendarOutput, error) {
	timeRange, err := domain.ParseTimeRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, CalendarOutput{}, err
	}

	events, err := s.hub.Calendar(ctx, timeRange)
	if err != nil {
		return nil, CalendarOutput{}, err
	}

	return nil, CalendarOutput{Events: events, Count: len(events)}, nil
}

// handleDocs handles the get_docs tool invocation.
func (s *Server) handleDocs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RangeInput,
) (*mcp.CallToolResult, DocsOutput, error) {
	timeRange, err := domain.ParseTimeRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, DocsOutput{}, err
	}

	activities, err := s.hub.Docs(ctx, timeRange)
	if err != nil {
		return nil, DocsOutput{}, err
	}

	return nil, DocsOutput{Activities: activities, Count: len(activities)}, nil
}
