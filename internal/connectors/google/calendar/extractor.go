// Package calendar extracts events from the user's primary Google Calendar.
package calendar

import (
	"context"
	"fmt"

	"google.golang.org/api/calendar/v3"

	"github.com/veldt-labs/workspacehub/internal/connectors/google"
	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driven"
	"github.com/veldt-labs/workspacehub/internal/logger"
)

// primaryCalendarID addresses the authenticated user's default calendar.
const primaryCalendarID = "primary"

// DefaultMaxResults caps how many events one extraction returns.
const DefaultMaxResults = 100

// Ensure Extractor implements the driven port.
var _ driven.CalendarExtractor = (*Extractor)(nil)

// Extractor lists primary-calendar events in a time range, with recurring
// events expanded into single instances and ordered by start time.
type Extractor struct {
	svc        *calendar.Service
	limiter    *google.RateLimiter
	maxResults int64
}

// NewExtractor creates a Calendar extractor. maxResults <= 0 uses the default.
func NewExtractor(svc *calendar.Service, limiter *google.RateLimiter, maxResults int64) *Extractor {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Extractor{
		svc:        svc,
		limiter:    limiter,
		maxResults: maxResults,
	}
}

// Extract pages through events.list until maxResults events are collected
// or the listing is exhausted.
func (e *Extractor) Extract(ctx context.Context, r domain.TimeRange) ([]domain.CalendarEvent, error) {
	var events []domain.CalendarEvent
	pageToken := ""
	for {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := e.svc.Events.List(primaryCalendarID).
			MaxResults(e.maxResults).
			SingleEvents(true).
			OrderBy("startTime").
			Context(ctx)
		if min := r.StartRFC3339(); min != "" {
			call = call.TimeMin(min)
		}
		if max := r.EndRFC3339(); max != "" {
			call = call.TimeMax(max)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("listing events: %w", e.limiter.WrapError(err))
		}

		for _, event := range resp.Items {
			events = append(events, EventToCalendarEvent(event))
			if int64(len(events)) >= e.maxResults {
				logger.Debug("calendar: truncated at %d events", len(events))
				return events, nil
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return events, nil
		}
	}
}
