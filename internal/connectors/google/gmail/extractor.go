// Package gmail extracts Gmail messages through the Gmail API.
package gmail

import (
	"context"
	"fmt"

	"google.golang.org/api/gmail/v1"

	"github.com/veldt-labs/workspacehub/internal/connectors/google"
	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driven"
	"github.com/veldt-labs/workspacehub/internal/logger"
)

// userID addresses the authenticated user in Gmail API calls.
const userID = "me"

// DefaultMaxResults caps how many messages one extraction returns.
const DefaultMaxResults = 100

// Ensure Extractor implements the driven port.
var _ driven.GmailExtractor = (*Extractor)(nil)

// Extractor lists Gmail messages in a time range and shapes them into
// the hub's wire format.
type Extractor struct {
	svc        *gmail.Service
	limiter    *google.RateLimiter
	maxResults int64
}

// NewExtractor creates a Gmail extractor. maxResults <= 0 uses the default.
func NewExtractor(svc *gmail.Service, limiter *google.RateLimiter, maxResults int64) *Extractor {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Extractor{
		svc:        svc,
		limiter:    limiter,
		maxResults: maxResults,
	}
}

// Extract lists message IDs matching the range, then fetches each message
// in full and shapes it. Pagination stops once maxResults IDs are collected.
func (e *Extractor) Extract(ctx context.Context, r domain.TimeRange) ([]domain.Email, error) {
	ids, err := e.listMessageIDs(ctx, r)
	if err != nil {
		return nil, err
	}
	logger.Debug("gmail: fetching %d messages", len(ids))

	emails := make([]domain.Email, 0, len(ids))
	for _, id := range ids {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		msg, err := e.svc.Users.Messages.Get(userID, id).Format("full").Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("getting message %s: %w", id, e.limiter.WrapError(err))
		}
		emails = append(emails, MessageToEmail(msg))
	}

	return emails, nil
}

// listMessageIDs pages through users.messages.list until maxResults IDs
// have been collected or the listing is exhausted.
func (e *Extractor) listMessageIDs(ctx context.Context, r domain.TimeRange) ([]string, error) {
	query := r.GmailQuery()

	var ids []string
	pageToken := ""
	for {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := e.svc.Users.Messages.List(userID).MaxResults(e.maxResults).Context(ctx)
		if query != "" {
			call = call.Q(query)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("listing messages: %w", e.limiter.WrapError(err))
		}

		for _, m := range resp.Messages {
			ids = append(ids, m.Id)
			if int64(len(ids)) >= e.maxResults {
				return ids, nil
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return ids, nil
		}
	}
}
