// Package chat extracts Google Chat messages through the Chat API.
package chat

import (
	"context"
	"fmt"

	"google.golang.org/api/chat/v1"

	"github.com/veldt-labs/workspacehub/internal/connectors/google"
	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driven"
	"github.com/veldt-labs/workspacehub/internal/logger"
)

// DefaultMaxResults caps how many messages one extraction returns.
const DefaultMaxResults = 100

// Ensure Extractor implements the driven port.
var _ driven.ChatExtractor = (*Extractor)(nil)

// Extractor lists Chat messages across every space the authenticated user
// can access, filtered by creation time.
type Extractor struct {
	svc        *chat.Service
	limiter    *google.RateLimiter
	maxResults int64
}

// NewExtractor creates a Chat extractor. maxResults <= 0 uses the default.
func NewExtractor(svc *chat.Service, limiter *google.RateLimiter, maxResults int64) *Extractor {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Extractor{
		svc:        svc,
		limiter:    limiter,
		maxResults: maxResults,
	}
}

// Extract walks all spaces and collects messages whose createTime falls
// inside the range, up to maxResults across spaces.
func (e *Extractor) Extract(ctx context.Context, r domain.TimeRange) ([]domain.ChatMessage, error) {
	spaces, err := e.listSpaces(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("chat: scanning %d spaces", len(spaces))

	var messages []domain.ChatMessage
	for _, space := range spaces {
		spaceMessages, err := e.listMessages(ctx, space, r, e.maxResults-int64(len(messages)))
		if err != nil {
			return nil, err
		}
		messages = append(messages, spaceMessages...)
		if int64(len(messages)) >= e.maxResults {
			return messages[:e.maxResults], nil
		}
	}

	return messages, nil
}

// listSpaces pages through spaces.list.
func (e *Extractor) listSpaces(ctx context.Context) ([]*chat.Space, error) {
	var spaces []*chat.Space
	pageToken := ""
	for {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := e.svc.Spaces.List().Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("listing spaces: %w", e.limiter.WrapError(err))
		}

		spaces = append(spaces, resp.Spaces...)
		pageToken = resp.NextPageToken
		if pageToken == "" {
			return spaces, nil
		}
	}
}

// listMessages pages through one space's messages, keeping those inside
// the range, up to remaining records.
func (e *Extractor) listMessages(ctx context.Context, space *chat.Space, r domain.TimeRange, remaining int64) ([]domain.ChatMessage, error) {
	var messages []domain.ChatMessage
	pageToken := ""
	for {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := e.svc.Spaces.Messages.List(space.Name).PageSize(e.maxResults).Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("listing messages in %s: %w", space.Name, e.limiter.WrapError(err))
		}

		for _, msg := range resp.Messages {
			if !InRange(msg, r) {
				continue
			}
			messages = append(messages, MessageToChatMessage(msg, space))
			if int64(len(messages)) >= remaining {
				return messages, nil
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return messages, nil
		}
	}
}
