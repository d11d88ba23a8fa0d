// Package docs extracts Google Docs modification activity through the
// Drive API's file listing.
package docs

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/veldt-labs/workspacehub/internal/connectors/google"
	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driven"
	"github.com/veldt-labs/workspacehub/internal/logger"
)

// documentMimeType selects Google Docs documents in Drive queries.
const documentMimeType = "application/vnd.google-apps.document"

// listFields projects only what the activity record needs.
const listFields = "nextPageToken, files(id,name,modifiedTime,lastModifyingUser)"

// DefaultMaxResults caps how many records one extraction returns.
const DefaultMaxResults = 100

// Ensure Extractor implements the driven port.
var _ driven.DocsExtractor = (*Extractor)(nil)

// Extractor lists Google Docs modified in a time range, newest first.
type Extractor struct {
	svc        *drive.Service
	limiter    *google.RateLimiter
	maxResults int64
}

// NewExtractor creates a Docs extractor. maxResults <= 0 uses the default.
func NewExtractor(svc *drive.Service, limiter *google.RateLimiter, maxResults int64) *Extractor {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Extractor{
		svc:        svc,
		limiter:    limiter,
		maxResults: maxResults,
	}
}

// Extract pages through files.list with a modifiedTime query until
// maxResults records are collected or the listing is exhausted.
func (e *Extractor) Extract(ctx context.Context, r domain.TimeRange) ([]domain.DocActivity, error) {
	query := BuildQuery(r)
	logger.Debug("docs: query %q", query)

	var activity []domain.DocActivity
	pageToken := ""
	for {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := e.svc.Files.List().
			Q(query).
			PageSize(e.maxResults).
			Fields(googleapi.Field(listFields)).
			OrderBy("modifiedTime desc").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("listing files: %w", e.limiter.WrapError(err))
		}

		for _, file := range resp.Files {
			activity = append(activity, FileToActivity(file))
			if int64(len(activity)) >= e.maxResults {
				return activity, nil
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return activity, nil
		}
	}
}

// BuildQuery renders the Drive search query for documents modified in the
// range.
func BuildQuery(r domain.TimeRange) string {
	parts := []string{fmt.Sprintf("mimeType='%s'", documentMimeType)}
	if min := r.StartRFC3339(); min != "" {
		parts = append(parts, fmt.Sprintf("modifiedTime >= '%s'", min))
	}
	if max := r.EndRFC3339(); max != "" {
		parts = append(parts, fmt.Sprintf("modifiedTime <= '%s'", max))
	}
	return strings.Join(parts, " and ")
}
