// Package google provides shared infrastructure for the Google API
// extractors.
//
// This package contains common utilities used by the gmail, chat, calendar,
// and docs extractors including:
//   - OAuth client configuration loading from credentials.json
//   - TokenSource adapter to bridge the hub's TokenProvider to oauth2.TokenSource
//   - Service factories for creating Google API clients
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
// Each extractor uses this package to create authenticated API clients:
//
//	ts := google.NewTokenSource(ctx, tokenProvider)
//	svc, err := google.NewGmailService(ctx, ts)
//
// # OAuth2 Scopes
//
// The hub requests these scopes:
//   - https://www.googleapis.com/auth/userinfo.email (non-sensitive)
//   - https://www.googleapis.com/auth/gmail.readonly (restricted)
//   - https://www.googleapis.com/auth/chat.spaces.readonly (sensitive)
//   - https://www.googleapis.com/auth/chat.messages.readonly (sensitive)
//   - https://www.googleapis.com/auth/calendar.readonly (sensitive)
//   - https://www.googleapis.com/auth/documents.readonly (restricted)
//   - https://www.googleapis.com/auth/drive.readonly (restricted)
//
// For user-created internal apps, restricted scopes don't require verification.
package google
