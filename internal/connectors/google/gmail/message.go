package gmail

import (
	"encoding/base64"
	"strings"
	"time"

	"google.golang.org/api/gmail/v1"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

// platform is the Platform value stamped on every Gmail record.
const platform = "Gmail"

// MessageToEmail shapes a full-format Gmail message into an Email record.
// The body is the first text/plain part; messages without one fall back to
// the snippet.
func MessageToEmail(msg *gmail.Message) domain.Email {
	headers := headerMap(msg.Payload)

	body := extractTextBody(msg.Payload)
	if body == "" {
		body = msg.Snippet
	}

	return domain.Email{
		Platform:       platform,
		EmailID:        msg.Id,
		SentAt:         headers["date"],
		From:           headers["from"],
		To:             headers["to"],
		ConversationID: msg.ThreadId,
		ReplyTo:        headers["reply-to"],
		Subject:        headers["subject"],
		FullBody:       body,
		DateExtracted:  time.Now().UTC(),
	}
}

// headerMap indexes payload headers by lower-cased name.
func headerMap(payload *gmail.MessagePart) map[string]string {
	headers := make(map[string]string)
	if payload == nil {
		return headers
	}
	for _, h := range payload.Headers {
		headers[strings.ToLower(h.Name)] = h.Value
	}
	return headers
}

// extractTextBody walks the payload tree for the first text/plain part.
// Multipart containers (multipart/alternative, multipart/mixed) are
// descended into depth-first.
func extractTextBody(part *gmail.MessagePart) string {
	if part == nil {
		return ""
	}

	if part.MimeType == "text/plain" && part.Body != nil && part.Body.Data != "" {
		return decodeBody(part.Body.Data)
	}

	for _, p := range part.Parts {
		if body := extractTextBody(p); body != "" {
			return body
		}
	}

	// Single-part messages carry the body directly on the payload.
	if len(part.Parts) == 0 && part.Body != nil && part.Body.Data != "" {
		return decodeBody(part.Body.Data)
	}

	return ""
}

// decodeBody decodes Gmail's base64url body data, with and without padding.
func decodeBody(data string) string {
	if b, err := base64.URLEncoding.DecodeString(data); err == nil {
		return string(b)
	}
	if b, err := base64.RawURLEncoding.DecodeString(data); err == nil {
		return string(b)
	}
	return ""
}
