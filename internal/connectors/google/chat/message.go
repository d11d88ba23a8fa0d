package chat

import (
	"time"

	"google.golang.org/api/chat/v1"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

// platform is the Platform value stamped on every Chat record.
const platform = "Google Chat"

// cardPlaceholder stands in for messages whose content is a card, not text.
const cardPlaceholder = "Card content (not plain text)"

// MessageToChatMessage shapes a Chat message into the hub's wire format.
func MessageToChatMessage(msg *chat.Message, space *chat.Space) domain.ChatMessage {
	return domain.ChatMessage{
		Platform:  platform,
		ChatID:    msg.Name,
		From:      senderName(msg),
		Channel:   channelName(msg, space),
		Message:   messageText(msg),
		Timestamp: msg.CreateTime,
		ThreadID:  threadName(msg),
	}
}

// InRange reports whether the message's createTime falls inside the range.
// Messages with an unparseable createTime are excluded from bounded ranges.
func InRange(msg *chat.Message, r domain.TimeRange) bool {
	if r.IsZero() {
		return true
	}
	created, err := time.Parse(time.RFC3339Nano, msg.CreateTime)
	if err != nil {
		return false
	}
	return r.Contains(created)
}

// messageText extracts the plain text, substituting a placeholder for
// card-only messages.
func messageText(msg *chat.Message) string {
	if msg.Text != "" {
		return msg.Text
	}
	if len(msg.CardsV2) > 0 {
		return cardPlaceholder
	}
	return ""
}

// senderName prefers the display name and falls back to the resource name.
func senderName(msg *chat.Message) string {
	if msg.Sender == nil {
		return ""
	}
	if msg.Sender.DisplayName != "" {
		return msg.Sender.DisplayName
	}
	return msg.Sender.Name
}

// channelName prefers the display name of the space the message was listed
// from; direct messages have no display name.
func channelName(msg *chat.Message, space *chat.Space) string {
	if msg.Space != nil && msg.Space.DisplayName != "" {
		return msg.Space.DisplayName
	}
	if space != nil {
		return space.DisplayName
	}
	return ""
}

func threadName(msg *chat.Message) string {
	if msg.Thread == nil {
		return ""
	}
	return msg.Thread.Name
}
