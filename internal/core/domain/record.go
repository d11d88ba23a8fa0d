package domain

import "time"

// Service identifies one of the Google services the hub extracts from.
type Service string

const (
	// ServiceGmail is the Gmail message extractor.
	ServiceGmail Service = "gmail"
	// ServiceChat is the Google Chat message extractor.
	ServiceChat Service = "chat"
	// ServiceCalendar is the Google Calendar event extractor.
	ServiceCalendar Service = "calendar"
	// ServiceDocs is the Google Docs activity extractor.
	ServiceDocs Service = "docs"
)

// Services lists every extractable service in endpoint order.
var Services = []Service{ServiceGmail, ServiceChat, ServiceCalendar, ServiceDocs}

// Valid returns true for a known service name.
func (s Service) Valid() bool {
	switch s {
	case ServiceGmail, ServiceChat, ServiceCalendar, ServiceDocs:
		return true
	}
	return false
}

// The JSON field names below are the hub's wire format. Consumers depend on
// them, so they use the historical Title_Case keys rather than snake_case.

// Email is one extracted Gmail message.
type Email struct {
	Platform       string    `json:"Platform"`
	EmailID        string    `json:"Email_ID"`
	SentAt         string    `json:"Sent_At"`
	From           string    `json:"From"`
	To             string    `json:"To"`
	ConversationID string    `json:"Conversation_ID"`
	ReplyTo        string    `json:"Reply_To"`
	Subject        string    `json:"Subject"`
	FullBody       string    `json:"Full_Body"`
	DateExtracted  time.Time `json:"Date_Extracted"`
}

// ChatMessage is one extracted Google Chat message. Unlike the other
// record types it carries no extraction timestamp; its wire format ends
// at Thread_ID.
type ChatMessage struct {
	Platform  string `json:"Platform"`
	ChatID    string `json:"Chat_ID"`
	From      string `json:"From"`
	Channel   string `json:"Channel"`
	Message   string `json:"Message"`
	Timestamp string `json:"Timestamp"`
	ThreadID  string `json:"Thread_ID"`
}

// CalendarEvent is one extracted Google Calendar event.
type CalendarEvent struct {
	Platform      string    `json:"Platform"`
	EventID       string    `json:"Event_ID"`
	Organizer     string    `json:"Organizer"`
	Attendees     []string  `json:"Attendees"`
	StartTime     string    `json:"Start_Time"`
	EndTime       string    `json:"End_Time"`
	Subject       string    `json:"Subject"`
	Description   string    `json:"Description"`
	Location      string    `json:"Location"`
	MeetingType   string    `json:"Meeting_Type"`
	DateExtracted time.Time `json:"Date_Extracted"`
}

// Meeting types reported for calendar events.
const (
	// MeetingVirtual marks events carrying a conference link.
	MeetingVirtual = "Virtual"
	// MeetingInPerson marks events without one.
	MeetingInPerson = "In-person"
)

// DocActivity is one extracted Google Docs modification record.
type DocActivity struct {
	Platform      string    `json:"Platform"`
	ActivityID    string    `json:"Activity_ID"`
	User          string    `json:"User"`
	FileType      string    `json:"File_Type"`
	Timestamp     string    `json:"Timestamp"`
	DateExtracted time.Time `json:"Date_Extracted"`
}
