package calendar

import (
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

// platform is the Platform value stamped on every Calendar record.
const platform = "Google Calendar"

// EventToCalendarEvent shapes a Calendar event into the hub's wire format.
// All-day events surface their date strings unchanged in Start/End.
func EventToCalendarEvent(event *calendar.Event) domain.CalendarEvent {
	start, end := extractEventTimes(event)

	return domain.CalendarEvent{
		Platform:      platform,
		EventID:       event.Id,
		Organizer:     organizerEmail(event),
		Attendees:     attendeeEmails(event.Attendees),
		StartTime:     start,
		EndTime:       end,
		Subject:       event.Summary,
		Description:   event.Description,
		Location:      event.Location,
		MeetingType:   meetingType(event),
		DateExtracted: time.Now().UTC(),
	}
}

// extractEventTimes extracts start and end times from an event.
// Timed events carry DateTime; all-day events only a Date.
func extractEventTimes(event *calendar.Event) (startTime, endTime string) {
	if event.Start != nil {
		if event.Start.DateTime != "" {
			startTime = event.Start.DateTime
		} else {
			startTime = event.Start.Date
		}
	}
	if event.End != nil {
		if event.End.DateTime != "" {
			endTime = event.End.DateTime
		} else {
			endTime = event.End.Date
		}
	}
	return startTime, endTime
}

// meetingType reports Virtual when the event carries a conference link.
func meetingType(event *calendar.Event) string {
	if event.HangoutLink != "" || event.ConferenceData != nil {
		return domain.MeetingVirtual
	}
	return domain.MeetingInPerson
}

func organizerEmail(event *calendar.Event) string {
	if event.Organizer == nil {
		return ""
	}
	return event.Organizer.Email
}

// attendeeEmails collects attendee emails, always returning a non-nil slice
// so the wire format shows [] rather than null.
func attendeeEmails(attendees []*calendar.EventAttendee) []string {
	emails := make([]string, 0, len(attendees))
	for _, a := range attendees {
		if a.Email != "" {
			emails = append(emails, a.Email)
		}
	}
	return emails
}
