package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/calendar/v3"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

func TestEventToCalendarEvent(t *testing.T) {
	event := &calendar.Event{
		Id:          "evt-1",
		Summary:     "Planning",
		Description: "Quarterly planning session",
		Location:    "Room 4",
		Organizer:   &calendar.EventOrganizer{Email: "host@example.com"},
		Attendees: []*calendar.EventAttendee{
			{Email: "alice@example.com"},
			{Email: "bob@example.com"},
		},
		Start: &calendar.EventDateTime{DateTime: "2024-02-19T10:00:00Z"},
		End:   &calendar.EventDateTime{DateTime: "2024-02-19T11:00:00Z"},
	}

	got := EventToCalendarEvent(event)

	assert.Equal(t, "Google Calendar", got.Platform)
	assert.Equal(t, "evt-1", got.EventID)
	assert.Equal(t, "host@example.com", got.Organizer)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, got.Attendees)
	assert.Equal(t, "2024-02-19T10:00:00Z", got.StartTime)
	assert.Equal(t, "2024-02-19T11:00:00Z", got.EndTime)
	assert.Equal(t, "Planning", got.Subject)
	assert.Equal(t, "Quarterly planning session", got.Description)
	assert.Equal(t, "Room 4", got.Location)
	assert.Equal(t, domain.MeetingInPerson, got.MeetingType)
	assert.False(t, got.DateExtracted.IsZero())
}

func TestEventToCalendarEvent_AllDay(t *testing.T) {
	event := &calendar.Event{
		Id:    "evt-2",
		Start: &calendar.EventDateTime{Date: "2024-02-19"},
		End:   &calendar.EventDateTime{Date: "2024-02-20"},
	}

	got := EventToCalendarEvent(event)
	assert.Equal(t, "2024-02-19", got.StartTime)
	assert.Equal(t, "2024-02-20", got.EndTime)
}

func TestEventToCalendarEvent_MeetingType(t *testing.T) {
	tests := []struct {
		name  string
		event *calendar.Event
		want  string
	}{
		{
			name:  "hangout link is virtual",
			event: &calendar.Event{HangoutLink: "https://meet.google.com/abc"},
			want:  domain.MeetingVirtual,
		},
		{
			name:  "conference data is virtual",
			event: &calendar.Event{ConferenceData: &calendar.ConferenceData{ConferenceId: "abc"}},
			want:  domain.MeetingVirtual,
		},
		{
			name:  "neither is in-person",
			event: &calendar.Event{},
			want:  domain.MeetingInPerson,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EventToCalendarEvent(tt.event).MeetingType)
		})
	}
}

func TestEventToCalendarEvent_NoAttendeesIsEmptySlice(t *testing.T) {
	got := EventToCalendarEvent(&calendar.Event{Id: "evt-3"})
	assert.NotNil(t, got.Attendees)
	assert.Empty(t, got.Attendees)
}

func TestEventToCalendarEvent_AttendeeWithoutEmailSkipped(t *testing.T) {
	event := &calendar.Event{
		Attendees: []*calendar.EventAttendee{
			{DisplayName: "Resource Room"},
			{Email: "alice@example.com"},
		},
	}
	assert.Equal(t, []string{"alice@example.com"}, EventToCalendarEvent(event).Attendees)
}
