package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateOnly is the short form accepted by every endpoint.
const dateOnly = "2006-01-02"

// TimeRange is an optional extraction window. A zero Start or End means
// that side of the window is unbounded.
//
// Date-only values carry inclusive-day semantics: a start of 2024-02-19
// means 2024-02-19T00:00:00Z and an end of 2024-02-19 covers the whole of
// that day.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// ParseTimeRange builds a TimeRange from the raw start_date and end_date
// query parameters. Either may be empty.
func ParseTimeRange(startDate, endDate string) (TimeRange, error) {
	var r TimeRange

	if startDate != "" {
		t, err := parseDate(startDate, false)
		if err != nil {
			return TimeRange{}, err
		}
		r.Start = t
	}

	if endDate != "" {
		t, err := parseDate(endDate, true)
		if err != nil {
			return TimeRange{}, err
		}
		r.End = t
	}

	if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		return TimeRange{}, ErrInvalidRange
	}

	return r, nil
}

// parseDate accepts YYYY-MM-DD or RFC3339. Date-only end values are pushed
// to the last instant of the day so the range is day-inclusive.
func parseDate(s string, isEnd bool) (time.Time, error) {
	if strings.Contains(s, "T") {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		return t.UTC(), nil
	}

	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if isEnd {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t.UTC(), nil
}

// IsZero returns true when neither side of the window is set.
func (r TimeRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether t falls inside the window.
func (r TimeRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// GmailQuery renders the window as Gmail search terms using epoch-second
// after:/before: operators. Returns "" for an unbounded window.
func (r TimeRange) GmailQuery() string {
	var terms []string
	if !r.Start.IsZero() {
		terms = append(terms, "after:"+strconv.FormatInt(r.Start.Unix(), 10))
	}
	if !r.End.IsZero() {
		terms = append(terms, "before:"+strconv.FormatInt(r.End.Unix(), 10))
	}
	return strings.Join(terms, " ")
}

// StartRFC3339 renders the start bound for APIs taking RFC3339 timestamps.
// Returns "" when unbounded.
func (r TimeRange) StartRFC3339() string {
	if r.Start.IsZero() {
		return ""
	}
	return r.Start.Format(time.RFC3339)
}

// EndRFC3339 renders the end bound for APIs taking RFC3339 timestamps.
// Returns "" when unbounded.
func (r TimeRange) EndRFC3339() string {
	if r.End.IsZero() {
		return ""
	}
	return r.End.Format(time.RFC3339)
}

// String renders the range for logs and run records.
func (r TimeRange) String() string {
	switch {
	case r.IsZero():
		return "all time"
	case r.Start.IsZero():
		return "until " + r.End.Format(time.RFC3339)
	case r.End.IsZero():
		return "since " + r.Start.Format(time.RFC3339)
	default:
		return r.Start.Format(time.RFC3339) + " to " + r.End.Format(time.RFC3339)
	}
}
