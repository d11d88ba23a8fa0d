package domain

import "time"

// Run records one extraction pass against a Google service. Runs are kept
// for operational visibility ('workspacehub runs list').
type Run struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`
	// Service is the extractor that ran.
	Service Service `json:"service"`
	// Range describes the requested window, e.g. "since 2024-02-19T00:00:00Z".
	Range string `json:"range"`
	// ItemCount is the number of records returned.
	ItemCount int `json:"item_count"`
	// Duration is how long the extraction took.
	Duration time.Duration `json:"duration"`
	// Error holds the failure message, empty on success.
	Error string `json:"error,omitempty"`
	// StartedAt is when the extraction began.
	StartedAt time.Time `json:"started_at"`
}

// Succeeded returns true when the run completed without error.
func (r Run) Succeeded() bool {
	return r.Error == ""
}
