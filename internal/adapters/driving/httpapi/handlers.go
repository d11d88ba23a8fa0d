package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/veldt-labs/workspacehub/internal/connectors/google"
	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/logger"
)

// errorResponse is the JSON body returned on failure.
type errorResponse struct {
	Error string `json:"error"`
}

// handleInfo reports the service name and available endpoints.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "WorkspaceHub - Google service gateway",
		"status":  "running",
		"endpoints": map[string]string{
			"gmail":    "/api/gmail",
			"chats":    "/api/chats",
			"calendar": "/api/calendar",
			"docs":     "/api/docs",
			"runs":     "/api/runs",
		},
	})
}

func (s *Server) handleGmail(w http.ResponseWriter, r *http.Request) {
	timeRange, ok := timeRangeFromRequest(w, r)
	if !ok {
		return
	}

	emails, err := s.hub.Gmail(r.Context(), timeRange)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emails)
}

func (s *Server) handleChats(w http.ResponseWriter, r *http.Request) {
	timeRange, ok := timeRangeFromRequest(w, r)
	if !ok {
		return
	}

	messages, err := s.hub.Chats(r.Context(), timeRange)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	timeRange, ok := timeRangeFromRequest(w, r)
	if !ok {
		return
	}

	events, err := s.hub.Calendar(r.Context(), timeRange)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	timeRange, ok := timeRangeFromRequest(w, r)
	if !ok {
		return
	}

	activities, err := s.hub.Docs(r.Context(), timeRange)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	runs, err := s.hub.Runs(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

// timeRangeFromRequest parses the optional start_date/end_date query
// parameters. On failure it writes a 400 response and returns false.
func timeRangeFromRequest(w http.ResponseWriter, r *http.Request) (domain.TimeRange, bool) {
	timeRange, err := domain.ParseTimeRange(
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return domain.TimeRange{}, false
	}
	return timeRange, true
}

// writeError maps domain errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrAuthRequired),
		errors.Is(err, domain.ErrAuthExpired),
		errors.Is(err, domain.ErrTokenRefreshFailed),
		errors.Is(err, domain.ErrClientConfigMissing),
		errors.Is(err, domain.ErrClientConfigInvalid),
		errors.Is(err, domain.ErrUpstream),
		google.IsUnauthorized(err),
		google.IsForbidden(err):
		// The gateway cannot reach Google on the caller's behalf
		status = http.StatusBadGateway
	case errors.Is(err, domain.ErrRateLimited), google.IsRateLimited(err):
		status = http.StatusTooManyRequests
	case errors.Is(err, domain.ErrNotFound), google.IsNotFound(err):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		logger.Warn("request failed: %v", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// writeJSON serialises v and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encoding response: %v", err)
	}
}
