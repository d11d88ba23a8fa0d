package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

// fakeGmail returns canned emails or an error.
type fakeGmail struct {
	emails []domain.Email
	err    error
}

func (f *fakeGmail) Extract(_ context.Context, _ domain.TimeRange) ([]domain.Email, error) {
	return f.emails, f.err
}

type fakeChat struct {
	messages []domain.ChatMessage
	err      error
}

func (f *fakeChat) Extract(_ context.Context, _ domain.TimeRange) ([]domain.ChatMessage, error) {
	return f.messages, f.err
}

type fakeCalendar struct {
	events []domain.CalendarEvent
	err    error
}

func (f *fakeCalendar) Extract(_ context.Context, _ domain.TimeRange) ([]domain.CalendarEvent, error) {
	return f.events, f.err
}

type fakeDocs struct {
	activity []domain.DocActivity
	err      error
}

func (f *fakeDocs) Extract(_ context.Context, _ domain.TimeRange) ([]domain.DocActivity, error) {
	return f.activity, f.err
}

// fakeRunStore records runs in memory.
type fakeRunStore struct {
	runs []domain.Run
	err  error
}

func (f *fakeRunStore) Record(_ context.Context, run domain.Run) error {
	if f.err != nil {
		return f.err
	}
	f.runs = append(f.runs, run)
	return nil
}

func (f *fakeRunStore) List(_ context.Context, limit int) ([]domain.Run, error) {
	if limit > len(f.runs) {
		limit = len(f.runs)
	}
	out := make([]domain.Run, limit)
	for i := 0; i < limit; i++ {
		out[i] = f.runs[len(f.runs)-1-i]
	}
	return out, nil
}

func TestHubService_Gmail(t *testing.T) {
	runs := &fakeRunStore{}
	svc := NewHubService(HubPorts{
		Gmail: &fakeGmail{emails: []domain.Email{{EmailID: "m1"}, {EmailID: "m2"}}},
		Runs:  runs,
	})

	emails, err := svc.Gmail(context.Background(), domain.TimeRange{})
	require.NoError(t, err)
	assert.Len(t, emails, 2)

	require.Len(t, runs.runs, 1)
	run := runs.runs[0]
	assert.Equal(t, domain.ServiceGmail, run.Service)
	assert.Equal(t, 2, run.ItemCount)
	assert.True(t, run.Succeeded())
	assert.NotEmpty(t, run.ID)
}

func TestHubService_Gmail_EmptyResultIsNotNil(t *testing.T) {
	svc := NewHubService(HubPorts{Gmail: &fakeGmail{}})

	emails, err := svc.Gmail(context.Background(), domain.TimeRange{})
	require.NoError(t, err)
	assert.NotNil(t, emails)
	assert.Empty(t, emails)
}

func TestHubService_Gmail_ErrorRecordsFailedRun(t *testing.T) {
	runs := &fakeRunStore{}
	boom := errors.New("quota exceeded")
	svc := NewHubService(HubPorts{Gmail: &fakeGmail{err: boom}, Runs: runs})

	_, err := svc.Gmail(context.Background(), domain.TimeRange{})
	require.ErrorIs(t, err, boom)

	require.Len(t, runs.runs, 1)
	assert.False(t, runs.runs[0].Succeeded())
	assert.Equal(t, 0, runs.runs[0].ItemCount)
	assert.Equal(t, "quota exceeded", runs.runs[0].Error)
}

func TestHubService_MissingExtractorNeedsAuth(t *testing.T) {
	svc := NewHubService(HubPorts{})
	ctx := context.Background()

	_, err := svc.Gmail(ctx, domain.TimeRange{})
	assert.ErrorIs(t, err, domain.ErrAuthRequired)

	_, err = svc.Chats(ctx, domain.TimeRange{})
	assert.ErrorIs(t, err, domain.ErrAuthRequired)

	_, err = svc.Calendar(ctx, domain.TimeRange{})
	assert.ErrorIs(t, err, domain.ErrAuthRequired)

	_, err = svc.Docs(ctx, domain.TimeRange{})
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestHubService_ChatsCalendarDocs(t *testing.T) {
	runs := &fakeRunStore{}
	svc := NewHubService(HubPorts{
		Chat:     &fakeChat{messages: []domain.ChatMessage{{ChatID: "c1"}}},
		Calendar: &fakeCalendar{events: []domain.CalendarEvent{{EventID: "e1"}}},
		Docs:     &fakeDocs{activity: []domain.DocActivity{{ActivityID: "d1"}}},
		Runs:     runs,
	})
	ctx := context.Background()

	messages, err := svc.Chats(ctx, domain.TimeRange{})
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	events, err := svc.Calendar(ctx, domain.TimeRange{})
	require.NoError(t, err)
	assert.Len(t, events, 1)

	activity, err := svc.Docs(ctx, domain.TimeRange{})
	require.NoError(t, err)
	assert.Len(t, activity, 1)

	assert.Len(t, runs.runs, 3)
}

func TestHubService_RunStoreFailureDoesNotFailExtraction(t *testing.T) {
	runs := &fakeRunStore{err: errors.New("disk full")}
	svc := NewHubService(HubPorts{
		Gmail: &fakeGmail{emails: []domain.Email{{EmailID: "m1"}}},
		Runs:  runs,
	})

	emails, err := svc.Gmail(context.Background(), domain.TimeRange{})
	require.NoError(t, err)
	assert.Len(t, emails, 1)
}

func TestHubService_Runs(t *testing.T) {
	runs := &fakeRunStore{}
	svc := NewHubService(HubPorts{
		Gmail: &fakeGmail{emails: []domain.Email{{EmailID: "m1"}}},
		Runs:  runs,
	})
	ctx := context.Background()

	_, err := svc.Gmail(ctx, domain.TimeRange{})
	require.NoError(t, err)

	got, err := svc.Runs(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestHubService_Runs_NoStore(t *testing.T) {
	svc := NewHubService(HubPorts{})

	got, err := svc.Runs(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
