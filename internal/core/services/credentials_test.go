package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/workspacehub/internal/adapters/driven/storage/memory"
	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

func TestCredentialsService_SaveAndGet(t *testing.T) {
	svc := NewCredentialsService(memory.NewCredentialsStore())
	ctx := context.Background()

	creds := domain.Credentials{
		ID:                domain.DefaultCredentialsID,
		AccountIdentifier: "user@gmail.com",
		OAuth:             &domain.OAuthToken{AccessToken: "tok", TokenType: "Bearer"},
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	require.NoError(t, svc.Save(ctx, creds))

	got, err := svc.Get(ctx, domain.DefaultCredentialsID)
	require.NoError(t, err)
	assert.Equal(t, "user@gmail.com", got.AccountIdentifier)
	assert.True(t, got.IsAuthenticated())
}

func TestCredentialsService_SaveRejectsEmptyID(t *testing.T) {
	svc := NewCredentialsService(memory.NewCredentialsStore())

	err := svc.Save(context.Background(), domain.Credentials{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCredentialsService_GetMissing(t *testing.T) {
	svc := NewCredentialsService(memory.NewCredentialsStore())

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCredentialsService_Delete(t *testing.T) {
	svc := NewCredentialsService(memory.NewCredentialsStore())
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, domain.Credentials{ID: "google"}))
	require.NoError(t, svc.Delete(ctx, "google"))

	_, err := svc.Get(ctx, "google")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
