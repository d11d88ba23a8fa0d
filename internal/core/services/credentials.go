package services

import (
	"context"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driven"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driving"
)

// Ensure CredentialsService implements the interface.
var _ driving.CredentialsService = (*CredentialsService)(nil)

// CredentialsService manages the stored Google account credentials.
type CredentialsService struct {
	store driven.CredentialsStore
}

// NewCredentialsService creates a new credentials service.
func NewCredentialsService(store driven.CredentialsStore) *CredentialsService {
	return &CredentialsService{store: store}
}

// Save creates or updates credentials.
func (s *CredentialsService) Save(ctx context.Context, creds domain.Credentials) error {
	if creds.ID == "" {
		return domain.ErrInvalidInput
	}
	return s.store.Save(ctx, creds)
}

// Get retrieves credentials by ID.
func (s *CredentialsService) Get(ctx context.Context, id string) (*domain.Credentials, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// Delete removes credentials by ID.
func (s *CredentialsService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.store.Delete(ctx, id)
}
