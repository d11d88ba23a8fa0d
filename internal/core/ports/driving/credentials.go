package driving

import (
	"context"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

// CredentialsService manages the stored Google account credentials.
type CredentialsService interface {
	// Save creates or updates credentials.
	Save(ctx context.Context, creds domain.Credentials) error

	// Get retrieves credentials by ID.
	Get(ctx context.Context, id string) (*domain.Credentials, error)

	// Delete removes credentials by ID.
	Delete(ctx context.Context, id string) error
}
