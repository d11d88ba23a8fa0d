package driven

import (
	"context"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

// RunStore persists extraction run history.
type RunStore interface {
	// Record stores a completed run.
	Record(ctx context.Context, run domain.Run) error

	// List returns the most recent runs, newest first, up to limit.
	List(ctx context.Context, limit int) ([]domain.Run, error)
}
