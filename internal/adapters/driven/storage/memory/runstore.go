package memory

import (
	"context"
	"sync"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driven"
)

var _ driven.RunStore = (*RunStore)(nil)

// RunStore keeps extraction run records in memory, newest first.
type RunStore struct {
	mu   sync.RWMutex
	runs []domain.Run
}

// NewRunStore creates an empty in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

func (s *RunStore) Record(_ context.Context, run domain.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append([]domain.Run{run}, s.runs...)
	return nil
}

func (s *RunStore) List(_ context.Context, limit int) ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.runs) {
		limit = len(s.runs)
	}
	out := make([]domain.Run, limit)
	copy(out, s.runs[:limit])
	return out, nil
}
