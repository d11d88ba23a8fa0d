// Package memory provides in-memory store implementations, used mainly
// by tests and as fallbacks when persistent storage is unavailable.
package memory

import (
	"context"
	"sync"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driven"
)

var _ driven.CredentialsStore = (*CredentialsStore)(nil)

// CredentialsStore keeps credentials in a map guarded by a mutex.
type CredentialsStore struct {
	mu    sync.RWMutex
	creds map[string]domain.Credentials
}

// NewCredentialsStore creates an empty in-memory credentials store.
func NewCredentialsStore() *CredentialsStore {
	return &CredentialsStore{creds: make(map[string]domain.Credentials)}
}

func (s *CredentialsStore) Save(_ context.Context, creds domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[creds.ID] = creds
	return nil
}

func (s *CredentialsStore) Get(_ context.Context, id string) (*domain.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	creds, ok := s.creds[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	// Copy so callers cannot mutate the stored value.
	out := creds
	if creds.OAuth != nil {
		token := *creds.OAuth
		out.OAuth = &token
	}
	return &out, nil
}

func (s *CredentialsStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.creds[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.creds, id)
	return nil
}
