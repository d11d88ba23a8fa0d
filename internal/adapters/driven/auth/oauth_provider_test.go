package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/veldt-labs/workspacehub/internal/adapters/driven/storage/memory"
	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

type staticConfigSource struct {
	cfg *oauth2.Config
}

func (s *staticConfigSource) Config() *oauth2.Config {
	return s.cfg
}

func newConfigSource(tokenURL string) *staticConfigSource {
	return &staticConfigSource{cfg: &oauth2.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
	}}
}

func TestOAuthProvider_GetToken(t *testing.T) {
	ctx := context.Background()

	t.Run("returns auth required when no credentials stored", func(t *testing.T) {
		provider := NewOAuthProvider(domain.DefaultCredentialsID, memory.NewCredentialsStore(), newConfigSource(""))

		_, err := provider.GetToken(ctx)
		assert.ErrorIs(t, err, domain.ErrAuthRequired)
	})

	t.Run("returns stored token when not expired", func(t *testing.T) {
		store := memory.NewCredentialsStore()
		require.NoError(t, store.Save(ctx, domain.Credentials{
			ID: domain.DefaultCredentialsID,
			OAuth: &domain.OAuthToken{
				AccessToken: "valid-token",
				Expiry:      time.Now().Add(time.Hour),
			},
		}))
		provider := NewOAuthProvider(domain.DefaultCredentialsID, store, newConfigSource(""))

		token, err := provider.GetToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "valid-token", token)
	})

	t.Run("caches token across calls", func(t *testing.T) {
		store := memory.NewCredentialsStore()
		require.NoError(t, store.Save(ctx, domain.Credentials{
			ID: domain.DefaultCredentialsID,
			OAuth: &domain.OAuthToken{
				AccessToken: "cached-token",
				Expiry:      time.Now().Add(time.Hour),
			},
		}))
		provider := NewOAuthProvider(domain.DefaultCredentialsID, store, newConfigSource(""))

		_, err := provider.GetToken(ctx)
		require.NoError(t, err)

		// Deleting from the store must not affect the cached token
		require.NoError(t, store.Delete(ctx, domain.DefaultCredentialsID))
		token, err := provider.GetToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "cached-token", token)

		// Invalidate forces a store read, which now fails
		provider.InvalidateCache()
		_, err = provider.GetToken(ctx)
		assert.ErrorIs(t, err, domain.ErrAuthRequired)
	})

	t.Run("refreshes expired token and persists it", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
			assert.Equal(t, "the-refresh-token", r.Form.Get("refresh_token"))
			assert.Equal(t, "client-id", r.Form.Get("client_id"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "fresh-token",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		}))
		defer ts.Close()

		store := memory.NewCredentialsStore()
		require.NoError(t, store.Save(ctx, domain.Credentials{
			ID: domain.DefaultCredentialsID,
			OAuth: &domain.OAuthToken{
				AccessToken:  "stale-token",
				RefreshToken: "the-refresh-token",
				Expiry:       time.Now().Add(-time.Hour),
			},
		}))
		provider := NewOAuthProvider(domain.DefaultCredentialsID, store, newConfigSource(ts.URL))

		token, err := provider.GetToken(ctx)
		require.NoError(t, err)
		assert.Equal(t, "fresh-token", token)

		// Refreshed token was written back
		saved, err := store.Get(ctx, domain.DefaultCredentialsID)
		require.NoError(t, err)
		assert.Equal(t, "fresh-token", saved.OAuth.AccessToken)
		assert.Equal(t, "the-refresh-token", saved.OAuth.RefreshToken)
		assert.True(t, saved.OAuth.Expiry.After(time.Now()))
	})

	t.Run("expired token without refresh token fails", func(t *testing.T) {
		store := memory.NewCredentialsStore()
		require.NoError(t, store.Save(ctx, domain.Credentials{
			ID: domain.DefaultCredentialsID,
			OAuth: &domain.OAuthToken{
				AccessToken: "stale-token",
				Expiry:      time.Now().Add(-time.Hour),
			},
		}))
		provider := NewOAuthProvider(domain.DefaultCredentialsID, store, newConfigSource(""))

		_, err := provider.GetToken(ctx)
		assert.ErrorIs(t, err, domain.ErrAuthExpired)
	})

	t.Run("refresh failure is reported", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid_grant", http.StatusBadRequest)
		}))
		defer ts.Close()

		store := memory.NewCredentialsStore()
		require.NoError(t, store.Save(ctx, domain.Credentials{
			ID: domain.DefaultCredentialsID,
			OAuth: &domain.OAuthToken{
				AccessToken:  "stale-token",
				RefreshToken: "revoked",
				Expiry:       time.Now().Add(-time.Hour),
			},
		}))
		provider := NewOAuthProvider(domain.DefaultCredentialsID, store, newConfigSource(ts.URL))

		_, err := provider.GetToken(ctx)
		assert.ErrorIs(t, err, domain.ErrTokenRefreshFailed)
	})

	t.Run("refresh without client config fails", func(t *testing.T) {
		store := memory.NewCredentialsStore()
		require.NoError(t, store.Save(ctx, domain.Credentials{
			ID: domain.DefaultCredentialsID,
			OAuth: &domain.OAuthToken{
				AccessToken:  "stale-token",
				RefreshToken: "the-refresh-token",
				Expiry:       time.Now().Add(-time.Hour),
			},
		}))
		provider := NewOAuthProvider(domain.DefaultCredentialsID, store, &staticConfigSource{})

		_, err := provider.GetToken(ctx)
		assert.ErrorIs(t, err, domain.ErrTokenRefreshFailed)
	})
}

func TestOAuthProvider_IsAuthenticated(t *testing.T) {
	ctx := context.Background()

	t.Run("false when store empty", func(t *testing.T) {
		provider := NewOAuthProvider(domain.DefaultCredentialsID, memory.NewCredentialsStore(), newConfigSource(""))
		assert.False(t, provider.IsAuthenticated())
	})

	t.Run("true with valid stored token", func(t *testing.T) {
		store := memory.NewCredentialsStore()
		require.NoError(t, store.Save(ctx, domain.Credentials{
			ID: domain.DefaultCredentialsID,
			OAuth: &domain.OAuthToken{
				AccessToken: "valid-token",
				Expiry:      time.Now().Add(time.Hour),
			},
		}))
		provider := NewOAuthProvider(domain.DefaultCredentialsID, store, newConfigSource(""))
		assert.True(t, provider.IsAuthenticated())
	})

	t.Run("true with expired token but refresh token available", func(t *testing.T) {
		store := memory.NewCredentialsStore()
		require.NoError(t, store.Save(ctx, domain.Credentials{
			ID: domain.DefaultCredentialsID,
			OAuth: &domain.OAuthToken{
				AccessToken:  "stale-token",
				RefreshToken: "the-refresh-token",
				Expiry:       time.Now().Add(-time.Hour),
			},
		}))
		provider := NewOAuthProvider(domain.DefaultCredentialsID, store, newConfigSource(""))
		assert.True(t, provider.IsAuthenticated())
	})
}
