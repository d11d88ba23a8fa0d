// Package auth provides the token provider backing every authenticated
// Google API call, with transparent refresh of expired access tokens.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driven"
	"github.com/veldt-labs/workspacehub/internal/logger"
)

// Ensure OAuthProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*OAuthProvider)(nil)

// ClientConfigSource supplies the current OAuth client configuration.
// The config holder implements this; it may change at runtime when
// credentials.json is rewritten.
type ClientConfigSource interface {
	Config() *oauth2.Config
}

// OAuthProvider provides OAuth access tokens with automatic refresh.
// Tokens are read from the credentials store and refreshed tokens are
// persisted back before any call returns.
type OAuthProvider struct {
	credentialsID string
	store         driven.CredentialsStore
	clientConfig  ClientConfigSource

	mu            sync.RWMutex
	cachedToken   string
	cacheExpiry   time.Time
	refreshBuffer time.Duration
}

// NewOAuthProvider creates a token provider over the stored credentials.
func NewOAuthProvider(credentialsID string, store driven.CredentialsStore, clientConfig ClientConfigSource) *OAuthProvider {
	return &OAuthProvider{
		credentialsID: credentialsID,
		store:         store,
		clientConfig:  clientConfig,
		refreshBuffer: 5 * time.Minute,
	}
}

// GetToken returns a valid access token, refreshing if necessary.
func (p *OAuthProvider) GetToken(ctx context.Context) (string, error) {
	// Fast path: check cache with read lock
	p.mu.RLock()
	if p.cachedToken != "" && time.Now().Before(p.cacheExpiry) {
		token := p.cachedToken
		p.mu.RUnlock()
		return token, nil
	}
	p.mu.RUnlock()

	// Slow path: need refresh, acquire write lock
	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock
	if p.cachedToken != "" && time.Now().Before(p.cacheExpiry) {
		return p.cachedToken, nil
	}

	creds, err := p.store.Get(ctx, p.credentialsID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrAuthRequired
		}
		return "", fmt.Errorf("get credentials: %w", err)
	}
	if creds.OAuth == nil || creds.OAuth.AccessToken == "" {
		return "", domain.ErrAuthRequired
	}

	needsRefresh := creds.OAuth.IsExpired()
	if !creds.OAuth.Expiry.IsZero() {
		needsRefresh = needsRefresh || time.Until(creds.OAuth.Expiry) < p.refreshBuffer
	}

	if needsRefresh {
		if creds.OAuth.RefreshToken == "" {
			return "", domain.ErrAuthExpired
		}

		newToken, err := p.refreshToken(ctx, creds.OAuth.RefreshToken)
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrTokenRefreshFailed, err)
		}

		creds.OAuth.AccessToken = newToken.AccessToken
		if newToken.RefreshToken != "" {
			creds.OAuth.RefreshToken = newToken.RefreshToken
		}
		creds.OAuth.Expiry = newToken.Expiry
		creds.OAuth.TokenType = newToken.TokenType
		creds.UpdatedAt = time.Now()

		if err := p.store.Save(ctx, *creds); err != nil {
			return "", fmt.Errorf("save refreshed credentials: %w", err)
		}
		logger.Debug("refreshed access token for %s", creds.AccountIdentifier)
	}

	p.cachedToken = creds.OAuth.AccessToken

	if !creds.OAuth.Expiry.IsZero() {
		p.cacheExpiry = creds.OAuth.Expiry.Add(-p.refreshBuffer)
	} else {
		p.cacheExpiry = time.Now().Add(1 * time.Hour)
	}

	return p.cachedToken, nil
}

// refreshToken performs the OAuth2 token refresh against the token URL
// from the current client configuration.
func (p *OAuthProvider) refreshToken(ctx context.Context, refreshToken string) (*domain.OAuthToken, error) {
	cfg := p.clientConfig.Config()
	if cfg == nil {
		return nil, domain.ErrClientConfigMissing
	}

	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)
	data.Set("client_id", cfg.ClientID)
	data.Set("client_secret", cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.Endpoint.TokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token refresh failed with status %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken  string `json:"access_token"`
		TokenType    string `json:"token_type"`
		ExpiresIn    int    `json:"expires_in"`
		RefreshToken string `json:"refresh_token"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}

	return &domain.OAuthToken{
		AccessToken:  tokenResp.AccessToken,
		RefreshToken: tokenResp.RefreshToken,
		TokenType:    tokenResp.TokenType,
		Expiry:       time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
	}, nil
}

// IsAuthenticated returns true if the credentials have valid tokens.
func (p *OAuthProvider) IsAuthenticated() bool {
	p.mu.RLock()
	if p.cachedToken != "" && time.Now().Before(p.cacheExpiry) {
		p.mu.RUnlock()
		return true
	}
	p.mu.RUnlock()

	creds, err := p.store.Get(context.Background(), p.credentialsID)
	if err != nil {
		return false
	}
	return creds.IsAuthenticated()
}

// InvalidateCache clears the cached token.
func (p *OAuthProvider) InvalidateCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cachedToken = ""
	p.cacheExpiry = time.Time{}
}
