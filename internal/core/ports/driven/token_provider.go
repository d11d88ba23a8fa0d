package driven

import "context"

// TokenProvider provides access tokens for authenticated API calls.
// Implementations handle token refresh transparently: if the stored access
// token is expired, a new one is obtained with the refresh token and the
// refreshed credentials are persisted before the call returns.
type TokenProvider interface {
	// GetToken returns a valid access token.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated returns true if valid authentication is available.
	IsAuthenticated() bool

	// InvalidateCache drops any cached token so the next GetToken call
	// re-reads the store.
	InvalidateCache()
}
