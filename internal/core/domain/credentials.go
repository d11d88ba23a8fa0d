package domain

import "time"

// DefaultCredentialsID is the row ID used for the single stored account.
// The hub authenticates one Google account at a time.
const DefaultCredentialsID = "google"

// Credentials stores the authenticated user's OAuth tokens together with
// the account identifier reported by Google's userinfo endpoint.
type Credentials struct {
	// ID is the unique identifier for this credentials record.
	ID string `json:"id"`

	// AccountIdentifier is the user's email address from the provider.
	AccountIdentifier string `json:"account_identifier,omitempty"`

	// OAuth holds the stored tokens.
	OAuth *OAuthToken `json:"oauth,omitempty"`

	// CreatedAt is when the credentials were created.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the credentials were last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// OAuthToken stores OAuth tokens for the authenticated account.
type OAuthToken struct {
	// AccessToken is the bearer token for API access.
	AccessToken string `json:"access_token"`
	// RefreshToken is used to obtain new access tokens.
	RefreshToken string `json:"refresh_token,omitempty"`
	// TokenType is typically "Bearer".
	TokenType string `json:"token_type"`
	// Expiry is when the access token expires.
	Expiry time.Time `json:"expiry,omitempty"`
}

// IsExpired returns true if the access token has expired.
func (t *OAuthToken) IsExpired() bool {
	if t.Expiry.IsZero() {
		return false
	}
	return time.Now().After(t.Expiry)
}

// IsAuthenticated returns true if the credentials contain a usable token.
func (c *Credentials) IsAuthenticated() bool {
	return c.OAuth != nil && c.OAuth.AccessToken != ""
}

// NeedsRefresh returns true if the tokens need refreshing and can be.
func (c *Credentials) NeedsRefresh() bool {
	if c.OAuth == nil {
		return false
	}
	return c.OAuth.IsExpired() && c.OAuth.RefreshToken != ""
}

// HasRefreshToken returns true if a refresh token is available.
func (c *Credentials) HasRefreshToken() bool {
	return c.OAuth != nil && c.OAuth.RefreshToken != ""
}
