package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDate indicates a date parameter that is neither
	// YYYY-MM-DD nor RFC3339.
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD or YYYY-MM-DDTHH:MM:SSZ")

	// ErrInvalidRange indicates an end date earlier than the start date.
	ErrInvalidRange = errors.New("end date is before start date")

	// Authentication Errors.

	// ErrAuthRequired indicates no stored credentials are available.
	// The user has to run the login flow before extraction works.
	ErrAuthRequired = errors.New("authentication required, run 'workspacehub auth login'")

	// ErrAuthExpired indicates the authentication has expired and refresh failed.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrTokenRefreshFailed indicates token refresh operation failed.
	ErrTokenRefreshFailed = errors.New("token refresh failed")

	// ErrClientConfigMissing indicates the OAuth client configuration file
	// (credentials.json) is absent or unreadable.
	ErrClientConfigMissing = errors.New("credentials.json not found")

	// ErrClientConfigInvalid indicates credentials.json could not be parsed
	// as an OAuth client configuration.
	ErrClientConfigInvalid = errors.New("credentials.json is malformed")

	// Upstream Errors.

	// ErrRateLimited indicates a Google API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrUpstream indicates a Google API call failed.
	ErrUpstream = errors.New("upstream Google API error")
)
