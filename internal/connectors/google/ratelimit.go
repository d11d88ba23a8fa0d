package google

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
)

// RateLimitConfig holds rate limiting configuration for a service.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimits provides conservative defaults for each Google service.
// These are well below Google's actual limits to avoid hitting quotas.
var DefaultRateLimits = map[domain.Service]RateLimitConfig{
	domain.ServiceGmail:    {RequestsPerSecond: 2.0, BurstSize: 5},  // Conservative for quota units
	domain.ServiceChat:     {RequestsPerSecond: 3.0, BurstSize: 5},  // Chat read quotas are tight
	domain.ServiceCalendar: {RequestsPerSecond: 5.0, BurstSize: 10}, // Conservative default
	domain.ServiceDocs:     {RequestsPerSecond: 8.0, BurstSize: 10}, // Drive allows 10/sec/user
}

// RateLimiter provides rate limiting for Google API requests.
// It uses a token bucket algorithm with optional backoff for 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
	service domain.Service
}

// NewRateLimiter creates a new rate limiter for the specified service.
func NewRateLimiter(service domain.Service) *RateLimiter {
	cfg, ok := DefaultRateLimits[service]
	if !ok {
		// Default fallback
		cfg = RateLimitConfig{RequestsPerSecond: 5.0, BurstSize: 10}
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
		service: service,
	}
}

// NewRateLimiterWithConfig creates a rate limiter with custom configuration.
func NewRateLimiterWithConfig(cfg RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Wait blocks until a request can be made without exceeding the rate limit.
// It also respects any backoff period set by RecordRateLimitError.
func (r *RateLimiter) Wait(ctx context.Context) error {
	// First, check for backoff from previous rate limit errors
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	// Then wait for the token bucket
	return r.limiter.Wait(ctx)
}

// RecordRateLimitError records a rate limit error and sets a backoff period.
// Call this when receiving a 429 response from Google APIs.
func (r *RateLimiter) RecordRateLimitError(retryAfterSeconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if retryAfterSeconds <= 0 {
		// Default backoff: 60 seconds
		retryAfterSeconds = 60
	}

	r.retryAt = time.Now().Add(time.Duration(retryAfterSeconds) * time.Second)
}

// WrapError arms the backoff when err is a rate limit response, then
// converts it with WrapError. Extractors call this on every API call error
// so a 429 delays the next Wait.
func (r *RateLimiter) WrapError(err error) error {
	if IsRateLimited(err) {
		r.RecordRateLimitError(retryAfterSeconds(err))
	}
	return WrapError(err)
}

// retryAfterSeconds extracts the Retry-After hint from a 429 response.
// Returns 0 when the response carried none.
func retryAfterSeconds(err error) int {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return 0
	}
	secs, _ := strconv.Atoi(gerr.Header.Get("Retry-After"))
	return secs
}
