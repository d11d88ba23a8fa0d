package google

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		code int
		want error
	}{
		{name: "401 maps to unauthorised", code: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "403 maps to forbidden", code: http.StatusForbidden, want: ErrForbidden},
		{name: "404 maps to not found", code: http.StatusNotFound, want: ErrNotFound},
		{name: "429 maps to rate limited", code: http.StatusTooManyRequests, want: ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapError(&googleapi.Error{Code: tt.code})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWrapError_PassThrough(t *testing.T) {
	assert.NoError(t, WrapError(nil))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, WrapError(plain))

	serverErr := &googleapi.Error{Code: http.StatusInternalServerError}
	assert.Equal(t, error(serverErr), WrapError(serverErr))
}

func TestErrorPredicates(t *testing.T) {
	wrapped := fmt.Errorf("listing messages: %w", &googleapi.Error{Code: http.StatusUnauthorized})
	assert.True(t, IsUnauthorized(wrapped))
	assert.False(t, IsForbidden(wrapped))

	assert.True(t, IsRateLimited(ErrRateLimited))
	assert.True(t, IsRateLimited(&googleapi.Error{Code: http.StatusTooManyRequests}))
	assert.True(t, IsNotFound(&googleapi.Error{Code: http.StatusNotFound}))
	assert.False(t, IsNotFound(errors.New("other")))
}
