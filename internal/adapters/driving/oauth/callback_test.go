//nolint:noctx // Test file uses http.Get for convenience; context not required in tests
package oauth

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCallbackServer(t *testing.T) {
	server := NewCallbackServer(8080, "test-state-123")

	require.NotNil(t, server)
	assert.Equal(t, 8080, server.port)
	assert.Equal(t, "test-state-123", server.expectedState)
	assert.NotNil(t, server.codeChan)
	assert.NotNil(t, server.errChan)
}

func TestCallbackServer_StartStop(t *testing.T) {
	server := NewCallbackServer(0, "test-state")
	require.NoError(t, server.Start())

	// Port 0 resolves to an ephemeral port once listening
	assert.NotZero(t, server.Port())

	require.NoError(t, server.Stop())
	// Stopping again should not error
	require.NoError(t, server.Stop())
}

func TestCallbackServer_Stop_NotStarted(t *testing.T) {
	server := NewCallbackServer(8080, "test-state")
	require.NoError(t, server.Stop())
}

func TestCallbackServer_RedirectURI(t *testing.T) {
	server := NewCallbackServer(9090, "test-state")
	assert.Equal(t, "http://localhost:9090/callback", server.RedirectURI())
}

func TestCallbackServer_HandleCallback(t *testing.T) {
	t.Run("delivers authorization code", func(t *testing.T) {
		server := NewCallbackServer(0, "state-abc")
		require.NoError(t, server.Start())
		defer server.Stop()

		callbackURL := fmt.Sprintf("http://127.0.0.1:%d/callback?code=auth-code-42&state=state-abc", server.Port())
		resp, err := http.Get(callbackURL)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		code, err := server.WaitForCode(2 * time.Second)
		require.NoError(t, err)
		assert.Equal(t, "auth-code-42", code)
	})

	t.Run("rejects state mismatch", func(t *testing.T) {
		server := NewCallbackServer(0, "expected-state")
		require.NoError(t, server.Start())
		defer server.Stop()

		callbackURL := fmt.Sprintf("http://127.0.0.1:%d/callback?code=auth-code&state=wrong-state", server.Port())
		resp, err := http.Get(callbackURL)
		require.NoError(t, err)
		resp.Body.Close()

		_, err = server.WaitForCode(2 * time.Second)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "state mismatch")
	})

	t.Run("surfaces provider error", func(t *testing.T) {
		server := NewCallbackServer(0, "state-abc")
		require.NoError(t, server.Start())
		defer server.Stop()

		q := url.Values{}
		q.Set("error", "access_denied")
		q.Set("error_description", "user declined")
		callbackURL := fmt.Sprintf("http://127.0.0.1:%d/callback?%s", server.Port(), q.Encode())
		resp, err := http.Get(callbackURL)
		require.NoError(t, err)
		resp.Body.Close()

		_, err = server.WaitForCode(2 * time.Second)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access_denied")
	})

	t.Run("repeated errors do not block the handler", func(t *testing.T) {
		server := NewCallbackServer(0, "expected-state")
		require.NoError(t, server.Start())
		defer server.Stop()

		// Two errored callbacks in a row; the second must respond promptly
		// even though the error channel already holds the first error.
		callbackURL := fmt.Sprintf("http://127.0.0.1:%d/callback?code=auth-code&state=wrong-state", server.Port())
		for i := 0; i < 2; i++ {
			client := &http.Client{Timeout: 2 * time.Second}
			resp, err := client.Get(callbackURL)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		}

		_, err := server.WaitForCode(2 * time.Second)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "state mismatch")
	})

	t.Run("rejects missing code", func(t *testing.T) {
		server := NewCallbackServer(0, "state-abc")
		require.NoError(t, server.Start())
		defer server.Stop()

		callbackURL := fmt.Sprintf("http://127.0.0.1:%d/callback?state=state-abc", server.Port())
		resp, err := http.Get(callbackURL)
		require.NoError(t, err)
		resp.Body.Close()

		_, err = server.WaitForCode(2 * time.Second)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no authorization code")
	})
}

func TestCallbackServer_WaitForCode_Timeout(t *testing.T) {
	server := NewCallbackServer(0, "state-abc")
	require.NoError(t, server.Start())
	defer server.Stop()

	_, err := server.WaitForCode(50 * time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestGenerateCodeVerifier(t *testing.T) {
	v1 := GenerateCodeVerifier()
	v2 := GenerateCodeVerifier()

	assert.NotEmpty(t, v1)
	assert.NotEqual(t, v1, v2)
	// RFC 7636 requires 43-128 characters
	assert.GreaterOrEqual(t, len(v1), 43)
}

func TestGenerateCodeChallenge(t *testing.T) {
	verifier := "test-verifier-string"

	c1 := GenerateCodeChallenge(verifier)
	c2 := GenerateCodeChallenge(verifier)

	// Deterministic for a given verifier, and not the verifier itself
	assert.Equal(t, c1, c2)
	assert.NotEqual(t, verifier, c1)
	assert.NotEmpty(t, c1)
}

func TestFindAvailablePort(t *testing.T) {
	port, err := FindAvailablePort(18080, 18180)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, port, 18080)
	assert.LessOrEqual(t, port, 18180)
}
