// internal/infra/identitytoolkit/client_test.go
package identitytoolkit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignInWithPassword_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req signInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "john.doe@example.com", req.Email)
		assert.True(t, req.ReturnSecureToken)

		_ = json.NewEncoder(w).Encode(Session{
			LocalID:      "uid-123",
			Email:        req.Email,
			IDToken:      "id-token",
			RefreshToken: "refresh-token",
			ExpiresIn:    "3600",
		})
	}))
	defer srv.Close()

	c := NewClient("test-key").WithBaseURL(srv.URL)
	s, err := c.SignInWithPassword(context.Background(), "john.doe@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "uid-123", s.LocalID)
	assert.Equal(t, "id-token", s.IDToken)
}

func TestSignInWithPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"INVALID_LOGIN_CREDENTIALS"}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key").WithBaseURL(srv.URL)
	_, err := c.SignInWithPassword(context.Background(), "john.doe@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInWithPassword_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"INTERNAL"}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key").WithBaseURL(srv.URL)
	_, err := c.SignInWithPassword(context.Background(), "john.doe@example.com", "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInWithPassword_EmptyInputs(t *testing.T) {
	t.Parallel()

	c := NewClient("test-key")
	_, err := c.SignInWithPassword(context.Background(), "", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = c.SignInWithPassword(context.Background(), "john.doe@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInWithPassword_MissingAPIKey(t *testing.T) {
	t.Parallel()

	c := NewClient("  ")
	_, err := c.SignInWithPassword(context.Background(), "john.doe@example.com", "secret123")
	assert.Error(t, err)
}
