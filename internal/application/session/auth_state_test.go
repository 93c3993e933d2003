// internal/application/session/auth_state_test.go
package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdom "forkful/internal/domain/user"
)

func testUser(t *testing.T) *userdom.User {
	t.Helper()
	u, err := userdom.New("uid-123", "John Doe", "john.doe@example.com", "https://example.com/avatar.jpg", time.Now())
	require.NoError(t, err)
	return u
}

func TestState_Initial(t *testing.T) {
	t.Parallel()

	s := NewState()
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.False(t, s.IsLoading())
}

func TestState_Setters(t *testing.T) {
	t.Parallel()

	s := NewState()
	u := testUser(t)

	s.SetIsAuthenticated(true)
	s.SetUser(u)
	s.SetIsLoading(true)

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, u, s.User())
	assert.True(t, s.IsLoading())
}

func TestRefresh_Success(t *testing.T) {
	t.Parallel()

	s := NewState()
	u := testUser(t)

	s.Refresh(context.Background(), func(context.Context) (*userdom.User, error) {
		return u, nil
	})

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, u, s.User())
	assert.False(t, s.IsLoading())
}

func TestRefresh_ErrorClearsState(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.SetIsAuthenticated(true)
	s.SetUser(testUser(t))

	s.Refresh(context.Background(), func(context.Context) (*userdom.User, error) {
		return nil, errors.New("session expired")
	})

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.False(t, s.IsLoading())
}

func TestRefresh_NilUserTreatedAsUnauthenticated(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.SetIsAuthenticated(true)
	s.SetUser(testUser(t))

	s.Refresh(context.Background(), func(context.Context) (*userdom.User, error) {
		return nil, nil
	})

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}

func TestRefresh_LoadingVisibleDuringFetch(t *testing.T) {
	t.Parallel()

	s := NewState()

	var loadingDuringFetch bool
	s.Refresh(context.Background(), func(context.Context) (*userdom.User, error) {
		loadingDuringFetch = s.IsLoading()
		return nil, errors.New("boom")
	})

	assert.True(t, loadingDuringFetch)
	assert.False(t, s.IsLoading())
}
