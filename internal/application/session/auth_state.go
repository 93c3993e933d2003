// internal/application/session/auth_state.go
package session

import (
	"context"
	"log"
	"sync"

	userdom "forkful/internal/domain/user"
)

// CurrentUserFetcher is the narrow slice of the auth adapter the state holder
// needs (usecase.AuthUsecase satisfies it via a bound method or closure).
type CurrentUserFetcher func(ctx context.Context) (*userdom.User, error)

// State holds the client-session view of authentication:
// an isAuthenticated/user pair plus a loading indicator.
//
// A rejection or a nil result from the fetcher only ever clears the pair;
// the error is never propagated further than that.
type State struct {
	mu              sync.RWMutex
	isAuthenticated bool
	user            *userdom.User
	isLoading       bool
}

func NewState() *State {
	return &State{}
}

func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

func (s *State) User() *userdom.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *State) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

func (s *State) SetIsAuthenticated(v bool) {
	s.mu.Lock()
	s.isAuthenticated = v
	s.mu.Unlock()
}

func (s *State) SetUser(u *userdom.User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

func (s *State) SetIsLoading(v bool) {
	s.mu.Lock()
	s.isLoading = v
	s.mu.Unlock()
}

// Refresh re-resolves the current user through fetch.
// isLoading is set for the duration and cleared on every exit path,
// success or failure.
func (s *State) Refresh(ctx context.Context, fetch CurrentUserFetcher) {
	if s == nil || fetch == nil {
		return
	}

	s.SetIsLoading(true)
	defer s.SetIsLoading(false)

	u, err := fetch(ctx)
	if err != nil || u == nil {
		if err != nil {
			log.Printf("[auth_state] fetch current user failed: %v", err)
		}
		s.mu.Lock()
		s.isAuthenticated = false
		s.user = nil
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.isAuthenticated = true
	s.user = u
	s.mu.Unlock()
}
