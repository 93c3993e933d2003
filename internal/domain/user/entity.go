// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidUser = errors.New("user: invalid")
	ErrNotFound    = errors.New("user: not found")
	ErrEmailTaken  = errors.New("user: email already in use")
)

// User is the profile document written alongside the auth account.
//   - AccountID is the auth provider uid (Firebase UID); the docId is its own id.
//   - Avatar is an initials-avatar URL generated at sign-up.
type User struct {
	ID        string    `json:"id" firestore:"id"`
	AccountID string    `json:"accountId" firestore:"accountId"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Avatar    string    `json:"avatar" firestore:"avatar"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// New validates and builds a profile for a freshly created account.
func New(accountID, name, email, avatar string, now time.Time) (*User, error) {
	aid := strings.TrimSpace(accountID)
	n := strings.TrimSpace(name)
	e := strings.TrimSpace(email)
	if aid == "" || n == "" || e == "" {
		return nil, ErrInvalidUser
	}
	return &User{
		AccountID: aid,
		Name:      n,
		Email:     e,
		Avatar:    strings.TrimSpace(avatar),
		CreatedAt: now,
	}, nil
}
