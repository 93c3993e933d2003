// internal/domain/user/repository_port.go
package user

import "context"

// Repository is a persistence port for user profiles.
//
// Storage (Firestore):
// - collection: users
// - docId: generated; accountId is indexed for lookups by auth uid.
type Repository interface {
	// Create persists u and fills in the generated doc id.
	Create(ctx context.Context, u *User) error

	// GetByAccountID returns ErrNotFound when no profile exists for the uid.
	GetByAccountID(ctx context.Context, accountID string) (*User, error)
}
