// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	userdom "forkful/internal/domain/user"
)

// UserRepositoryFS implements user.Repository using Firestore.
//
// Collection design:
// - collection: users
// - docId: auto id (profile id); accountId field carries the Firebase UID
type UserRepositoryFS struct {
	Client *firestore.Client
}

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("users")
}

// Create writes the profile doc and fills u.ID with the generated docId.
func (r *UserRepositoryFS) Create(ctx context.Context, u *userdom.User) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}
	if u == nil {
		return errors.New("user_repository_fs: user is nil")
	}
	if strings.TrimSpace(u.AccountID) == "" {
		return userdom.ErrInvalidUser
	}

	ref := r.col().NewDoc()
	u.ID = ref.ID

	_, err := ref.Set(ctx, map[string]any{
		"id":        u.ID,
		"accountId": u.AccountID,
		"name":      u.Name,
		"email":     u.Email,
		"avatar":    u.Avatar,
		"createdAt": u.CreatedAt,
	})
	return err
}

// GetByAccountID looks the profile up by the Firebase UID.
// Returns user.ErrNotFound when no profile doc exists.
func (r *UserRepositoryFS) GetByAccountID(ctx context.Context, accountID string) (*userdom.User, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("user_repository_fs: firestore client is nil")
	}

	aid := strings.TrimSpace(accountID)
	if aid == "" {
		return nil, userdom.ErrNotFound
	}

	it := r.col().
		Where("accountId", "==", aid).
		Limit(1).
		Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, userdom.ErrNotFound
		}
		return nil, err
	}

	raw := doc.Data()
	created, _ := asTime(raw["createdAt"])
	return &userdom.User{
		ID:        doc.Ref.ID,
		AccountID: aid,
		Name:      strings.TrimSpace(asString(raw["name"])),
		Email:     strings.TrimSpace(asString(raw["email"])),
		Avatar:    strings.TrimSpace(asString(raw["avatar"])),
		CreatedAt: created,
	}, nil
}
