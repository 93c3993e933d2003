// internal/adapters/out/firebase/account_provider_fb.go
package firebase

import (
	"context"
	"errors"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	userdom "forkful/internal/domain/user"
)

// AccountProviderFB implements usecase.AccountProvider on the Firebase
// Admin SDK. Duplicate emails are surfaced as user.ErrEmailTaken so the
// HTTP layer can answer 409 without knowing about Firebase.
type AccountProviderFB struct {
	Auth *fbauth.Client
}

func NewAccountProviderFB(auth *fbauth.Client) *AccountProviderFB {
	return &AccountProviderFB{Auth: auth}
}

func (p *AccountProviderFB) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	if p == nil || p.Auth == nil {
		return "", errors.New("account_provider_fb: auth client is nil")
	}

	params := (&fbauth.UserToCreate{}).
		Email(strings.TrimSpace(email)).
		Password(password).
		DisplayName(strings.TrimSpace(displayName))

	rec, err := p.Auth.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return "", userdom.ErrEmailTaken
		}
		return "", err
	}
	return rec.UID, nil
}

func (p *AccountProviderFB) VerifyToken(ctx context.Context, idToken string) (string, error) {
	if p == nil || p.Auth == nil {
		return "", errors.New("account_provider_fb: auth client is nil")
	}

	token, err := p.Auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}

	uid := strings.TrimSpace(token.UID)
	if uid == "" {
		return "", errors.New("account_provider_fb: token has no uid")
	}
	return uid, nil
}
