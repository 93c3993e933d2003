// internal/application/usecase/auth_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"forkful/internal/infra/identitytoolkit"

	userdom "forkful/internal/domain/user"
)

var (
	ErrAuthInvalidArgument = errors.New("auth_usecase: invalid argument")
	ErrInvalidCredentials  = errors.New("auth_usecase: invalid credentials")
	ErrUnauthenticated     = errors.New("auth_usecase: unauthenticated")
)

// AccountProvider abstracts the auth backend (Firebase Admin in production).
// CreateAccount maps a duplicate email to user.ErrEmailTaken.
type AccountProvider interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (accountID string, err error)
	VerifyToken(ctx context.Context, idToken string) (accountID string, err error)
}

// PasswordAuthenticator is the password grant (Identity Toolkit REST).
type PasswordAuthenticator interface {
	SignInWithPassword(ctx context.Context, email, password string) (*identitytoolkit.Session, error)
}

// EmailSender sends transactional mail (SendGrid adapter).
type EmailSender interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// AuthUsecase wires account creation, password sign-in and token-based
// profile lookup. The welcome email is best effort; a mail failure never
// fails the sign-up.
type AuthUsecase struct {
	accounts AccountProvider
	signer   PasswordAuthenticator
	users    userdom.Repository
	mailer   EmailSender
	mailFrom string
	clock    Clock
}

func NewAuthUsecase(accounts AccountProvider, signer PasswordAuthenticator, users userdom.Repository) *AuthUsecase {
	return &AuthUsecase{
		accounts: accounts,
		signer:   signer,
		users:    users,
		clock:    systemClock{},
	}
}

// WithMailer enables the welcome email. No-op when sender or from is empty.
func (uc *AuthUsecase) WithMailer(sender EmailSender, from string) *AuthUsecase {
	uc.mailer = sender
	uc.mailFrom = strings.TrimSpace(from)
	return uc
}

// WithClock is useful for tests.
func (uc *AuthUsecase) WithClock(clock Clock) *AuthUsecase {
	if clock != nil {
		uc.clock = clock
	}
	return uc
}

// SignUp creates the auth account, writes the profile document, then signs
// the new user in so the client gets a session in one round trip.
func (uc *AuthUsecase) SignUp(ctx context.Context, name, email, password string) (*userdom.User, *identitytoolkit.Session, error) {
	n := strings.TrimSpace(name)
	e := strings.TrimSpace(email)
	if n == "" || e == "" || password == "" {
		return nil, nil, ErrAuthInvalidArgument
	}

	accountID, err := uc.accounts.CreateAccount(ctx, e, password, n)
	if err != nil {
		return nil, nil, err
	}

	u, err := userdom.New(accountID, n, e, initialsAvatarURL(n), uc.clock.Now())
	if err != nil {
		return nil, nil, err
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, nil, err
	}

	uc.sendWelcome(ctx, u)

	session, err := uc.signIn(ctx, e, password)
	if err != nil {
		return nil, nil, err
	}
	return u, session, nil
}

// SignIn exchanges email/password for a session and loads the profile.
func (uc *AuthUsecase) SignIn(ctx context.Context, email, password string) (*userdom.User, *identitytoolkit.Session, error) {
	e := strings.TrimSpace(email)
	if e == "" || password == "" {
		return nil, nil, ErrAuthInvalidArgument
	}

	session, err := uc.signIn(ctx, e, password)
	if err != nil {
		return nil, nil, err
	}

	u, err := uc.users.GetByAccountID(ctx, session.LocalID)
	if err != nil {
		return nil, nil, err
	}
	return u, session, nil
}

// CurrentUser resolves a bearer ID token to the profile document.
func (uc *AuthUsecase) CurrentUser(ctx context.Context, idToken string) (*userdom.User, error) {
	tok := strings.TrimSpace(idToken)
	if tok == "" {
		return nil, ErrUnauthenticated
	}

	accountID, err := uc.accounts.VerifyToken(ctx, tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return uc.users.GetByAccountID(ctx, accountID)
}

func (uc *AuthUsecase) signIn(ctx context.Context, email, password string) (*identitytoolkit.Session, error) {
	session, err := uc.signer.SignInWithPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, identitytoolkit.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return session, nil
}

func (uc *AuthUsecase) sendWelcome(ctx context.Context, u *userdom.User) {
	if uc.mailer == nil || uc.mailFrom == "" {
		return
	}

	subject := "Welcome to Forkful"
	body := fmt.Sprintf("Hi %s,\n\nYour Forkful account is ready. Bon appetit!\n", u.Name)
	if err := uc.mailer.Send(ctx, uc.mailFrom, u.Email, subject, body); err != nil {
		log.Printf("[auth_usecase] welcome mail failed (ignored): to=%s err=%v", u.Email, err)
	}
}

// initialsAvatarURL builds the placeholder avatar shown until the user
// uploads their own picture.
func initialsAvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(strings.TrimSpace(name))
}
