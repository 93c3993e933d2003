// internal/application/usecase/auth_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdom "forkful/internal/domain/user"
	"forkful/internal/infra/identitytoolkit"
)

type fakeAccounts struct {
	uids    map[string]string // email -> uid
	nextUID int
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{uids: map[string]string{}}
}

func (f *fakeAccounts) CreateAccount(_ context.Context, email, _, _ string) (string, error) {
	if _, ok := f.uids[email]; ok {
		return "", userdom.ErrEmailTaken
	}
	f.nextUID++
	uid := fmt.Sprintf("uid-%d", f.nextUID)
	f.uids[email] = uid
	return uid, nil
}

func (f *fakeAccounts) VerifyToken(_ context.Context, idToken string) (string, error) {
	for _, uid := range f.uids {
		if idToken == "token-for-"+uid {
			return uid, nil
		}
	}
	return "", errors.New("fake: invalid token")
}

type fakeSigner struct {
	accounts *fakeAccounts
	failWith error
}

func (f *fakeSigner) SignInWithPassword(_ context.Context, email, _ string) (*identitytoolkit.Session, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	uid, ok := f.accounts.uids[email]
	if !ok {
		return nil, identitytoolkit.ErrInvalidCredentials
	}
	return &identitytoolkit.Session{
		LocalID: uid,
		Email:   email,
		IDToken: "token-for-" + uid,
	}, nil
}

type fakeUserRepo struct {
	byAccountID map[string]*userdom.User
	nextID      int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byAccountID: map[string]*userdom.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *userdom.User) error {
	f.nextID++
	u.ID = fmt.Sprintf("doc-%d", f.nextID)
	f.byAccountID[u.AccountID] = u
	return nil
}

func (f *fakeUserRepo) GetByAccountID(_ context.Context, accountID string) (*userdom.User, error) {
	u, ok := f.byAccountID[accountID]
	if !ok {
		return nil, userdom.ErrNotFound
	}
	return u, nil
}

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) Send(_ context.Context, _, to, _, _ string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func newAuthFixture() (*AuthUsecase, *fakeAccounts, *fakeUserRepo, *recordingMailer) {
	accounts := newFakeAccounts()
	users := newFakeUserRepo()
	mailer := &recordingMailer{}
	uc := NewAuthUsecase(accounts, &fakeSigner{accounts: accounts}, users).
		WithMailer(mailer, "hello@forkful.app")
	return uc, accounts, users, mailer
}

func TestAuthUsecase_SignUp(t *testing.T) {
	t.Parallel()

	uc, _, users, mailer := newAuthFixture()

	u, session, err := uc.SignUp(context.Background(), "John Doe", "john.doe@example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotNil(t, session)

	assert.Equal(t, "uid-1", u.AccountID)
	assert.Equal(t, "John Doe", u.Name)
	assert.Contains(t, u.Avatar, "John+Doe")
	assert.Equal(t, "uid-1", session.LocalID)
	assert.NotEmpty(t, session.IDToken)

	stored, err := users.GetByAccountID(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, stored.ID)

	assert.Equal(t, []string{"john.doe@example.com"}, mailer.sent)
}

func TestAuthUsecase_SignUpDuplicateEmail(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newAuthFixture()

	_, _, err := uc.SignUp(context.Background(), "John Doe", "john.doe@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = uc.SignUp(context.Background(), "Jane Doe", "john.doe@example.com", "other456")
	assert.ErrorIs(t, err, userdom.ErrEmailTaken)
}

func TestAuthUsecase_SignUpValidatesArguments(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newAuthFixture()

	_, _, err := uc.SignUp(context.Background(), "", "john.doe@example.com", "secret123")
	assert.ErrorIs(t, err, ErrAuthInvalidArgument)
	_, _, err = uc.SignUp(context.Background(), "John Doe", "  ", "secret123")
	assert.ErrorIs(t, err, ErrAuthInvalidArgument)
	_, _, err = uc.SignUp(context.Background(), "John Doe", "john.doe@example.com", "")
	assert.ErrorIs(t, err, ErrAuthInvalidArgument)
}

func TestAuthUsecase_SignUpSurvivesMailFailure(t *testing.T) {
	t.Parallel()

	uc, _, _, mailer := newAuthFixture()
	mailer.err = errors.New("sendgrid down")

	u, session, err := uc.SignUp(context.Background(), "John Doe", "john.doe@example.com", "secret123")
	require.NoError(t, err)
	assert.NotNil(t, u)
	assert.NotNil(t, session)
}

func TestAuthUsecase_SignIn(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newAuthFixture()

	_, _, err := uc.SignUp(context.Background(), "John Doe", "john.doe@example.com", "secret123")
	require.NoError(t, err)

	u, session, err := uc.SignIn(context.Background(), "john.doe@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", u.Name)
	assert.Equal(t, "uid-1", session.LocalID)
}

func TestAuthUsecase_SignInWrongCredentials(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newAuthFixture()

	_, _, err := uc.SignIn(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUsecase_CurrentUser(t *testing.T) {
	t.Parallel()

	uc, _, _, _ := newAuthFixture()

	_, session, err := uc.SignUp(context.Background(), "John Doe", "john.doe@example.com", "secret123")
	require.NoError(t, err)

	u, err := uc.CurrentUser(context.Background(), session.IDToken)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", u.Name)

	_, err = uc.CurrentUser(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = uc.CurrentUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
