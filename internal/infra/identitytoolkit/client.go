// internal/infra/identitytoolkit/client.go
package identitytoolkit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrInvalidCredentials covers the Identity Toolkit rejections that mean
// "wrong email or password" rather than an operational failure.
var ErrInvalidCredentials = errors.New("identitytoolkit: invalid credentials")

const defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

// Client calls the Identity Toolkit REST API. The Admin SDK covers account
// management and token verification but has no password grant, so email/
// password sign-in goes through accounts:signInWithPassword with the web
// API key.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// WithBaseURL overrides the endpoint (tests point this at httptest servers).
func (c *Client) WithBaseURL(baseURL string) *Client {
	if u := strings.TrimSpace(baseURL); u != "" {
		c.baseURL = strings.TrimRight(u, "/")
	}
	return c
}

// Session is the successful sign-in result.
type Session struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithPassword exchanges email/password for an ID token.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	if c == nil || c.apiKey == "" {
		return nil, errors.New("identitytoolkit: api key is empty")
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	body, err := json.Marshal(signInRequest{
		Email:             strings.TrimSpace(email),
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/accounts:signInWithPassword?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identitytoolkit: sign-in request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var ae apiError
		_ = json.Unmarshal(raw, &ae)
		if isCredentialError(ae.Error.Message) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("identitytoolkit: sign-in failed: status=%d message=%s",
			resp.StatusCode, ae.Error.Message)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	if s.IDToken == "" {
		return nil, errors.New("identitytoolkit: response has no idToken")
	}
	return &s, nil
}

func isCredentialError(message string) bool {
	switch {
	case strings.Contains(message, "EMAIL_NOT_FOUND"),
		strings.Contains(message, "INVALID_PASSWORD"),
		strings.Contains(message, "INVALID_LOGIN_CREDENTIALS"),
		strings.Contains(message, "USER_DISABLED"):
		return true
	}
	return false
}
