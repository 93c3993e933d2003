// internal/adapters/in/http/handlers/auth_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	usecase "forkful/internal/application/usecase"
	userdom "forkful/internal/domain/user"
	"forkful/internal/infra/identitytoolkit"
)

// AuthHandler serves the public auth endpoints.
// Intended mount examples (router side):
// - POST /auth/sign-up
// - POST /auth/sign-in
// - GET  /auth/me (bearer token, no middleware required)
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) http.Handler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "auth handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	if path == "" {
		path = "/"
	}

	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(path, "/sign-up"):
		h.handleSignUp(w, r)
		return

	case r.Method == http.MethodPost && strings.HasSuffix(path, "/sign-in"):
		h.handleSignIn(w, r)
		return

	case r.Method == http.MethodGet && strings.HasSuffix(path, "/me"):
		h.handleMe(w, r)
		return
	}

	writeErr(w, http.StatusNotFound, "not found")
}

// -------------------------
// handlers
// -------------------------

type signUpReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	u, session, err := h.uc.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAuthInvalidArgument), errors.Is(err, userdom.ErrInvalidUser):
			writeErr(w, http.StatusBadRequest, "name, email and password are required")
		case errors.Is(err, userdom.ErrEmailTaken):
			writeErr(w, http.StatusConflict, "email already in use")
		default:
			writeErr(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(u, session))
}

func (h *AuthHandler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	u, session, err := h.uc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAuthInvalidArgument):
			writeErr(w, http.StatusBadRequest, "email and password are required")
		case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, userdom.ErrNotFound):
			writeErr(w, http.StatusUnauthorized, "invalid credentials")
		default:
			writeErr(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(u, session))
}

func (h *AuthHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

	u, err := h.uc.CurrentUser(r.Context(), idToken)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthenticated):
			writeErr(w, http.StatusUnauthorized, "unauthorized")
		case errors.Is(err, userdom.ErrNotFound):
			writeErr(w, http.StatusForbidden, "user not found")
		default:
			writeErr(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": toUserDTO(u)})
}

// -------------------------
// response DTO
// -------------------------

type userDTO struct {
	ID        string `json:"id"`
	AccountID string `json:"accountId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func toUserDTO(u *userdom.User) userDTO {
	if u == nil {
		return userDTO{}
	}
	return userDTO{
		ID:        u.ID,
		AccountID: u.AccountID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: toRFC3339(u.CreatedAt),
	}
}

func toSessionResponse(u *userdom.User, s *identitytoolkit.Session) map[string]any {
	resp := map[string]any{"user": toUserDTO(u)}
	if s != nil {
		resp["session"] = map[string]any{
			"idToken":      s.IDToken,
			"refreshToken": s.RefreshToken,
			"expiresIn":    s.ExpiresIn,
		}
	}
	return resp
}
