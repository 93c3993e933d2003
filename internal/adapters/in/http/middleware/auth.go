// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	userdom "forkful/internal/domain/user"
)

// TokenVerifier verifies a bearer ID token and returns the account id
// (Firebase UID). Satisfied by the firebase account provider adapter.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (string, error)
}

// context key avoids string collisions (SA1029)
type ctxKey struct{ name string }

var (
	ctxKeyUser      = ctxKey{name: "currentUser"}
	ctxKeyAccountID = ctxKey{name: "accountId"}
)

// AuthMiddleware validates
//
//   - Authorization: Bearer <ID_TOKEN>
//
// and puts the account id plus the profile document into the request context.
type AuthMiddleware struct {
	Verifier TokenVerifier
	UserRepo userdom.Repository
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if m.Verifier == nil || m.UserRepo == nil {
			http.Error(w, "auth middleware not initialized", http.StatusServiceUnavailable)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "unauthorized: missing bearer token", http.StatusUnauthorized)
			return
		}

		idToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if idToken == "" {
			http.Error(w, "unauthorized: empty bearer token", http.StatusUnauthorized)
			return
		}

		accountID, err := m.Verifier.VerifyToken(r.Context(), idToken)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		uid := strings.TrimSpace(accountID)
		if uid == "" {
			http.Error(w, "invalid uid in token", http.StatusUnauthorized)
			return
		}

		// uid -> profile doc
		u, err := m.UserRepo.GetByAccountID(r.Context(), uid)
		if err != nil {
			log.Printf("[auth] profile lookup failed: path=%s uid=%s err=%v", r.URL.Path, uid, err)
			http.Error(w, "user not found", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyAccountID, uid)
		ctx = context.WithValue(ctx, ctxKeyUser, u)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser returns the authenticated profile from the request context.
func CurrentUser(r *http.Request) (*userdom.User, bool) {
	v := r.Context().Value(ctxKeyUser)
	if v == nil {
		return nil, false
	}
	u, ok := v.(*userdom.User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}

// AccountID returns the verified Firebase UID from the request context.
func AccountID(r *http.Request) (string, bool) {
	v := r.Context().Value(ctxKeyAccountID)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}
