// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"forkful/internal/adapters/in/http/handlers"
	"forkful/internal/adapters/in/http/middleware"
	query "forkful/internal/application/query"
	usecase "forkful/internal/application/usecase"
	userdom "forkful/internal/domain/user"
	"forkful/internal/platform/portal"
)

// RouterDeps collects all usecases (and other dependencies) injected from main.go.
type RouterDeps struct {
	AuthUC *usecase.AuthUsecase
	CartUC *usecase.CartUsecase
	MenuQ  *query.MenuQuery
	Portal *portal.Registry

	// Needed by the auth middleware guarding /cart and /portal.
	TokenVerifier middleware.TokenVerifier
	UserRepo      userdom.Repository
}

// NewRouter sets up HTTP routing. Only the surfaces whose dependencies are
// wired get mounted, so a partially configured process still serves /healthz
// and whatever it can.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if deps.AuthUC != nil {
		mux.Handle("/auth/", handlers.NewAuthHandler(deps.AuthUC))
	}

	if deps.MenuQ != nil {
		h := handlers.NewMenuHandler(deps.MenuQ)
		mux.Handle("/menu", h)
		mux.Handle("/menu/", h)
		mux.Handle("/categories", h)
	}

	auth := &middleware.AuthMiddleware{
		Verifier: deps.TokenVerifier,
		UserRepo: deps.UserRepo,
	}
	canGuard := deps.TokenVerifier != nil && deps.UserRepo != nil

	if deps.CartUC != nil && canGuard {
		h := auth.Handler(handlers.NewCartHandler(deps.CartUC))
		mux.Handle("/cart", h)
		mux.Handle("/cart/", h)
	}

	if deps.Portal != nil && canGuard {
		mux.Handle("/portal", auth.Handler(handlers.NewPortalHandler(deps.Portal)))
	}

	return mux
}
