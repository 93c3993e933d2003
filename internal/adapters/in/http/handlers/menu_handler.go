// internal/adapters/in/http/handlers/menu_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	query "forkful/internal/application/query"
	menudom "forkful/internal/domain/menu"
)

// MenuHandler serves the public catalog endpoints.
// Intended mount examples (router side):
// - GET /menu?category=...&query=...&limit=...
// - GET /menu/{itemId}
// - GET /categories
type MenuHandler struct {
	q *query.MenuQuery
}

func NewMenuHandler(q *query.MenuQuery) http.Handler {
	return &MenuHandler{q: q}
}

func (h *MenuHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.q == nil {
		writeErr(w, http.StatusInternalServerError, "menu handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	if path == "" {
		path = "/"
	}

	switch {
	case strings.HasSuffix(path, "/categories") || path == "/categories":
		h.handleCategories(w, r)
		return

	case strings.HasSuffix(path, "/menu") || path == "/":
		h.handleList(w, r)
		return
	}

	// GET /menu/{itemId}
	if id := itemIDFromPath(path); id != "" {
		h.handleDetail(w, r, id)
		return
	}

	writeErr(w, http.StatusNotFound, "not found")
}

func (h *MenuHandler) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.q.ListCategories(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": cats})
}

func (h *MenuHandler) handleList(w http.ResponseWriter, r *http.Request) {
	f := menudom.Filter{
		CategoryID: strings.TrimSpace(r.URL.Query().Get("category")),
		Query:      strings.TrimSpace(r.URL.Query().Get("query")),
		Limit:      parseIntDefault(r.URL.Query().Get("limit"), 0),
	}

	items, err := h.q.ListItems(r.Context(), f)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *MenuHandler) handleDetail(w http.ResponseWriter, r *http.Request, itemID string) {
	d, err := h.q.GetItemDetail(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, menudom.ErrNotFound) {
			writeErr(w, http.StatusNotFound, "not found")
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// itemIDFromPath extracts {itemId} from ".../menu/{itemId}".
func itemIDFromPath(path string) string {
	const marker = "/menu/"
	i := strings.LastIndex(path, marker)
	if i < 0 {
		return ""
	}
	rest := path[i+len(marker):]
	if rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	return strings.TrimSpace(rest)
}
