// internal/adapters/in/http/handlers/portal_handler.go
package handlers

import (
	"net/http"
	"strings"

	"forkful/internal/platform/portal"
)

// PortalHandler exposes the in-process portal registry over HTTP so operators
// can inspect and override what the app shell is projecting.
// Intended mount examples (router side):
// - GET    /portal          (snapshot)
// - PUT    /portal          {name, payload} (insert or overwrite)
// - DELETE /portal?name=... (remove)
type PortalHandler struct {
	reg *portal.Registry
}

func NewPortalHandler(reg *portal.Registry) http.Handler {
	return &PortalHandler{reg: reg}
}

func (h *PortalHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.reg == nil {
		writeErr(w, http.StatusInternalServerError, "portal handler is not configured")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleSnapshot(w, r)
	case http.MethodPut, http.MethodPost:
		h.handleSet(w, r)
	case http.MethodDelete:
		h.handleRemove(w, r)
	default:
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *PortalHandler) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	entries := h.reg.Components()

	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]any{
			"name":    e.Name,
			"payload": e.Payload,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"components": out})
}

type portalSetReq struct {
	Name    string `json:"name"`
	Payload any    `json:"payload"`
}

func (h *PortalHandler) handleSet(w http.ResponseWriter, r *http.Request) {
	var req portalSetReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeErr(w, http.StatusBadRequest, "name is required")
		return
	}

	h.reg.AddComponent(req.Name, req.Payload)
	h.handleSnapshot(w, r)
}

func (h *PortalHandler) handleRemove(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeErr(w, http.StatusBadRequest, "name is required")
		return
	}

	h.reg.RemoveComponent(name)
	w.WriteHeader(http.StatusNoContent)
}
