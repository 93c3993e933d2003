// internal/adapters/in/http/handlers/cart_handler.go
package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"forkful/internal/adapters/in/http/middleware"
	usecase "forkful/internal/application/usecase"
	cartdom "forkful/internal/domain/cart"
)

// CartHandler serves the per-user cart endpoints.
// Intended mount examples (router side):
// - GET    /cart
// - DELETE /cart
// - GET    /cart/summary
// - POST   /cart/items
// - PUT    /cart/items/increase
// - PUT    /cart/items/decrease
// - DELETE /cart/items
//
// The owning user id always comes from the verified bearer token; bodies and
// query strings never carry it.
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	// Tolerate StripPrefix("/cart") mounts: the path seen here may be
	// "/cart/items", "/items" or "/".
	path := strings.TrimRight(r.URL.Path, "/")
	if path == "" {
		path = "/"
	}

	isGET := r.Method == http.MethodGet
	isDEL := r.Method == http.MethodDelete
	isPOST := r.Method == http.MethodPost
	isPUT := r.Method == http.MethodPut

	hasSuffixAny := func(p string, suffixes ...string) bool {
		for _, s := range suffixes {
			if s != "" && strings.HasSuffix(p, s) {
				return true
			}
		}
		return false
	}

	switch {
	// ====== GET /cart/summary (or /summary)
	case isGET && hasSuffixAny(path, "/cart/summary", "/summary"):
		h.handleSummary(w, r)
		return

	// ====== PUT /cart/items/increase (or /items/increase)
	case isPUT && hasSuffixAny(path, "/items/increase"):
		h.handleChangeQty(w, r, true)
		return

	// ====== PUT /cart/items/decrease (or /items/decrease)
	case isPUT && hasSuffixAny(path, "/items/decrease"):
		h.handleChangeQty(w, r, false)
		return

	// ====== POST /cart/items (or /items)
	case isPOST && hasSuffixAny(path, "/cart/items", "/items"):
		h.handleAddItem(w, r)
		return

	// ====== DELETE /cart/items (or /items)
	case isDEL && hasSuffixAny(path, "/cart/items", "/items"):
		h.handleRemoveItem(w, r)
		return

	// ====== GET /cart (or "/")
	case isGET && (hasSuffixAny(path, "/cart") || path == "/"):
		h.handleGet(w, r)
		return

	// ====== DELETE /cart (or "/")
	case isDEL && (hasSuffixAny(path, "/cart") || path == "/"):
		h.handleClear(w, r)
		return
	}

	writeErr(w, http.StatusNotFound, "not found")
}

// -------------------------
// handlers
// -------------------------

func (h *CartHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.AccountID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	c, err := h.uc.GetOrCreate(r.Context(), userID)
	if err != nil {
		h.writeCartErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(userID, c))
}

func (h *CartHandler) handleSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.AccountID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	totalItems, totalPrice, err := h.uc.Summary(r.Context(), userID)
	if err != nil {
		h.writeCartErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"totalItems": totalItems,
		"totalPrice": totalPrice,
	})
}

func (h *CartHandler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.AccountID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req cartItemReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.MenuItemID) == "" {
		writeErr(w, http.StatusBadRequest, "menuItemId is required")
		return
	}

	c, err := h.uc.AddItem(r.Context(), userID, cartdom.Candidate{
		MenuItemID:     req.MenuItemID,
		Name:           req.Name,
		Price:          req.Price,
		ImageURL:       req.ImageURL,
		Customizations: req.domainCustomizations(),
	})
	if err != nil {
		h.writeCartErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(userID, c))
}

func (h *CartHandler) handleChangeQty(w http.ResponseWriter, r *http.Request, increase bool) {
	userID, ok := middleware.AccountID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req cartItemReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.MenuItemID) == "" {
		writeErr(w, http.StatusBadRequest, "menuItemId is required")
		return
	}

	var (
		c   *cartdom.Cart
		err error
	)
	if increase {
		c, err = h.uc.IncreaseQty(r.Context(), userID, req.MenuItemID, req.domainCustomizations())
	} else {
		c, err = h.uc.DecreaseQty(r.Context(), userID, req.MenuItemID, req.domainCustomizations())
	}
	if err != nil {
		h.writeCartErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(userID, c))
}

func (h *CartHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.AccountID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req cartItemReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.MenuItemID) == "" {
		writeErr(w, http.StatusBadRequest, "menuItemId is required")
		return
	}

	c, err := h.uc.RemoveItem(r.Context(), userID, req.MenuItemID, req.domainCustomizations())
	if err != nil {
		h.writeCartErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(userID, c))
}

func (h *CartHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.AccountID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if _, err := h.uc.Clear(r.Context(), userID); err != nil {
		h.writeCartErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) writeCartErr(w http.ResponseWriter, err error) {
	if errors.Is(err, usecase.ErrCartInvalidArgument) || errors.Is(err, cartdom.ErrInvalidCart) {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, usecase.ErrCartNotFound) {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}
	writeErr(w, http.StatusInternalServerError, err.Error())
}

// -------------------------
// request/response DTO
// -------------------------

type customizationReq struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Type  string  `json:"type"`
}

type cartItemReq struct {
	MenuItemID     string             `json:"menuItemId"`
	Name           string             `json:"name"`
	Price          float64            `json:"price"`
	ImageURL       string             `json:"imageUrl"`
	Customizations []customizationReq `json:"customizations"`
}

func (req cartItemReq) domainCustomizations() []cartdom.Customization {
	if len(req.Customizations) == 0 {
		return nil
	}
	out := make([]cartdom.Customization, 0, len(req.Customizations))
	for _, c := range req.Customizations {
		out = append(out, cartdom.Customization{
			ID:    c.ID,
			Name:  c.Name,
			Price: c.Price,
			Type:  c.Type,
		})
	}
	return out
}

type cartResponse struct {
	// docId=userId, so the Cart domain carries it as ID; responses name it
	// explicitly for the client.
	UserID string `json:"userId"`

	// itemKey -> line item
	Items map[string]cartLineItemDTO `json:"items"`

	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	ExpiresAt string `json:"expiresAt"`
}

type cartLineItemDTO struct {
	MenuItemID     string             `json:"menuItemId"`
	Name           string             `json:"name"`
	Price          float64            `json:"price"`
	ImageURL       string             `json:"imageUrl,omitempty"`
	Quantity       int                `json:"quantity"`
	Customizations []customizationReq `json:"customizations"`
}

func toCartResponse(userID string, c *cartdom.Cart) cartResponse {
	items := map[string]cartLineItemDTO{}
	if c != nil && c.Items != nil {
		// stable copy
		keys := make([]string, 0, len(c.Items))
		for k := range c.Items {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			it := c.Items[k]
			custs := make([]customizationReq, 0, len(it.Customizations))
			for _, cu := range it.Customizations {
				custs = append(custs, customizationReq{
					ID:    cu.ID,
					Name:  cu.Name,
					Price: cu.Price,
					Type:  cu.Type,
				})
			}
			items[k] = cartLineItemDTO{
				MenuItemID:     it.MenuItemID,
				Name:           it.Name,
				Price:          it.Price,
				ImageURL:       it.ImageURL,
				Quantity:       it.Quantity,
				Customizations: custs,
			}
		}
	}

	if c == nil {
		return cartResponse{
			UserID: strings.TrimSpace(userID),
			Items:  items,
		}
	}

	return cartResponse{
		UserID:     strings.TrimSpace(userID),
		Items:      items,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
		CreatedAt:  toRFC3339(c.CreatedAt),
		UpdatedAt:  toRFC3339(c.UpdatedAt),
		ExpiresAt:  toRFC3339(c.ExpiresAt),
	}
}
