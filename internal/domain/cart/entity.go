// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidCart = errors.New("cart: invalid")
)

// DefaultCartTTL is the inactivity window after which the cart becomes eligible for auto deletion
// (Firestore TTL should be configured on expiresAt; the in-memory repository ignores it).
const DefaultCartTTL = 7 * 24 * time.Hour

// Customization is an optional add-on/modifier attached to a menu item
// (e.g. "Extra Cheese" / addon / 2.00).
type Customization struct {
	ID    string  `json:"id" firestore:"id"`
	Name  string  `json:"name" firestore:"name"`
	Price float64 `json:"price" firestore:"price"`
	Type  string  `json:"type" firestore:"type"`
}

// LineItem represents one distinguishable entry in a cart.
// Identity is (menuItemId, customization id set); display fields are copied at add time.
type LineItem struct {
	MenuItemID     string          `json:"menuItemId" firestore:"menuItemId"`
	Name           string          `json:"name" firestore:"name"`
	Price          float64         `json:"price" firestore:"price"`
	ImageURL       string          `json:"imageUrl" firestore:"imageUrl"`
	Quantity       int             `json:"quantity" firestore:"quantity"`
	Customizations []Customization `json:"customizations" firestore:"customizations"`
}

// Candidate is the add-time input for a line item. Quantity is intentionally
// absent: AddItem always adds exactly one unit per call.
type Candidate struct {
	MenuItemID     string
	Name           string
	Price          float64
	ImageURL       string
	Customizations []Customization
}

// Cart represents "a cart document".
//   - docId = userId (Firestore)
//   - Items: itemKey -> LineItem (see ItemKey)
//   - ExpiresAt: for Firestore TTL (auto deletion), refreshed on each mutation
type Cart struct {
	// ID is the owning user id (= Firestore docId).
	ID string `json:"id" firestore:"id"`

	// Items maps the canonical item key to its line item.
	// Uniqueness is defined by (menuItemId, customization id set).
	Items map[string]LineItem `json:"items" firestore:"items"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`

	// ExpiresAt is used for Firestore TTL.
	ExpiresAt time.Time `json:"expiresAt" firestore:"expiresAt"`
}

// NewCart creates an empty cart owned by id (the Firestore docId).
func NewCart(id string, now time.Time) (*Cart, error) {
	docID := strings.TrimSpace(id)
	if docID == "" {
		return nil, ErrInvalidCart
	}
	return &Cart{
		ID:        docID,
		Items:     map[string]LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(DefaultCartTTL),
	}, nil
}

// ItemKey derives the canonical lookup key for a (menuItemId, customizations) pair:
// the menu item id followed by the sorted, de-duplicated customization ids,
// joined with "__". Order and duplication of the input are irrelevant, and a
// nil slice produces the same key as an empty one.
func ItemKey(menuItemID string, customizations []Customization) string {
	mid := strings.TrimSpace(menuItemID)

	ids := make([]string, 0, len(customizations))
	seen := map[string]struct{}{}
	for _, cu := range customizations {
		cid := strings.TrimSpace(cu.ID)
		if cid == "" {
			continue
		}
		if _, ok := seen[cid]; ok {
			continue
		}
		seen[cid] = struct{}{}
		ids = append(ids, cid)
	}
	if len(ids) == 0 {
		return mid
	}

	sort.Strings(ids)
	return mid + "__" + strings.Join(ids, "__")
}

// AddItem inserts cand as a new line item with quantity 1, or increments the
// quantity of the existing line item with the same (menuItemId, customization set).
// The stored customization list of an existing line item is left untouched.
// A candidate without a menu item id is ignored.
func (c *Cart) AddItem(cand Candidate, now time.Time) {
	if c == nil {
		return
	}

	mid := strings.TrimSpace(cand.MenuItemID)
	if mid == "" {
		return
	}

	if c.Items == nil {
		c.Items = map[string]LineItem{}
	}

	key := ItemKey(mid, cand.Customizations)
	if it, ok := c.Items[key]; ok {
		it.Quantity++
		c.Items[key] = it
	} else {
		c.Items[key] = LineItem{
			MenuItemID:     mid,
			Name:           strings.TrimSpace(cand.Name),
			Price:          cand.Price,
			ImageURL:       strings.TrimSpace(cand.ImageURL),
			Quantity:       1,
			Customizations: cloneCustomizations(cand.Customizations),
		}
	}

	c.touch(now)
}

// RemoveItem removes the line item matching (menuItemId, customization set).
// No-op when there is no match.
func (c *Cart) RemoveItem(menuItemID string, customizations []Customization, now time.Time) {
	if c == nil || len(c.Items) == 0 {
		return
	}

	key := ItemKey(menuItemID, customizations)
	if _, ok := c.Items[key]; !ok {
		return
	}
	delete(c.Items, key)
	c.touch(now)
}

// IncreaseQty increments the quantity of the matching line item by 1.
// No-op when there is no match.
func (c *Cart) IncreaseQty(menuItemID string, customizations []Customization, now time.Time) {
	if c == nil || len(c.Items) == 0 {
		return
	}

	key := ItemKey(menuItemID, customizations)
	it, ok := c.Items[key]
	if !ok {
		return
	}
	it.Quantity++
	c.Items[key] = it
	c.touch(now)
}

// DecreaseQty decrements the quantity of the matching line item by 1.
// The line item is removed entirely when its quantity would drop to zero.
// No-op when there is no match.
func (c *Cart) DecreaseQty(menuItemID string, customizations []Customization, now time.Time) {
	if c == nil || len(c.Items) == 0 {
		return
	}

	key := ItemKey(menuItemID, customizations)
	it, ok := c.Items[key]
	if !ok {
		return
	}

	it.Quantity--
	if it.Quantity <= 0 {
		delete(c.Items, key)
	} else {
		c.Items[key] = it
	}
	c.touch(now)
}

// Clear empties the item collection unconditionally.
func (c *Cart) Clear(now time.Time) {
	if c == nil {
		return
	}
	c.Items = map[string]LineItem{}
	c.touch(now)
}

// TotalItems returns the sum of quantities across all line items
// (not the count of distinct line items).
func (c *Cart) TotalItems() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// TotalPrice returns sum((basePrice + sum(customization prices)) * quantity)
// over all line items. No rounding is applied; callers compare with tolerance.
func (c *Cart) TotalPrice() float64 {
	if c == nil {
		return 0
	}
	total := 0.0
	for _, it := range c.Items {
		unit := it.Price
		for _, cu := range it.Customizations {
			unit += cu.Price
		}
		total += unit * float64(it.Quantity)
	}
	return total
}

// SortedItems returns the line items in stable (item key) order.
func (c *Cart) SortedItems() []LineItem {
	if c == nil || len(c.Items) == 0 {
		return []LineItem{}
	}

	keys := make([]string, 0, len(c.Items))
	for k := range c.Items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]LineItem, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.Items[k])
	}
	return out
}

// Clone returns a deep copy (repositories hand copies out so callers cannot
// mutate stored state except through cart operations).
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}

	items := make(map[string]LineItem, len(c.Items))
	for k, it := range c.Items {
		it.Customizations = cloneCustomizations(it.Customizations)
		items[k] = it
	}

	return &Cart{
		ID:        c.ID,
		Items:     items,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		ExpiresAt: c.ExpiresAt,
	}
}

func (c *Cart) touch(now time.Time) {
	c.UpdatedAt = now
	c.ExpiresAt = now.Add(DefaultCartTTL)
}

// ----------------------------
// Helpers
// ----------------------------

func cloneCustomizations(src []Customization) []Customization {
	if src == nil {
		return []Customization{}
	}
	out := make([]Customization, len(src))
	copy(out, src)
	return out
}
