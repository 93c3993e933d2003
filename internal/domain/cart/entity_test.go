// internal/domain/cart/entity_test.go
package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	burger = Candidate{
		MenuItemID: "item1",
		Name:       "Burger",
		Price:      10.99,
		ImageURL:   "https://example.com/burger.jpg",
	}
	pizza = Candidate{
		MenuItemID: "item2",
		Name:       "Pizza",
		Price:      15.50,
		ImageURL:   "https://example.com/pizza.jpg",
	}

	extraCheese = Customization{ID: "custom1", Name: "Extra Cheese", Price: 2, Type: "addon"}
	bacon       = Customization{ID: "custom2", Name: "Bacon", Price: 3.5, Type: "addon"}
	noOnions    = Customization{ID: "custom3", Name: "No Onions", Price: 0, Type: "removal"}
)

func withCustomizations(c Candidate, cs ...Customization) Candidate {
	c.Customizations = cs
	return c
}

func newTestCart(t *testing.T) *Cart {
	t.Helper()
	c, err := NewCart("user-1", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return c
}

func TestNewCart_Empty(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalItems())
	assert.Zero(t, c.TotalPrice())
}

func TestNewCart_RequiresID(t *testing.T) {
	t.Parallel()

	_, err := NewCart("  ", time.Now())
	assert.ErrorIs(t, err, ErrInvalidCart)
}

func TestItemKey_OrderAndDuplicateIndependent(t *testing.T) {
	t.Parallel()

	k1 := ItemKey("item1", []Customization{extraCheese, bacon})
	k2 := ItemKey("item1", []Customization{bacon, extraCheese})
	k3 := ItemKey("item1", []Customization{bacon, extraCheese, bacon})
	assert.Equal(t, k1, k2)
	assert.Equal(t, k1, k3)
	assert.Equal(t, "item1__custom1__custom2", k1)
}

func TestItemKey_NilEqualsEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ItemKey("item1", nil), ItemKey("item1", []Customization{}))
	assert.Equal(t, "item1", ItemKey("item1", nil))
}

func TestAddItem_NewWithoutCustomizations(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(burger, time.Now())

	items := c.SortedItems()
	require.Len(t, items, 1)
	assert.Equal(t, "item1", items[0].MenuItemID)
	assert.Equal(t, "Burger", items[0].Name)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, []Customization{}, items[0].Customizations)
}

func TestAddItem_SamePairIncrementsQuantity(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(burger, time.Now())
	c.AddItem(burger, time.Now())

	items := c.SortedItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItem_CustomizationOrderCollapses(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, extraCheese, bacon), time.Now())
	c.AddItem(withCustomizations(burger, bacon, extraCheese), time.Now())

	items := c.SortedItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItem_DistinctCustomizationSetsStayDistinct(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, extraCheese), time.Now())
	c.AddItem(withCustomizations(burger, extraCheese, bacon), time.Now())

	items := c.SortedItems()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestAddItem_NilAndEmptyCustomizationsCollapse(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(burger, time.Now()) // nil customizations
	c.AddItem(withCustomizations(burger), time.Now())

	items := c.SortedItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItem_DifferentProducts(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(burger, time.Now())
	c.AddItem(pizza, time.Now())

	items := c.SortedItems()
	require.Len(t, items, 2)
	assert.Equal(t, "item1", items[0].MenuItemID)
	assert.Equal(t, "item2", items[1].MenuItemID)
}

func TestAddItem_EmptyIDIgnored(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(Candidate{MenuItemID: "  "}, time.Now())
	assert.Empty(t, c.Items)
}

func TestRemoveItem_MatchingSet(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, extraCheese, bacon), time.Now())
	c.RemoveItem("item1", []Customization{bacon, extraCheese}, time.Now())
	assert.Empty(t, c.Items)
}

func TestRemoveItem_DifferentSetIsNoop(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, extraCheese, bacon), time.Now())
	c.RemoveItem("item1", []Customization{bacon}, time.Now())
	assert.Len(t, c.Items, 1)
}

func TestRemoveItem_OnlyTargetsMatchingLineItem(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, extraCheese), time.Now())
	c.AddItem(withCustomizations(burger, bacon), time.Now())
	c.RemoveItem("item1", []Customization{extraCheese}, time.Now())

	items := c.SortedItems()
	require.Len(t, items, 1)
	assert.Equal(t, []Customization{bacon}, items[0].Customizations)
}

func TestIncreaseQty(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, extraCheese), time.Now())
	c.AddItem(withCustomizations(burger, bacon), time.Now())

	c.IncreaseQty("item1", []Customization{extraCheese}, time.Now())
	c.IncreaseQty("item1", []Customization{noOnions}, time.Now()) // no match

	items := c.SortedItems()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestDecreaseQty(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(burger, time.Now())
	c.AddItem(burger, time.Now())
	c.DecreaseQty("item1", nil, time.Now())

	items := c.SortedItems()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestDecreaseQty_RemovesAtZero(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, extraCheese), time.Now())
	c.DecreaseQty("item1", []Customization{extraCheese}, time.Now())
	assert.Empty(t, c.Items)
}

func TestDecreaseQty_NoMatchIsNoop(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, extraCheese), time.Now())
	c.AddItem(withCustomizations(burger, extraCheese), time.Now())
	c.DecreaseQty("item1", []Customization{bacon}, time.Now())

	items := c.SortedItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestClear(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, extraCheese, bacon), time.Now())
	c.AddItem(pizza, time.Now())
	c.Clear(time.Now())

	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalItems())
	assert.Zero(t, c.TotalPrice())
}

func TestTotalItems_SumsQuantities(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(burger, time.Now())
	c.AddItem(burger, time.Now())
	c.AddItem(pizza, time.Now())
	assert.Equal(t, 3, c.TotalItems())
}

func TestTotalPrice(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(burger, time.Now())
	c.AddItem(pizza, time.Now())
	assert.InDelta(t, 26.49, c.TotalPrice(), 1e-9)
}

func TestTotalPrice_WithCustomizations(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, extraCheese, bacon), time.Now())
	assert.InDelta(t, 16.49, c.TotalPrice(), 1e-9)

	c.AddItem(withCustomizations(burger, extraCheese, bacon), time.Now())
	assert.InDelta(t, 32.98, c.TotalPrice(), 1e-9)
}

func TestTotalPrice_ZeroPriceCustomization(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, noOnions), time.Now())
	assert.InDelta(t, 10.99, c.TotalPrice(), 1e-9)
}

func TestTotalPrice_MixedItems(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, extraCheese), time.Now()) // 12.99
	c.AddItem(pizza, time.Now())                                   // 15.50
	assert.InDelta(t, 28.49, c.TotalPrice(), 1e-9)
}

func TestAddItem_KeepsStoredCustomizationListOnIncrement(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, extraCheese, bacon), time.Now())
	c.AddItem(withCustomizations(burger, bacon, extraCheese), time.Now())

	items := c.SortedItems()
	require.Len(t, items, 1)
	// first insertion order wins
	assert.Equal(t, []Customization{extraCheese, bacon}, items[0].Customizations)
}

func TestTouch_RefreshesUpdatedAtAndExpiresAt(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(3 * time.Hour)

	c, err := NewCart("user-1", created)
	require.NoError(t, err)

	c.AddItem(burger, later)
	assert.Equal(t, later, c.UpdatedAt)
	assert.Equal(t, later.Add(DefaultCartTTL), c.ExpiresAt)
	assert.Equal(t, created, c.CreatedAt)
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()

	c := newTestCart(t)
	c.AddItem(withCustomizations(burger, extraCheese), time.Now())

	cp := c.Clone()
	cp.AddItem(pizza, time.Now())

	assert.Len(t, c.Items, 1)
	assert.Len(t, cp.Items, 2)
}
