// internal/application/usecase/cart_usecase_test.go
package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memrepo "forkful/internal/adapters/out/memory"
	cartdom "forkful/internal/domain/cart"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newCartUC(t *testing.T) *CartUsecase {
	t.Helper()
	return NewCartUsecaseWithClock(
		memrepo.NewCartRepositoryMem(),
		fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	)
}

var (
	ucBurger = cartdom.Candidate{MenuItemID: "item1", Name: "Burger", Price: 10.99}
	ucCheese = cartdom.Customization{ID: "custom1", Name: "Extra Cheese", Price: 2, Type: "addon"}
)

func TestCartUsecase_GetOrCreate(t *testing.T) {
	t.Parallel()

	uc := newCartUC(t)
	c, err := uc.GetOrCreate(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "user-1", c.ID)
	assert.Empty(t, c.Items)

	// second call returns the persisted cart, not a fresh one
	c.AddItem(ucBurger, time.Now())
	again, err := uc.GetOrCreate(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, again.Items)
}

func TestCartUsecase_AddItemPersists(t *testing.T) {
	t.Parallel()

	uc := newCartUC(t)

	_, err := uc.AddItem(context.Background(), "user-1", ucBurger)
	require.NoError(t, err)
	c, err := uc.AddItem(context.Background(), "user-1", ucBurger)
	require.NoError(t, err)

	assert.Equal(t, 2, c.TotalItems())
	items := c.SortedItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartUsecase_AddItemValidatesArguments(t *testing.T) {
	t.Parallel()

	uc := newCartUC(t)

	_, err := uc.AddItem(context.Background(), "", ucBurger)
	assert.ErrorIs(t, err, ErrCartInvalidArgument)

	_, err = uc.AddItem(context.Background(), "user-1", cartdom.Candidate{})
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
}

func TestCartUsecase_IncreaseAndDecrease(t *testing.T) {
	t.Parallel()

	uc := newCartUC(t)
	ctx := context.Background()

	cand := ucBurger
	cand.Customizations = []cartdom.Customization{ucCheese}
	_, err := uc.AddItem(ctx, "user-1", cand)
	require.NoError(t, err)

	c, err := uc.IncreaseQty(ctx, "user-1", "item1", []cartdom.Customization{ucCheese})
	require.NoError(t, err)
	assert.Equal(t, 2, c.TotalItems())

	c, err = uc.DecreaseQty(ctx, "user-1", "item1", []cartdom.Customization{ucCheese})
	require.NoError(t, err)
	assert.Equal(t, 1, c.TotalItems())

	// decrement to zero removes the line item
	c, err = uc.DecreaseQty(ctx, "user-1", "item1", []cartdom.Customization{ucCheese})
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestCartUsecase_RemoveItemMissIsNoop(t *testing.T) {
	t.Parallel()

	uc := newCartUC(t)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "user-1", ucBurger)
	require.NoError(t, err)

	c, err := uc.RemoveItem(ctx, "user-1", "item1", []cartdom.Customization{ucCheese})
	require.NoError(t, err)
	assert.Equal(t, 1, c.TotalItems())
}

func TestCartUsecase_ClearAndSummary(t *testing.T) {
	t.Parallel()

	uc := newCartUC(t)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "user-1", ucBurger)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, "user-1", cartdom.Candidate{MenuItemID: "item2", Name: "Pizza", Price: 15.50})
	require.NoError(t, err)

	items, price, err := uc.Summary(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, items)
	assert.InDelta(t, 26.49, price, 1e-9)

	_, err = uc.Clear(ctx, "user-1")
	require.NoError(t, err)

	items, price, err = uc.Summary(ctx, "user-1")
	require.NoError(t, err)
	assert.Zero(t, items)
	assert.Zero(t, price)
}

func TestCartUsecase_SummaryForUnknownUserIsZero(t *testing.T) {
	t.Parallel()

	uc := newCartUC(t)
	items, price, err := uc.Summary(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Zero(t, items)
	assert.Zero(t, price)
}
