// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	cartdom "forkful/internal/domain/cart"
)

var (
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
	ErrCartNotFound        = errors.New("cart_usecase: not found")
)

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// CartUsecase coordinates per-user cart operations. All mutations go through
// the domain aggregate; the repository only sees settled state.
type CartUsecase struct {
	repo  cartdom.Repository
	clock Clock
}

func NewCartUsecase(repo cartdom.Repository) *CartUsecase {
	return &CartUsecase{
		repo:  repo,
		clock: systemClock{},
	}
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(repo cartdom.Repository, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CartUsecase{repo: repo, clock: clock}
}

// GetOrCreate returns an existing cart; if absent, creates an empty one and persists it.
func (uc *CartUsecase) GetOrCreate(ctx context.Context, userID string) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	newCart, err := cartdom.NewCart(uid, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, newCart); err != nil {
		return nil, err
	}
	return newCart, nil
}

// AddItem adds one unit of cand to the user's cart, merging into an existing
// line item when the (menuItemId, customization set) pair already exists.
func (uc *CartUsecase) AddItem(ctx context.Context, userID string, cand cartdom.Candidate) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" || strings.TrimSpace(cand.MenuItemID) == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}

	c.AddItem(cand, uc.clock.Now())
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// IncreaseQty increments the matching line item's quantity by 1.
// A miss is a no-op (the persisted cart is returned unchanged).
func (uc *CartUsecase) IncreaseQty(ctx context.Context, userID, menuItemID string, customizations []cartdom.Customization) (*cartdom.Cart, error) {
	return uc.mutate(ctx, userID, menuItemID, func(c *cartdom.Cart, now time.Time) {
		c.IncreaseQty(menuItemID, customizations, now)
	})
}

// DecreaseQty decrements the matching line item's quantity by 1, removing the
// line item entirely when it would reach zero. A miss is a no-op.
func (uc *CartUsecase) DecreaseQty(ctx context.Context, userID, menuItemID string, customizations []cartdom.Customization) (*cartdom.Cart, error) {
	return uc.mutate(ctx, userID, menuItemID, func(c *cartdom.Cart, now time.Time) {
		c.DecreaseQty(menuItemID, customizations, now)
	})
}

// RemoveItem removes the matching line item. A miss is a no-op.
func (uc *CartUsecase) RemoveItem(ctx context.Context, userID, menuItemID string, customizations []cartdom.Customization) (*cartdom.Cart, error) {
	return uc.mutate(ctx, userID, menuItemID, func(c *cartdom.Cart, now time.Time) {
		c.RemoveItem(menuItemID, customizations, now)
	})
}

// Clear empties the user's cart. The cart document survives (idempotent
// "empty cart" UX); DeleteByUserID is reserved for checkout flows.
func (uc *CartUsecase) Clear(ctx context.Context, userID string) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}

	c.Clear(uc.clock.Now())
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Summary returns the aggregate getters for the user's cart.
// An absent cart reads as (0, 0).
func (uc *CartUsecase) Summary(ctx context.Context, userID string) (totalItems int, totalPrice float64, err error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return 0, 0, ErrCartInvalidArgument
	}

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return 0, 0, err
	}
	if c == nil {
		return 0, 0, nil
	}
	return c.TotalItems(), c.TotalPrice(), nil
}

func (uc *CartUsecase) mutate(ctx context.Context, userID, menuItemID string, apply func(*cartdom.Cart, time.Time)) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" || strings.TrimSpace(menuItemID) == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}

	apply(c, uc.clock.Now())
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
