// internal/adapters/out/memory/cart_repository_mem.go
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	cartdom "forkful/internal/domain/cart"
)

// CartRepositoryMem implements cart.Repository with a process-lifetime map.
// This is the default binding: carts live as long as the process and are
// never persisted. A single mutex guards the collection; mutation is funneled
// exclusively through Upsert/Delete, and Get hands out deep copies so callers
// cannot reach into stored state.
type CartRepositoryMem struct {
	mu    sync.RWMutex
	carts map[string]*cartdom.Cart
}

func NewCartRepositoryMem() *CartRepositoryMem {
	return &CartRepositoryMem{carts: map[string]*cartdom.Cart{}}
}

// GetByUserID returns (nil, nil) when absent (nil policy).
func (r *CartRepositoryMem) GetByUserID(_ context.Context, userID string) (*cartdom.Cart, error) {
	if r == nil {
		return nil, errors.New("cart_repository_mem: repository is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("cart_repository_mem: userID is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carts[uid]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

func (r *CartRepositoryMem) Upsert(_ context.Context, c *cartdom.Cart) error {
	if r == nil {
		return errors.New("cart_repository_mem: repository is nil")
	}
	if c == nil {
		return errors.New("cart_repository_mem: cart is nil")
	}

	uid := strings.TrimSpace(c.ID)
	if uid == "" {
		return errors.New("cart_repository_mem: Upsert requires cart.ID (= userId)")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[uid] = c.Clone()
	return nil
}

func (r *CartRepositoryMem) DeleteByUserID(_ context.Context, userID string) error {
	if r == nil {
		return errors.New("cart_repository_mem: repository is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("cart_repository_mem: userID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, uid)
	return nil
}
