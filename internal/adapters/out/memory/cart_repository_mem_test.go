// internal/adapters/out/memory/cart_repository_mem_test.go
package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "forkful/internal/domain/cart"
)

func TestCartRepositoryMem_GetAbsentReturnsNil(t *testing.T) {
	t.Parallel()

	r := NewCartRepositoryMem()
	c, err := r.GetByUserID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCartRepositoryMem_UpsertThenGet(t *testing.T) {
	t.Parallel()

	r := NewCartRepositoryMem()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	c, err := cartdom.NewCart("user-1", now)
	require.NoError(t, err)
	c.AddItem(cartdom.Candidate{MenuItemID: "item1", Name: "Burger", Price: 10.99}, now)
	require.NoError(t, r.Upsert(context.Background(), c))

	got, err := r.GetByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.TotalItems())
	assert.InDelta(t, 10.99, got.TotalPrice(), 1e-9)
}

func TestCartRepositoryMem_GetHandsOutCopies(t *testing.T) {
	t.Parallel()

	r := NewCartRepositoryMem()
	now := time.Now()

	c, err := cartdom.NewCart("user-1", now)
	require.NoError(t, err)
	c.AddItem(cartdom.Candidate{MenuItemID: "item1", Price: 5}, now)
	require.NoError(t, r.Upsert(context.Background(), c))

	got, err := r.GetByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	got.AddItem(cartdom.Candidate{MenuItemID: "item2", Price: 7}, now)

	// stored state is unchanged until Upsert
	again, err := r.GetByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.TotalItems())
}

func TestCartRepositoryMem_Delete(t *testing.T) {
	t.Parallel()

	r := NewCartRepositoryMem()
	now := time.Now()

	c, err := cartdom.NewCart("user-1", now)
	require.NoError(t, err)
	require.NoError(t, r.Upsert(context.Background(), c))

	require.NoError(t, r.DeleteByUserID(context.Background(), "user-1"))
	got, err := r.GetByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleting twice is fine
	assert.NoError(t, r.DeleteByUserID(context.Background(), "user-1"))
}

func TestCartRepositoryMem_EmptyUserIDRejected(t *testing.T) {
	t.Parallel()

	r := NewCartRepositoryMem()
	_, err := r.GetByUserID(context.Background(), "  ")
	assert.Error(t, err)
	assert.Error(t, r.DeleteByUserID(context.Background(), ""))
}
