// internal/application/query/menu_query_test.go
package query

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	menudom "forkful/internal/domain/menu"
)

type stubMenuRepo struct {
	items          []menudom.Item
	categories     []menudom.Category
	customizations map[string][]menudom.Customization
}

func (s *stubMenuRepo) ListItems(_ context.Context, f menudom.Filter) ([]menudom.Item, error) {
	out := []menudom.Item{}
	for _, it := range s.items {
		if f.CategoryID != "" && it.CategoryID != f.CategoryID {
			continue
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(it.Name), strings.ToLower(f.Query)) {
			continue
		}
		out = append(out, it)
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
	}
	return out, nil
}

func (s *stubMenuRepo) GetItem(_ context.Context, id string) (menudom.Item, error) {
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return menudom.Item{}, menudom.ErrNotFound
}

func (s *stubMenuRepo) ListCategories(_ context.Context) ([]menudom.Category, error) {
	return s.categories, nil
}

func (s *stubMenuRepo) ListItemCustomizations(_ context.Context, itemID string) ([]menudom.Customization, error) {
	return s.customizations[itemID], nil
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{
		items: []menudom.Item{
			{ID: "item2", Name: "Pizza", Price: 15.50, CategoryID: "cat-pizza"},
			{ID: "item1", Name: "Burger", Price: 10.99, CategoryID: "cat-burgers"},
			{ID: "item3", Name: "Veggie Burger", Price: 9.99, CategoryID: "cat-burgers"},
		},
		categories: []menudom.Category{
			{ID: "cat-pizza", Name: "Pizzas"},
			{ID: "cat-burgers", Name: "Burgers"},
		},
		customizations: map[string][]menudom.Customization{
			"item1": {
				{ID: "custom2", Name: "Bacon", Price: 3.5, Type: "addon"},
				{ID: "custom1", Name: "Extra Cheese", Price: 2, Type: "addon"},
			},
		},
	}
}

func TestMenuQuery_ListCategoriesSorted(t *testing.T) {
	t.Parallel()

	q := NewMenuQuery(newStubMenuRepo())
	cats, err := q.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Burgers", cats[0].Name)
	assert.Equal(t, "Pizzas", cats[1].Name)
}

func TestMenuQuery_ListItemsAll(t *testing.T) {
	t.Parallel()

	q := NewMenuQuery(newStubMenuRepo())
	items, err := q.ListItems(context.Background(), menudom.Filter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Burger", items[0].Name)
}

func TestMenuQuery_ListItemsByCategory(t *testing.T) {
	t.Parallel()

	q := NewMenuQuery(newStubMenuRepo())
	items, err := q.ListItems(context.Background(), menudom.Filter{CategoryID: "cat-burgers"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, "cat-burgers", it.CategoryID)
	}
}

func TestMenuQuery_ListItemsByName(t *testing.T) {
	t.Parallel()

	q := NewMenuQuery(newStubMenuRepo())
	items, err := q.ListItems(context.Background(), menudom.Filter{Query: "burger"})
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestMenuQuery_GetItemDetail(t *testing.T) {
	t.Parallel()

	q := NewMenuQuery(newStubMenuRepo())
	d, err := q.GetItemDetail(context.Background(), "item1")
	require.NoError(t, err)
	assert.Equal(t, "Burger", d.Name)
	require.Len(t, d.Customizations, 2)
	assert.Equal(t, "Bacon", d.Customizations[0].Name)
	assert.Equal(t, "Extra Cheese", d.Customizations[1].Name)
}

func TestMenuQuery_GetItemDetailNotFound(t *testing.T) {
	t.Parallel()

	q := NewMenuQuery(newStubMenuRepo())
	_, err := q.GetItemDetail(context.Background(), "nope")
	assert.ErrorIs(t, err, menudom.ErrNotFound)

	_, err = q.GetItemDetail(context.Background(), "  ")
	assert.ErrorIs(t, err, menudom.ErrNotFound)
}
