// internal/application/query/menu_query.go
package query

import (
	"context"
	"errors"
	"sort"
	"strings"

	querydto "forkful/internal/application/query/dto"
	menudom "forkful/internal/domain/menu"
)

// MenuQuery assembles the browse read models (category list, filtered item
// list, item detail). Writes never go through here; seeding owns those.
type MenuQuery struct {
	repo menudom.Repository
}

func NewMenuQuery(repo menudom.Repository) *MenuQuery {
	return &MenuQuery{repo: repo}
}

// ListCategories returns all categories sorted by name.
func (q *MenuQuery) ListCategories(ctx context.Context) ([]querydto.CategoryDTO, error) {
	if q == nil || q.repo == nil {
		return nil, errors.New("menu query repository is not configured")
	}

	cats, err := q.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]querydto.CategoryDTO, 0, len(cats))
	for _, c := range cats {
		if strings.TrimSpace(c.ID) == "" {
			continue
		}
		out = append(out, querydto.CategoryDTO{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ListItems returns menu items matching the filter, sorted by name.
// filter.Query matches item names case-insensitively.
func (q *MenuQuery) ListItems(ctx context.Context, filter menudom.Filter) ([]querydto.MenuItemDTO, error) {
	if q == nil || q.repo == nil {
		return nil, errors.New("menu query repository is not configured")
	}

	items, err := q.repo.ListItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]querydto.MenuItemDTO, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.ID) == "" {
			continue
		}
		out = append(out, toMenuItemDTO(it))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetItemDetail returns one item with its attachable customizations.
// Propagates menu.ErrNotFound for unknown ids.
func (q *MenuQuery) GetItemDetail(ctx context.Context, itemID string) (*querydto.MenuItemDetailDTO, error) {
	if q == nil || q.repo == nil {
		return nil, errors.New("menu query repository is not configured")
	}

	id := strings.TrimSpace(itemID)
	if id == "" {
		return nil, menudom.ErrNotFound
	}

	it, err := q.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	custs, err := q.repo.ListItemCustomizations(ctx, id)
	if err != nil {
		return nil, err
	}

	cdtos := make([]querydto.CustomizationDTO, 0, len(custs))
	for _, c := range custs {
		if strings.TrimSpace(c.ID) == "" {
			continue
		}
		cdtos = append(cdtos, querydto.CustomizationDTO{
			ID:    c.ID,
			Name:  c.Name,
			Price: c.Price,
			Type:  c.Type,
		})
	}
	sort.Slice(cdtos, func(i, j int) bool { return cdtos[i].Name < cdtos[j].Name })

	return &querydto.MenuItemDetailDTO{
		MenuItemDTO:    toMenuItemDTO(it),
		Customizations: cdtos,
	}, nil
}

func toMenuItemDTO(it menudom.Item) querydto.MenuItemDTO {
	return querydto.MenuItemDTO{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		ImageURL:    it.ImageURL,
		Price:       it.Price,
		Rating:      it.Rating,
		Calories:    it.Calories,
		Protein:     it.Protein,
		CategoryID:  it.CategoryID,
	}
}
