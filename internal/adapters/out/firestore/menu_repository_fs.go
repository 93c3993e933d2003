// internal/adapters/out/firestore/menu_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	menudom "forkful/internal/domain/menu"
)

// MenuRepositoryFS implements menu.Repository using Firestore.
//
// Collection design:
// - menu:               docId = itemId
// - categories:         docId = categoryId
// - customizations:     docId = customizationId
// - menuCustomizations: join docs {menuItemId, customizationId}
type MenuRepositoryFS struct {
	Client *firestore.Client
}

func NewMenuRepositoryFS(client *firestore.Client) *MenuRepositoryFS {
	return &MenuRepositoryFS{Client: client}
}

func (r *MenuRepositoryFS) menuCol() *firestore.CollectionRef {
	return r.Client.Collection("menu")
}

// ListItems applies CategoryID server-side. Firestore has no substring
// operator, so when Query is set the name match (and then the limit) happens
// client-side over the category-filtered set.
func (r *MenuRepositoryFS) ListItems(ctx context.Context, f menudom.Filter) ([]menudom.Item, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("menu_repository_fs: firestore client is nil")
	}

	q := r.menuCol().Query
	if cid := strings.TrimSpace(f.CategoryID); cid != "" {
		q = q.Where("categoryId", "==", cid)
	}

	needle := strings.ToLower(strings.TrimSpace(f.Query))
	if needle == "" && f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	it := q.Documents(ctx)
	defer it.Stop()

	out := []menudom.Item{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		item := itemFromSnapshot(doc)
		if item.ID == "" {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}

		out = append(out, item)
		if needle != "" && f.Limit > 0 && len(out) >= f.Limit {
			break
		}
	}
	return out, nil
}

func (r *MenuRepositoryFS) GetItem(ctx context.Context, id string) (menudom.Item, error) {
	if r == nil || r.Client == nil {
		return menudom.Item{}, errors.New("menu_repository_fs: firestore client is nil")
	}

	itemID := strings.TrimSpace(id)
	if itemID == "" {
		return menudom.Item{}, menudom.ErrNotFound
	}

	snap, err := r.menuCol().Doc(itemID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return menudom.Item{}, menudom.ErrNotFound
		}
		return menudom.Item{}, err
	}
	return itemFromSnapshot(snap), nil
}

func (r *MenuRepositoryFS) ListCategories(ctx context.Context) ([]menudom.Category, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("menu_repository_fs: firestore client is nil")
	}

	it := r.Client.Collection("categories").Documents(ctx)
	defer it.Stop()

	out := []menudom.Category{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		raw := doc.Data()
		out = append(out, menudom.Category{
			ID:          doc.Ref.ID,
			Name:        strings.TrimSpace(asString(raw["name"])),
			Description: strings.TrimSpace(asString(raw["description"])),
		})
	}
	return out, nil
}

// ListItemCustomizations resolves the join collection, then loads each
// referenced customization doc. The catalog is small enough that N reads per
// item page are fine.
func (r *MenuRepositoryFS) ListItemCustomizations(ctx context.Context, itemID string) ([]menudom.Customization, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("menu_repository_fs: firestore client is nil")
	}

	mid := strings.TrimSpace(itemID)
	if mid == "" {
		return []menudom.Customization{}, nil
	}

	it := r.Client.Collection("menuCustomizations").
		Where("menuItemId", "==", mid).
		Documents(ctx)
	defer it.Stop()

	ids := []string{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		if cid := strings.TrimSpace(asString(doc.Data()["customizationId"])); cid != "" {
			ids = append(ids, cid)
		}
	}

	out := make([]menudom.Customization, 0, len(ids))
	for _, cid := range ids {
		snap, err := r.Client.Collection("customizations").Doc(cid).Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				// dangling join doc; skip
				continue
			}
			return nil, err
		}

		raw := snap.Data()
		out = append(out, menudom.Customization{
			ID:    snap.Ref.ID,
			Name:  strings.TrimSpace(asString(raw["name"])),
			Price: asFloat(raw["price"]),
			Type:  strings.TrimSpace(asString(raw["type"])),
		})
	}
	return out, nil
}

func itemFromSnapshot(snap *firestore.DocumentSnapshot) menudom.Item {
	if snap == nil {
		return menudom.Item{}
	}
	raw := snap.Data()
	if raw == nil {
		return menudom.Item{}
	}
	return menudom.Item{
		ID:          snap.Ref.ID,
		Name:        strings.TrimSpace(asString(raw["name"])),
		Description: strings.TrimSpace(asString(raw["description"])),
		ImageURL:    strings.TrimSpace(asString(raw["imageUrl"])),
		Price:       asFloat(raw["price"]),
		Rating:      asFloat(raw["rating"]),
		Calories:    asInt(raw["calories"]),
		Protein:     asInt(raw["protein"]),
		CategoryID:  strings.TrimSpace(asString(raw["categoryId"])),
	}
}
