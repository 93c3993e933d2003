// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "forkful/internal/domain/cart"
)

// CartRepositoryFS implements cart.Repository using Firestore.
//
// Collection design:
// - collection: carts
// - docId: userId (docId is the source of truth)
// - fields: items(map), createdAt, updatedAt, expiresAt
//
// TTL:
// - Configure Firestore TTL on "expiresAt".
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("carts")
}

// GetByUserID returns (nil, nil) if not found (nil policy).
func (r *CartRepositoryFS) GetByUserID(ctx context.Context, userID string) (*cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("cart_repository_fs: userID is empty")
	}

	snap, err := r.col().Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	// Parse snap.Data() by hand instead of DataTo: docs written before the
	// customizations field existed (or with a legacy qty-only items map) must
	// still load without a type-mismatch 500.
	doc, err := cartDocFromSnapshot(snap)
	if err != nil {
		return nil, err
	}

	d := doc.toDomain()
	// docId is the source of truth even when the doc carries no id field
	d.ID = uid
	return d, nil
}

// Upsert saves cart by docId=cart.ID (= userId). Full-doc overwrite.
func (r *CartRepositoryFS) Upsert(ctx context.Context, c *cartdom.Cart) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	if c == nil {
		return errors.New("cart_repository_fs: cart is nil")
	}

	uid := strings.TrimSpace(c.ID)
	if uid == "" {
		return errors.New("cart_repository_fs: Upsert requires cart.ID (= userId) as docId")
	}

	doc := cartDocFromDomain(c)

	_, err := r.col().Doc(uid).Set(ctx, doc)
	return err
}

func (r *CartRepositoryFS) DeleteByUserID(ctx context.Context, userID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return errors.New("cart_repository_fs: userID is empty")
	}

	_, err := r.col().Doc(uid).Delete(ctx)
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type cartDoc struct {
	Items     map[string]lineItemDoc `firestore:"items"`
	CreatedAt time.Time              `firestore:"createdAt"`
	UpdatedAt time.Time              `firestore:"updatedAt"`
	ExpiresAt time.Time              `firestore:"expiresAt"`
}

type lineItemDoc struct {
	MenuItemID     string             `firestore:"menuItemId"`
	Name           string             `firestore:"name"`
	Price          float64            `firestore:"price"`
	ImageURL       string             `firestore:"imageUrl"`
	Quantity       int                `firestore:"quantity"`
	Customizations []customizationDoc `firestore:"customizations"`
}

type customizationDoc struct {
	ID    string  `firestore:"id"`
	Name  string  `firestore:"name"`
	Price float64 `firestore:"price"`
	Type  string  `firestore:"type"`
}

// cartDocFromSnapshot parses Firestore document data with backward compatibility.
//
// Supported shapes:
// 1) items: map[itemKey] = {menuItemId, name, price, imageUrl, quantity, customizations}
// 2) items: map[itemKey] = quantity (legacy)
//   - menuItemId falls back to the itemKey's first segment
func cartDocFromSnapshot(snap *firestore.DocumentSnapshot) (cartDoc, error) {
	if snap == nil {
		return cartDoc{}, errors.New("cart_repository_fs: snapshot is nil")
	}

	raw := snap.Data()
	if raw == nil {
		return cartDoc{Items: map[string]lineItemDoc{}}, nil
	}

	out := cartDoc{Items: map[string]lineItemDoc{}}

	if t, ok := raw["createdAt"]; ok {
		if tt, ok2 := asTime(t); ok2 {
			out.CreatedAt = tt
		}
	}
	if t, ok := raw["updatedAt"]; ok {
		if tt, ok2 := asTime(t); ok2 {
			out.UpdatedAt = tt
		}
	}
	if t, ok := raw["expiresAt"]; ok {
		if tt, ok2 := asTime(t); ok2 {
			out.ExpiresAt = tt
		}
	}

	itemsAny := raw["items"]
	m, ok := itemsAny.(map[string]any)
	if !ok || m == nil {
		return out, nil
	}

	for k, v := range m {
		itemKey := strings.TrimSpace(k)
		if itemKey == "" {
			continue
		}

		if mv, ok := v.(map[string]any); ok {
			qty := asInt(mv["quantity"])
			if qty <= 0 {
				continue
			}

			mid := strings.TrimSpace(asString(mv["menuItemId"]))
			if mid == "" {
				mid = firstKeySegment(itemKey)
			}

			out.Items[itemKey] = lineItemDoc{
				MenuItemID:     mid,
				Name:           strings.TrimSpace(asString(mv["name"])),
				Price:          asFloat(mv["price"]),
				ImageURL:       strings.TrimSpace(asString(mv["imageUrl"])),
				Quantity:       qty,
				Customizations: customizationDocsFromAny(mv["customizations"]),
			}
			continue
		}

		// legacy shape: quantity only
		qty := asInt(v)
		if qty <= 0 {
			continue
		}
		out.Items[itemKey] = lineItemDoc{
			MenuItemID: firstKeySegment(itemKey),
			Quantity:   qty,
		}
	}

	return out, nil
}

func customizationDocsFromAny(v any) []customizationDoc {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil
	}

	out := make([]customizationDoc, 0, len(list))
	for _, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		id := strings.TrimSpace(asString(m["id"]))
		if id == "" {
			continue
		}
		out = append(out, customizationDoc{
			ID:    id,
			Name:  strings.TrimSpace(asString(m["name"])),
			Price: asFloat(m["price"]),
			Type:  strings.TrimSpace(asString(m["type"])),
		})
	}
	return out
}

func firstKeySegment(itemKey string) string {
	if i := strings.Index(itemKey, "__"); i > 0 {
		return itemKey[:i]
	}
	return itemKey
}

func cartDocFromDomain(c *cartdom.Cart) cartDoc {
	items := map[string]lineItemDoc{}
	if c != nil && c.Items != nil {
		for k, it := range c.Items {
			k2 := strings.TrimSpace(k)
			if k2 == "" || it.Quantity <= 0 || strings.TrimSpace(it.MenuItemID) == "" {
				continue
			}

			custs := make([]customizationDoc, 0, len(it.Customizations))
			for _, cu := range it.Customizations {
				if strings.TrimSpace(cu.ID) == "" {
					continue
				}
				custs = append(custs, customizationDoc{
					ID:    cu.ID,
					Name:  cu.Name,
					Price: cu.Price,
					Type:  cu.Type,
				})
			}

			items[k2] = lineItemDoc{
				MenuItemID:     strings.TrimSpace(it.MenuItemID),
				Name:           strings.TrimSpace(it.Name),
				Price:          it.Price,
				ImageURL:       strings.TrimSpace(it.ImageURL),
				Quantity:       it.Quantity,
				Customizations: custs,
			}
		}
	}

	return cartDoc{
		Items:     items,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		ExpiresAt: c.ExpiresAt,
	}
}

func (d cartDoc) toDomain() *cartdom.Cart {
	items := map[string]cartdom.LineItem{}
	for k, it := range d.Items {
		k2 := strings.TrimSpace(k)
		if k2 == "" || it.Quantity <= 0 {
			continue
		}

		custs := make([]cartdom.Customization, 0, len(it.Customizations))
		for _, cu := range it.Customizations {
			custs = append(custs, cartdom.Customization{
				ID:    cu.ID,
				Name:  cu.Name,
				Price: cu.Price,
				Type:  cu.Type,
			})
		}

		items[k2] = cartdom.LineItem{
			MenuItemID:     it.MenuItemID,
			Name:           it.Name,
			Price:          it.Price,
			ImageURL:       it.ImageURL,
			Quantity:       it.Quantity,
			Customizations: custs,
		}
	}

	return &cartdom.Cart{
		// ID is filled by the caller (docId)
		Items:     items,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		ExpiresAt: d.ExpiresAt,
	}
}
