// internal/domain/menu/repository_port.go
package menu

import "context"

// Filter narrows ListItems results.
//   - CategoryID: exact match on the item's category doc id ("" = all)
//   - Query: case-insensitive substring match on the item name ("" = all)
//   - Limit: caps the result count (<= 0 = no cap)
type Filter struct {
	CategoryID string
	Query      string
	Limit      int
}

// Repository is a read port for the catalog.
//
// Storage (Firestore):
// - collections: menu, categories, customizations, menuCustomizations (join)
//
// A PostgreSQL implementation exists for environments that mirror the catalog
// into Cloud SQL; both must apply Filter with identical semantics.
type Repository interface {
	ListItems(ctx context.Context, f Filter) ([]Item, error)

	// GetItem returns ErrNotFound when the id does not exist.
	GetItem(ctx context.Context, id string) (Item, error)

	ListCategories(ctx context.Context) ([]Category, error)

	// ListItemCustomizations resolves the customizations attached to an item
	// via the join collection/table.
	ListItemCustomizations(ctx context.Context, itemID string) ([]Customization, error)
}
