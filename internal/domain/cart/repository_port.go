// internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is a persistence port for Cart.
//
// Storage recommendation (Firestore):
// - collection: carts
// - docId: userId
// - fields: items(map keyed by ItemKey), createdAt, updatedAt, expiresAt
//
// TTL:
// - Configure Firestore TTL on "expiresAt".
// - expiresAt is refreshed on each cart mutation (handled by the domain via touch()).
//
// The default binding is the in-memory implementation; the cart has
// process-lifetime scope there and durable storage is opt-in.
type Repository interface {
	// GetByUserID returns the cart for the user, or (nil, nil) when absent;
	// the application layer treats nil as "no cart yet".
	GetByUserID(ctx context.Context, userID string) (*Cart, error)

	// Upsert saves the cart (create or update) under docId = cart.ID.
	Upsert(ctx context.Context, c *Cart) error

	// DeleteByUserID deletes the cart for the user (e.g. after checkout).
	DeleteByUserID(ctx context.Context, userID string) error
}
