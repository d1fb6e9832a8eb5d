// internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is the persistence port for cart line items.
//
// Storage (Firestore):
// - subcollection: carts/{ownerId}/items
// - docId: auto-ID (store-assigned)
// - ownerId: the verified identity's uid; each row belongs to exactly one
//   identity, no sharing or merging across identities
type Repository interface {
	// ListByOwner returns all line items under the owner partition.
	// A missing partition is an empty cart, not an error.
	ListByOwner(ctx context.Context, ownerID string) ([]Item, error)

	// Get returns ErrItemNotFound when the row does not exist.
	Get(ctx context.Context, ownerID, itemID string) (Item, error)

	// Add inserts a new row with a store-assigned ID and returns it.
	// It never merges with an existing row for the same product.
	Add(ctx context.Context, ownerID string, it Item) (Item, error)

	// Delete removes one row. Deleting a missing row is not an error.
	Delete(ctx context.Context, ownerID, itemID string) error
}
