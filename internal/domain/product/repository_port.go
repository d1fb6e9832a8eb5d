// internal/domain/product/repository_port.go
package product

import "context"

// Repository is the persistence port for Product.
//
// Storage (Firestore):
// - collection: products
// - docId: auto-ID (store-assigned)
//
// List intentionally has no pagination or server-side filtering; the catalog
// is fetched whole and sorted client-side (see Sort).
type Repository interface {
	// List returns every product in store-default order.
	List(ctx context.Context) ([]Product, error)

	// ListLatest returns the newest products ordered by addedAt descending,
	// limited to limit (the "latest updates" view uses 3).
	ListLatest(ctx context.Context, limit int) ([]Product, error)

	// GetByID returns ErrNotFound when the doc does not exist.
	GetByID(ctx context.Context, id string) (Product, error)

	// Create inserts a new product. Empty ID means auto-ID; the stored
	// product (with its assigned ID) is returned.
	Create(ctx context.Context, p Product) (Product, error)

	// Delete removes the doc by id. Deleting a missing doc is not an error.
	// Cart items referencing the product are NOT touched.
	Delete(ctx context.Context, id string) error
}
