// internal/domain/order/repository_port.go
package order

import "context"

// Repository is the persistence port for Order.
//
// Storage (Firestore):
// - collection: orders
// - docId: order.ID (assigned by the checkout flow, not by the store)
type Repository interface {
	// Create inserts the pending order. Returns ErrInvalidID on empty id.
	Create(ctx context.Context, o Order) error

	// Save overwrites the order doc (used to persist item outcomes and the
	// finalized status).
	Save(ctx context.Context, o Order) error

	// ListByIdentity returns the identity's orders, createdAt descending.
	ListByIdentity(ctx context.Context, identityID string) ([]Order, error)
}

// Archiver is an optional secondary sink for finalized orders (the Postgres
// archive). Failures are logged by callers and never abort checkout.
type Archiver interface {
	Archive(ctx context.Context, o Order) error
}
