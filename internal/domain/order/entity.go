// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"
)

// ========================================
// Enums
// ========================================

// ItemStatus tracks the outcome of consuming one cart row during checkout.
type ItemStatus string

const (
	ItemPending   ItemStatus = "pending"
	ItemPurchased ItemStatus = "purchased"
	ItemFailed    ItemStatus = "failed"
)

// Status is the order-level outcome.
//   - pending:   order written, cart rows not yet consumed
//   - completed: every row consumed
//   - partial:   at least one row failed; committed as-is, never rolled back
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusPartial   Status = "partial"
)

// ========================================
// Entity
// ========================================

// ItemSnapshot is stored inside Order.Items: the cart row as it was at
// checkout time, plus its consumption outcome.
type ItemSnapshot struct {
	CartItemID string     `json:"cartItemId" firestore:"cartItemId"`
	ProductID  string     `json:"productId" firestore:"productId"`
	Name       string     `json:"name" firestore:"name"`
	Price      string     `json:"price" firestore:"price"`
	Quantity   int        `json:"quantity" firestore:"quantity"`
	Status     ItemStatus `json:"status" firestore:"status"`
	FailReason string     `json:"failReason,omitempty" firestore:"failReason"`
}

// Order is the explicit purchase record. It replaces "deletion of cart rows"
// as the sole signal of purchase completion: the rows are still deleted, but
// the order document is the durable report of what happened.
type Order struct {
	ID         string `json:"id" firestore:"id"`
	IdentityID string `json:"identityId" firestore:"identityId"`

	Items []ItemSnapshot `json:"items" firestore:"items"`

	// Total is computed before any row is consumed (pre-checkout snapshot).
	Total float64 `json:"total" firestore:"total"`

	Status      Status     `json:"status" firestore:"status"`
	CreatedAt   time.Time  `json:"createdAt" firestore:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty" firestore:"completedAt"`
}

// ========================================
// Errors
// ========================================

var (
	ErrInvalidID         = errors.New("order: invalid id")
	ErrInvalidIdentityID = errors.New("order: invalid identityId")
	ErrEmptyItems        = errors.New("order: items must not be empty")
	ErrInvalidItem       = errors.New("order: invalid item snapshot")
	ErrNotFound          = errors.New("order: not found")
)

// ========================================
// Constructor / behavior
// ========================================

// New builds a pending order over the given snapshots.
func New(id, identityID string, items []ItemSnapshot, total float64, now time.Time) (Order, error) {
	o := Order{
		ID:         strings.TrimSpace(id),
		IdentityID: strings.TrimSpace(identityID),
		Items:      normalizeItems(items),
		Total:      total,
		Status:     StatusPending,
		CreatedAt:  now.UTC(),
	}
	if err := o.validate(); err != nil {
		return Order{}, err
	}
	return o, nil
}

// MarkItem records the consumption outcome for one cart row.
func (o *Order) MarkItem(cartItemID string, status ItemStatus, failReason string) error {
	cid := strings.TrimSpace(cartItemID)
	for i := range o.Items {
		if o.Items[i].CartItemID == cid {
			o.Items[i].Status = status
			o.Items[i].FailReason = strings.TrimSpace(failReason)
			return nil
		}
	}
	return ErrInvalidItem
}

// Finalize derives the order status from its item outcomes and stamps
// CompletedAt. Any non-purchased item makes the order partial.
func (o *Order) Finalize(now time.Time) {
	st := StatusCompleted
	for _, it := range o.Items {
		if it.Status != ItemPurchased {
			st = StatusPartial
			break
		}
	}
	o.Status = st
	t := now.UTC()
	o.CompletedAt = &t
}

// FailedItems returns the snapshots that could not be consumed.
func (o Order) FailedItems() []ItemSnapshot {
	var out []ItemSnapshot
	for _, it := range o.Items {
		if it.Status == ItemFailed {
			out = append(out, it)
		}
	}
	return out
}

// ========================================
// Validation
// ========================================

func (o Order) validate() error {
	if o.ID == "" {
		return ErrInvalidID
	}
	if o.IdentityID == "" {
		return ErrInvalidIdentityID
	}
	if len(o.Items) == 0 {
		return ErrEmptyItems
	}
	for _, it := range o.Items {
		if strings.TrimSpace(it.CartItemID) == "" || strings.TrimSpace(it.Name) == "" {
			return ErrInvalidItem
		}
	}
	return nil
}

func normalizeItems(items []ItemSnapshot) []ItemSnapshot {
	out := make([]ItemSnapshot, 0, len(items))
	for _, it := range items {
		it.CartItemID = strings.TrimSpace(it.CartItemID)
		it.ProductID = strings.TrimSpace(it.ProductID)
		it.Name = strings.TrimSpace(it.Name)
		it.Price = strings.TrimSpace(it.Price)
		if it.Quantity <= 0 {
			it.Quantity = 1
		}
		if it.Status == "" {
			it.Status = ItemPending
		}
		out = append(out, it)
	}
	return out
}
