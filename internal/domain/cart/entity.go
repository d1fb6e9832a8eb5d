// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strings"
	"time"

	productdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/product"
)

var (
	ErrInvalidItem  = errors.New("cart: invalid item")
	ErrItemNotFound = errors.New("cart: item not found")
)

// Item is one cart line item: a denormalized copy of the product fields taken
// at add-time. Price is NOT live-linked to the product; a later price change
// or product deletion leaves the row as it was.
//
//   - docId = store-assigned, under carts/{identityId}/items
//   - Quantity is always 1 at creation; repeated adds of the same product
//     create additional rows rather than incrementing
//   - ProductID carries no enforced referential integrity
type Item struct {
	ID        string    `json:"id" firestore:"id"`
	ProductID string    `json:"productId" firestore:"productId"`
	Name      string    `json:"name" firestore:"name"`
	Price     string    `json:"price" firestore:"price"`
	ImageURL  string    `json:"imageUrl" firestore:"imageUrl"`
	Quantity  int       `json:"quantity" firestore:"quantity"`
	AddedAt   time.Time `json:"addedAt" firestore:"addedAt"`
}

// NewItem snapshots a product into a cart line item with quantity 1.
func NewItem(p productdom.Product, now time.Time) (Item, error) {
	it := Item{
		ProductID: strings.TrimSpace(p.ID),
		Name:      strings.TrimSpace(p.Name),
		Price:     strings.TrimSpace(p.Price),
		ImageURL:  strings.TrimSpace(p.ImageURL),
		Quantity:  1,
		AddedAt:   now.UTC(),
	}
	if it.ProductID == "" || it.Name == "" || it.Price == "" {
		return Item{}, ErrInvalidItem
	}
	return it, nil
}

// Total sums price*quantity over items. Display price strings are stripped of
// non-numeric characters before parsing; strings that still fail to parse are
// returned in bad and excluded from the sum instead of poisoning it.
func Total(items []Item) (total float64, bad []string) {
	for _, it := range items {
		v, err := productdom.ParsePrice(it.Price)
		if err != nil {
			bad = append(bad, it.Price)
			continue
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += v * float64(qty)
	}
	return total, bad
}
