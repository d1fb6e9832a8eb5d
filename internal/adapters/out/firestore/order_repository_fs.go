// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	orderdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/order"
)

// OrderRepositoryFS implements order.Repository using Firestore.
//
// Collection design:
// - collection: orders
// - docId: order.ID (assigned by the checkout flow)
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("orders")
}

func (r *OrderRepositoryFS) Create(ctx context.Context, o orderdom.Order) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(o.ID)
	if id == "" {
		return orderdom.ErrInvalidID
	}

	_, err := r.col().Doc(id).Create(ctx, orderToDoc(o))
	return err
}

// Save overwrites the full doc (simple and predictable; the checkout flow is
// the only writer).
func (r *OrderRepositoryFS) Save(ctx context.Context, o orderdom.Order) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(o.ID)
	if id == "" {
		return orderdom.ErrInvalidID
	}

	_, err := r.col().Doc(id).Set(ctx, orderToDoc(o))
	return err
}

func (r *OrderRepositoryFS) ListByIdentity(ctx context.Context, identityID string) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}

	iid := strings.TrimSpace(identityID)
	if iid == "" {
		return nil, orderdom.ErrInvalidIdentityID
	}

	it := r.col().
		Where("identityId", "==", iid).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer it.Stop()

	orders := []orderdom.Order{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var doc orderDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		orders = append(orders, doc.toDomain(snap.Ref.ID))
	}
	return orders, nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type orderItemDoc struct {
	CartItemID string `firestore:"cartItemId"`
	ProductID  string `firestore:"productId"`
	Name       string `firestore:"name"`
	Price      string `firestore:"price"`
	Quantity   int    `firestore:"quantity"`
	Status     string `firestore:"status"`
	FailReason string `firestore:"failReason"`
}

type orderDoc struct {
	IdentityID  string         `firestore:"identityId"`
	Items       []orderItemDoc `firestore:"items"`
	Total       float64        `firestore:"total"`
	Status      string         `firestore:"status"`
	CreatedAt   time.Time      `firestore:"createdAt"`
	CompletedAt *time.Time     `firestore:"completedAt"`
}

func orderToDoc(o orderdom.Order) orderDoc {
	items := make([]orderItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDoc{
			CartItemID: it.CartItemID,
			ProductID:  it.ProductID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
			Status:     string(it.Status),
			FailReason: it.FailReason,
		})
	}
	return orderDoc{
		IdentityID:  o.IdentityID,
		Items:       items,
		Total:       o.Total,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		CompletedAt: o.CompletedAt,
	}
}

func (d orderDoc) toDomain(id string) orderdom.Order {
	items := make([]orderdom.ItemSnapshot, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, orderdom.ItemSnapshot{
			CartItemID: it.CartItemID,
			ProductID:  it.ProductID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
			Status:     orderdom.ItemStatus(it.Status),
			FailReason: it.FailReason,
		})
	}
	return orderdom.Order{
		ID:          id,
		IdentityID:  d.IdentityID,
		Items:       items,
		Total:       d.Total,
		Status:      orderdom.Status(d.Status),
		CreatedAt:   d.CreatedAt,
		CompletedAt: d.CompletedAt,
	}
}
