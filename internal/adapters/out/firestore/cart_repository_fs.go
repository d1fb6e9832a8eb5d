// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/cart"
)

// CartRepositoryFS implements cart.Repository using Firestore.
//
// Collection design:
// - subcollection: carts/{ownerId}/items
// - docId: auto-ID (store-assigned)
// - ownerId: verified uid; the partition IS the authorization boundary
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) items(ownerID string) *firestore.CollectionRef {
	return r.Client.Collection("carts").Doc(ownerID).Collection("items")
}

// ListByOwner returns all rows under the owner partition.
// A missing partition reads as an empty iterator, so an empty cart is just
// an empty slice.
func (r *CartRepositoryFS) ListByOwner(ctx context.Context, ownerID string) ([]cartdom.Item, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}

	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return nil, errors.New("cart_repository_fs: ownerID is empty")
	}

	it := r.items(oid).Documents(ctx)
	defer it.Stop()

	items := []cartdom.Item{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		items = append(items, cartItemFromSnapshot(snap))
	}
	return items, nil
}

func (r *CartRepositoryFS) Get(ctx context.Context, ownerID, itemID string) (cartdom.Item, error) {
	if r == nil || r.Client == nil {
		return cartdom.Item{}, errors.New("cart_repository_fs: firestore client is nil")
	}

	oid := strings.TrimSpace(ownerID)
	iid := strings.TrimSpace(itemID)
	if oid == "" || iid == "" {
		return cartdom.Item{}, cartdom.ErrItemNotFound
	}

	snap, err := r.items(oid).Doc(iid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return cartdom.Item{}, cartdom.ErrItemNotFound
		}
		return cartdom.Item{}, err
	}
	return cartItemFromSnapshot(snap), nil
}

// Add always inserts a fresh row. Repeated adds of the same product make
// duplicate rows by design; there is no merge-by-productId here.
func (r *CartRepositoryFS) Add(ctx context.Context, ownerID string, item cartdom.Item) (cartdom.Item, error) {
	if r == nil || r.Client == nil {
		return cartdom.Item{}, errors.New("cart_repository_fs: firestore client is nil")
	}

	oid := strings.TrimSpace(ownerID)
	if oid == "" {
		return cartdom.Item{}, errors.New("cart_repository_fs: ownerID is empty")
	}

	docRef := r.items(oid).NewDoc()
	item.ID = docRef.ID

	if _, err := docRef.Create(ctx, cartItemToDoc(item)); err != nil {
		return cartdom.Item{}, err
	}
	return item, nil
}

func (r *CartRepositoryFS) Delete(ctx context.Context, ownerID, itemID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	oid := strings.TrimSpace(ownerID)
	iid := strings.TrimSpace(itemID)
	if oid == "" || iid == "" {
		return cartdom.ErrItemNotFound
	}

	_, err := r.items(oid).Doc(iid).Delete(ctx)
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type cartItemDoc struct {
	ProductID string    `firestore:"productId"`
	Name      string    `firestore:"name"`
	Price     string    `firestore:"price"`
	ImageURL  string    `firestore:"imageUrl"`
	Quantity  int       `firestore:"quantity"`
	AddedAt   time.Time `firestore:"addedAt"`
}

func cartItemToDoc(it cartdom.Item) cartItemDoc {
	return cartItemDoc{
		ProductID: it.ProductID,
		Name:      it.Name,
		Price:     it.Price,
		ImageURL:  it.ImageURL,
		Quantity:  it.Quantity,
		AddedAt:   it.AddedAt,
	}
}

// cartItemFromSnapshot parses raw doc data with backward compatibility.
// Legacy rows from the web client stored quantity as a float and addedAt as
// an ISO string; DataTo would fail on those with a type mismatch.
func cartItemFromSnapshot(snap *firestore.DocumentSnapshot) cartdom.Item {
	it := cartdom.Item{ID: snap.Ref.ID, Quantity: 1}

	raw := snap.Data()
	if raw == nil {
		return it
	}

	it.ProductID = strings.TrimSpace(asString(raw["productId"]))
	it.Name = strings.TrimSpace(asString(raw["name"]))
	it.Price = strings.TrimSpace(asString(raw["price"]))
	it.ImageURL = strings.TrimSpace(asString(raw["imageUrl"]))
	if q := asInt(raw["quantity"]); q > 0 {
		it.Quantity = q
	}
	if t, ok := asTime(raw["addedAt"]); ok {
		it.AddedAt = t
	}
	return it
}
