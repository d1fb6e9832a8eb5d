// internal/adapters/out/firestore/product_repository_fs.go
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

	productdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/product"
)

// ProductRepositoryFS is the Firestore implementation of product.Repository.
//
// Collection design:
// - collection: products
// - docId: auto-ID (store-assigned, immutable)
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("products")
}

func (r *ProductRepositoryFS) List(ctx context.Context) ([]productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	items := []productdom.Product{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		items = append(items, productFromSnapshot(snap))
	}
	return items, nil
}

// ListLatest serves the "latest updates" view: addedAt descending, limited.
func (r *ProductRepositoryFS) ListLatest(ctx context.Context, limit int) ([]productdom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}
	if limit <= 0 {
		limit = 3
	}

	it := r.col().OrderBy("addedAt", firestore.Desc).Limit(limit).Documents(ctx)
	defer it.Stop()

	items := []productdom.Product{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		items = append(items, productFromSnapshot(snap))
	}
	return items, nil
}

func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	if r == nil || r.Client == nil {
		return productdom.Product{}, errors.New("product_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.Product{}, productdom.ErrNotFound
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return productdom.Product{}, productdom.ErrNotFound
		}
		return productdom.Product{}, err
	}
	return productFromSnapshot(snap), nil
}

func (r *ProductRepositoryFS) Create(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	if r == nil || r.Client == nil {
		return productdom.Product{}, errors.New("product_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(p.ID)
	var docRef *firestore.DocumentRef
	if id == "" {
		docRef = r.col().NewDoc()
		p.ID = docRef.ID
	} else {
		docRef = r.col().Doc(id)
		p.ID = id
	}

	_, err := docRef.Create(ctx, productToDoc(p))
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return productdom.Product{}, productdom.ErrConflict
		}
		return productdom.Product{}, err
	}
	return p, nil
}

// Delete is unconditional; a missing doc deletes cleanly (Firestore semantics).
// Cart rows referencing the product are intentionally left alone.
func (r *ProductRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return productdom.ErrNotFound
	}

	_, err := r.col().Doc(id).Delete(ctx)
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type productDoc struct {
	Name        string    `firestore:"name"`
	Description string    `firestore:"description"`
	Price       string    `firestore:"price"`
	ImageURL    string    `firestore:"imageUrl"`
	AddedBy     string    `firestore:"addedBy"`
	AddedAt     time.Time `firestore:"addedAt"`
}

func productToDoc(p productdom.Product) productDoc {
	return productDoc{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		AddedBy:     p.AddedBy,
		AddedAt:     p.AddedAt,
	}
}

// productFromSnapshot parses raw doc data instead of DataTo.
// Rows written by the original web client stored addedAt as an ISO string and
// occasionally omitted imageUrl/addedBy; raw parsing keeps those readable.
func productFromSnapshot(snap *firestore.DocumentSnapshot) productdom.Product {
	p := productdom.Product{ID: snap.Ref.ID}

	raw := snap.Data()
	if raw == nil {
		return p
	}

	p.Name = strings.TrimSpace(asString(raw["name"]))
	p.Description = strings.TrimSpace(asString(raw["description"]))
	p.Price = strings.TrimSpace(asString(raw["price"]))
	p.ImageURL = strings.TrimSpace(asString(raw["imageUrl"]))
	p.AddedBy = strings.TrimSpace(asString(raw["addedBy"]))
	if t, ok := asTime(raw["addedAt"]); ok {
		p.AddedAt = t
	}

	if p.ImageURL == "" {
		p.ImageURL = productdom.PlaceholderImagePath
	}
	return p
}
