// internal/domain/product/entity.go
package product

import (
	"errors"
	"strings"
	"time"
)

// PlaceholderImagePath is used when a product is registered without an image.
const PlaceholderImagePath = "/default-image.png"

// AnonymousSeller is recorded as addedBy when the registering identity has no email.
const AnonymousSeller = "Anonymous"

var (
	ErrNotFound     = errors.New("product: not found")
	ErrConflict     = errors.New("product: already exists")
	ErrMissingField = errors.New("product: name, description and price are required")
)

// Product is a catalog record.
//   - docId = store-assigned (Firestore auto-ID), immutable
//   - Price is the display string as entered (e.g. "$25.00"); parsing happens
//     at the boundary via ParsePrice, never here
//   - Products are created and deleted, never updated in place
type Product struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	Price       string    `json:"price" firestore:"price"`
	ImageURL    string    `json:"imageUrl" firestore:"imageUrl"`
	AddedBy     string    `json:"addedBy" firestore:"addedBy"`
	AddedAt     time.Time `json:"addedAt" firestore:"addedAt"`
}

// New builds a Product from user-entered fields.
// name, description and price must be non-empty (trimmed).
// imageURL defaults to PlaceholderImagePath, addedBy to AnonymousSeller.
func New(name, description, price, imageURL, addedBy string, now time.Time) (Product, error) {
	p := Product{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Price:       strings.TrimSpace(price),
		ImageURL:    strings.TrimSpace(imageURL),
		AddedBy:     strings.TrimSpace(addedBy),
		AddedAt:     now.UTC(),
	}

	if p.Name == "" || p.Description == "" || p.Price == "" {
		return Product{}, ErrMissingField
	}

	if p.ImageURL == "" {
		p.ImageURL = PlaceholderImagePath
	}
	if p.AddedBy == "" {
		p.AddedBy = AnonymousSeller
	}

	return p, nil
}
