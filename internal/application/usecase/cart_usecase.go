// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	cartdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/cart"
	productdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/product"
)

var (
	ErrNotSignedIn         = errors.New("cart_usecase: sign-in required")
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
)

// CartView is the cart read model: the rows plus the locally computed total.
// BadPrices lists display strings that could not be parsed and were excluded
// from the total.
type CartView struct {
	Items     []cartdom.Item `json:"items"`
	Total     float64        `json:"total"`
	BadPrices []string       `json:"badPrices,omitempty"`
}

// CartUsecase coordinates cart operations. The identityID is always the
// verified uid handed down from the auth middleware, never ambient state.
type CartUsecase struct {
	repo     cartdom.Repository
	products productdom.Repository
	images   ImageResolver
	clock    Clock
}

func NewCartUsecase(repo cartdom.Repository, products productdom.Repository, images ImageResolver) *CartUsecase {
	return &CartUsecase{
		repo:     repo,
		products: products,
		images:   images,
		clock:    systemClock{},
	}
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(repo cartdom.Repository, products productdom.Repository, images ImageResolver, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CartUsecase{repo: repo, products: products, images: images, clock: clock}
}

// List returns the identity's cart rows with the computed total.
func (uc *CartUsecase) List(ctx context.Context, identityID string) (CartView, error) {
	iid := strings.TrimSpace(identityID)
	if iid == "" {
		return CartView{}, ErrNotSignedIn
	}

	items, err := uc.repo.ListByOwner(ctx, iid)
	if err != nil {
		return CartView{}, err
	}

	if uc.images != nil {
		for i := range items {
			items[i].ImageURL = uc.images.Resolve(ctx, items[i].ImageURL)
		}
	}

	total, bad := cartdom.Total(items)
	return CartView{Items: items, Total: total, BadPrices: bad}, nil
}

// Add snapshots the product into a new cart row with quantity 1.
// Adding the same product again creates another row; rows never merge.
func (uc *CartUsecase) Add(ctx context.Context, identityID, productID string) (cartdom.Item, error) {
	iid := strings.TrimSpace(identityID)
	if iid == "" {
		return cartdom.Item{}, ErrNotSignedIn
	}

	pid := strings.TrimSpace(productID)
	if pid == "" {
		return cartdom.Item{}, ErrCartInvalidArgument
	}

	p, err := uc.products.GetByID(ctx, pid)
	if err != nil {
		return cartdom.Item{}, err
	}

	item, err := cartdom.NewItem(p, uc.clock.Now())
	if err != nil {
		return cartdom.Item{}, err
	}

	return uc.repo.Add(ctx, iid, item)
}

// Remove deletes one row and re-fetches the cart so the returned view is the
// store's truth, not a locally mutated copy.
func (uc *CartUsecase) Remove(ctx context.Context, identityID, itemID string) (CartView, error) {
	iid := strings.TrimSpace(identityID)
	if iid == "" {
		return CartView{}, ErrNotSignedIn
	}

	itid := strings.TrimSpace(itemID)
	if itid == "" {
		return CartView{}, ErrCartInvalidArgument
	}

	if err := uc.repo.Delete(ctx, iid, itid); err != nil {
		return CartView{}, err
	}

	return uc.List(ctx, iid)
}
