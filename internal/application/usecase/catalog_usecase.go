// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	productdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/product"
)

var ErrCatalogInvalidArgument = errors.New("catalog_usecase: invalid argument")

// ImageResolver maps a stored imageUrl value into a renderable URL.
type ImageResolver interface {
	Resolve(ctx context.Context, stored string) string
}

// LatestCache caches the latest-updates view. Nil-safe: a disabled cache is
// represented by a nil *LatestCache behind this interface, whose methods
// no-op on nil receivers.
type LatestCache interface {
	Get(ctx context.Context) ([]productdom.Product, bool)
	Set(ctx context.Context, items []productdom.Product)
	Invalidate(ctx context.Context)
}

// LatestLimit is the row count of the "latest updates" view.
const LatestLimit = 3

// AddProductInput carries the user-entered product fields.
type AddProductInput struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
}

// CatalogUsecase coordinates catalog operations: list/latest/add/delete.
// There is no update path; products are immutable once created.
type CatalogUsecase struct {
	repo   productdom.Repository
	images ImageResolver
	cache  LatestCache
	clock  Clock
}

func NewCatalogUsecase(repo productdom.Repository, images ImageResolver, cache LatestCache) *CatalogUsecase {
	return &CatalogUsecase{
		repo:   repo,
		images: images,
		cache:  cache,
		clock:  systemClock{},
	}
}

// NewCatalogUsecaseWithClock is useful for tests.
func NewCatalogUsecaseWithClock(repo productdom.Repository, images ImageResolver, cache LatestCache, clock Clock) *CatalogUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CatalogUsecase{repo: repo, images: images, cache: cache, clock: clock}
}

// List fetches the whole catalog (no pagination) and applies the requested
// client-side sort.
func (uc *CatalogUsecase) List(ctx context.Context, sort productdom.SortOption) ([]productdom.Product, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	uc.resolveImages(ctx, items)
	productdom.Sort(items, sort)
	return items, nil
}

// Latest serves the latest-updates view (addedAt desc, limit 3), read-through
// cached when a cache is wired.
func (uc *CatalogUsecase) Latest(ctx context.Context) ([]productdom.Product, error) {
	if uc.cache != nil {
		if items, ok := uc.cache.Get(ctx); ok {
			return items, nil
		}
	}

	items, err := uc.repo.ListLatest(ctx, LatestLimit)
	if err != nil {
		return nil, err
	}
	uc.resolveImages(ctx, items)

	if uc.cache != nil {
		uc.cache.Set(ctx, items)
	}
	return items, nil
}

// Add registers a product. identityEmail becomes addedBy; an empty email is
// recorded as "Anonymous". Missing name/description/price surfaces as
// product.ErrMissingField.
func (uc *CatalogUsecase) Add(ctx context.Context, identityEmail string, in AddProductInput) (productdom.Product, error) {
	p, err := productdom.New(in.Name, in.Description, in.Price, in.ImageURL, identityEmail, uc.clock.Now())
	if err != nil {
		return productdom.Product{}, err
	}

	created, err := uc.repo.Create(ctx, p)
	if err != nil {
		return productdom.Product{}, err
	}

	uc.invalidateLatest(ctx)
	return created, nil
}

// Delete removes a product unconditionally. Cart rows referencing it are left
// as they are; there is no cascade.
func (uc *CatalogUsecase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrCatalogInvalidArgument
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateLatest(ctx)
	return nil
}

func (uc *CatalogUsecase) resolveImages(ctx context.Context, items []productdom.Product) {
	if uc.images == nil {
		return
	}
	for i := range items {
		items[i].ImageURL = uc.images.Resolve(ctx, items[i].ImageURL)
	}
}

func (uc *CatalogUsecase) invalidateLatest(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	uc.cache.Invalidate(ctx)
	log.Printf("[catalog_usecase] latest cache invalidated")
}
