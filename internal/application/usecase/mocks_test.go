// internal/application/usecase/mocks_test.go
package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	cartdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/cart"
	orderdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/order"
	productdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/product"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]productdom.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]productdom.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListLatest(ctx context.Context, limit int) ([]productdom.Product, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]productdom.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) GetByID(ctx context.Context, id string) (productdom.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(productdom.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p productdom.Product) (productdom.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(productdom.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) ListByOwner(ctx context.Context, ownerID string) ([]cartdom.Item, error) {
	args := m.Called(ctx, ownerID)
	items, _ := args.Get(0).([]cartdom.Item)
	return items, args.Error(1)
}

func (m *CartRepoMock) Get(ctx context.Context, ownerID, itemID string) (cartdom.Item, error) {
	args := m.Called(ctx, ownerID, itemID)
	it, _ := args.Get(0).(cartdom.Item)
	return it, args.Error(1)
}

func (m *CartRepoMock) Add(ctx context.Context, ownerID string, it cartdom.Item) (cartdom.Item, error) {
	args := m.Called(ctx, ownerID, it)
	added, _ := args.Get(0).(cartdom.Item)
	return added, args.Error(1)
}

func (m *CartRepoMock) Delete(ctx context.Context, ownerID, itemID string) error {
	args := m.Called(ctx, ownerID, itemID)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, o orderdom.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepoMock) Save(ctx context.Context, o orderdom.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepoMock) ListByIdentity(ctx context.Context, identityID string) ([]orderdom.Order, error) {
	args := m.Called(ctx, identityID)
	orders, _ := args.Get(0).([]orderdom.Order)
	return orders, args.Error(1)
}

type ArchiverMock struct{ mock.Mock }

func (m *ArchiverMock) Archive(ctx context.Context, o orderdom.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MailerMock struct{ mock.Mock }

func (m *MailerMock) SendReceipt(ctx context.Context, toEmail string, o orderdom.Order) error {
	args := m.Called(ctx, toEmail, o)
	return args.Error(0)
}

type ImageResolverMock struct{ mock.Mock }

func (m *ImageResolverMock) Resolve(ctx context.Context, stored string) string {
	args := m.Called(ctx, stored)
	return args.String(0)
}

type LatestCacheMock struct{ mock.Mock }

func (m *LatestCacheMock) Get(ctx context.Context) ([]productdom.Product, bool) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]productdom.Product)
	return items, args.Bool(1)
}

func (m *LatestCacheMock) Set(ctx context.Context, items []productdom.Product) {
	m.Called(ctx, items)
}

func (m *LatestCacheMock) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

// =====================
// Helpers
// =====================

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
