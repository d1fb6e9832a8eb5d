// internal/adapters/in/http/handler/cart_handler_test.go
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	usecase "github.com/Happ11quokka/Hanyang-Market/internal/application/usecase"
	cartdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/cart"
	productdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/product"
)

type cartRepoMock struct{ mock.Mock }

func (m *cartRepoMock) ListByOwner(ctx context.Context, ownerID string) ([]cartdom.Item, error) {
	args := m.Called(ctx, ownerID)
	items, _ := args.Get(0).([]cartdom.Item)
	return items, args.Error(1)
}

func (m *cartRepoMock) Get(ctx context.Context, ownerID, itemID string) (cartdom.Item, error) {
	args := m.Called(ctx, ownerID, itemID)
	it, _ := args.Get(0).(cartdom.Item)
	return it, args.Error(1)
}

func (m *cartRepoMock) Add(ctx context.Context, ownerID string, it cartdom.Item) (cartdom.Item, error) {
	args := m.Called(ctx, ownerID, it)
	added, _ := args.Get(0).(cartdom.Item)
	return added, args.Error(1)
}

func (m *cartRepoMock) Delete(ctx context.Context, ownerID, itemID string) error {
	args := m.Called(ctx, ownerID, itemID)
	return args.Error(0)
}

func newCartHandler(carts cartdom.Repository, products productdom.Repository) http.Handler {
	return NewCartHandler(usecase.NewCartUsecase(carts, products, nil))
}

func TestCartHandler_RequiresIdentity(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/market/me/cart/items", nil)
	rec := httptest.NewRecorder()

	newCartHandler(new(cartRepoMock), new(productRepoMock)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartHandler_List(t *testing.T) {
	carts := new(cartRepoMock)
	carts.On("ListByOwner", mock.Anything, "uid-1").Return([]cartdom.Item{
		{ID: "row-1", Name: "Mug", Price: "$12.00", Quantity: 1},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/market/me/cart/items", nil)
	req = withIdentity(req, "uid-1", "")
	rec := httptest.NewRecorder()

	newCartHandler(carts, new(productRepoMock)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var view usecase.CartView
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Len(t, view.Items, 1)
	assert.Equal(t, 12.0, view.Total)
}

func TestCartHandler_Add(t *testing.T) {
	carts := new(cartRepoMock)
	products := new(productRepoMock)

	products.On("GetByID", mock.Anything, "prod-1").Return(productdom.Product{
		ID: "prod-1", Name: "Mug", Price: "$12.00",
	}, nil)
	carts.On("Add", mock.Anything, "uid-1", mock.Anything).Return(cartdom.Item{ID: "row-1", ProductID: "prod-1"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/market/me/cart/items", strings.NewReader(`{"productId":"prod-1"}`))
	req = withIdentity(req, "uid-1", "")
	rec := httptest.NewRecorder()

	newCartHandler(carts, products).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCartHandler_Add_UnknownProduct(t *testing.T) {
	carts := new(cartRepoMock)
	products := new(productRepoMock)

	products.On("GetByID", mock.Anything, "nope").Return(productdom.Product{}, productdom.ErrNotFound)

	req := httptest.NewRequest(http.MethodPost, "/market/me/cart/items", strings.NewReader(`{"productId":"nope"}`))
	req = withIdentity(req, "uid-1", "")
	rec := httptest.NewRecorder()

	newCartHandler(carts, products).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandler_Remove(t *testing.T) {
	carts := new(cartRepoMock)

	carts.On("Delete", mock.Anything, "uid-1", "row-1").Return(nil)
	carts.On("ListByOwner", mock.Anything, "uid-1").Return([]cartdom.Item{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/market/me/cart/items?id=row-1", nil)
	req = withIdentity(req, "uid-1", "")
	rec := httptest.NewRecorder()

	newCartHandler(carts, new(productRepoMock)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var view usecase.CartView
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Empty(t, view.Items)
	assert.Equal(t, 0.0, view.Total)
}
