// internal/domain/cart/entity_test.go
package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	productdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/product"
)

func TestNewItem_SnapshotsProduct(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	p := productdom.Product{
		ID:       "prod-1",
		Name:     "Mug",
		Price:    "$12.00",
		ImageURL: "mugs/blue.png",
	}

	it, err := NewItem(p, now)
	assert.NoError(t, err)
	assert.Equal(t, "prod-1", it.ProductID)
	assert.Equal(t, "Mug", it.Name)
	assert.Equal(t, "$12.00", it.Price)
	assert.Equal(t, "mugs/blue.png", it.ImageURL)
	assert.Equal(t, 1, it.Quantity)
	assert.Equal(t, now, it.AddedAt)
	assert.Empty(t, it.ID)
}

func TestNewItem_Invalid(t *testing.T) {
	now := time.Now()

	_, err := NewItem(productdom.Product{Name: "Mug", Price: "$1"}, now)
	assert.ErrorIs(t, err, ErrInvalidItem, "missing product id")

	_, err = NewItem(productdom.Product{ID: "p", Price: "$1"}, now)
	assert.ErrorIs(t, err, ErrInvalidItem, "missing name")

	_, err = NewItem(productdom.Product{ID: "p", Name: "Mug"}, now)
	assert.ErrorIs(t, err, ErrInvalidItem, "missing price")
}

func TestTotal_SumsParsedPrices(t *testing.T) {
	items := []Item{
		{Price: "$25.00", Quantity: 2},
		{Price: "₩1,000", Quantity: 1},
	}

	total, bad := Total(items)
	assert.Equal(t, 1050.0, total)
	assert.Empty(t, bad)
}

func TestTotal_BadPricesExcludedNotPoisoning(t *testing.T) {
	items := []Item{
		{Price: "$10", Quantity: 1},
		{Price: "free", Quantity: 1},
		{Price: "ask seller", Quantity: 3},
	}

	total, bad := Total(items)
	assert.Equal(t, 10.0, total)
	assert.Equal(t, []string{"free", "ask seller"}, bad)
}

func TestTotal_ZeroQuantityCountsAsOne(t *testing.T) {
	items := []Item{{Price: "$7", Quantity: 0}}

	total, bad := Total(items)
	assert.Equal(t, 7.0, total)
	assert.Empty(t, bad)
}
