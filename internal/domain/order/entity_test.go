// internal/domain/order/entity_test.go
package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func snaps() []ItemSnapshot {
	return []ItemSnapshot{
		{CartItemID: "row-1", ProductID: "p1", Name: "Mug", Price: "$12", Quantity: 1},
		{CartItemID: "row-2", ProductID: "p2", Name: "Shirt", Price: "$30", Quantity: 2},
	}
}

func TestNew_PendingOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	o, err := New("order-1", "uid-1", snaps(), 72.0, now)
	assert.NoError(t, err)
	assert.Equal(t, "order-1", o.ID)
	assert.Equal(t, "uid-1", o.IdentityID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, now, o.CreatedAt)
	assert.Nil(t, o.CompletedAt)

	for _, it := range o.Items {
		assert.Equal(t, ItemPending, it.Status)
	}
}

func TestNew_Validation(t *testing.T) {
	now := time.Now()

	_, err := New("", "uid", snaps(), 0, now)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = New("order-1", "  ", snaps(), 0, now)
	assert.ErrorIs(t, err, ErrInvalidIdentityID)

	_, err = New("order-1", "uid", nil, 0, now)
	assert.ErrorIs(t, err, ErrEmptyItems)

	_, err = New("order-1", "uid", []ItemSnapshot{{CartItemID: "", Name: "Mug"}}, 0, now)
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestNew_NormalizesQuantity(t *testing.T) {
	items := []ItemSnapshot{{CartItemID: "row-1", Name: "Mug", Quantity: 0}}

	o, err := New("order-1", "uid", items, 0, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 1, o.Items[0].Quantity)
}

func TestMarkItem_And_Finalize_Completed(t *testing.T) {
	o, err := New("order-1", "uid", snaps(), 72.0, time.Now())
	assert.NoError(t, err)

	assert.NoError(t, o.MarkItem("row-1", ItemPurchased, ""))
	assert.NoError(t, o.MarkItem("row-2", ItemPurchased, ""))

	done := time.Date(2025, 6, 1, 10, 0, 5, 0, time.UTC)
	o.Finalize(done)

	assert.Equal(t, StatusCompleted, o.Status)
	if assert.NotNil(t, o.CompletedAt) {
		assert.Equal(t, done, *o.CompletedAt)
	}
	assert.Empty(t, o.FailedItems())
}

func TestFinalize_AnyFailureMakesPartial(t *testing.T) {
	o, err := New("order-1", "uid", snaps(), 72.0, time.Now())
	assert.NoError(t, err)

	assert.NoError(t, o.MarkItem("row-1", ItemPurchased, ""))
	assert.NoError(t, o.MarkItem("row-2", ItemFailed, "delete failed"))

	o.Finalize(time.Now())

	assert.Equal(t, StatusPartial, o.Status)

	failed := o.FailedItems()
	if assert.Len(t, failed, 1) {
		assert.Equal(t, "row-2", failed[0].CartItemID)
		assert.Equal(t, "delete failed", failed[0].FailReason)
	}
}

func TestMarkItem_UnknownRow(t *testing.T) {
	o, err := New("order-1", "uid", snaps(), 72.0, time.Now())
	assert.NoError(t, err)

	assert.ErrorIs(t, o.MarkItem("row-x", ItemPurchased, ""), ErrInvalidItem)
}
