// internal/application/query/order_query_test.go
package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	orderdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/order"
)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, o orderdom.Order) error {
	panic("not used in OrderQuery tests")
}

func (m *OrderRepoMock) Save(ctx context.Context, o orderdom.Order) error {
	panic("not used in OrderQuery tests")
}

func (m *OrderRepoMock) ListByIdentity(ctx context.Context, identityID string) ([]orderdom.Order, error) {
	args := m.Called(ctx, identityID)
	orders, _ := args.Get(0).([]orderdom.Order)
	return orders, args.Error(1)
}

func TestOrderQuery_GetOrders(t *testing.T) {
	ctx := context.Background()

	repo := new(OrderRepoMock)
	q := NewOrderQuery(repo)

	want := []orderdom.Order{{ID: "order-2"}, {ID: "order-1"}}
	repo.On("ListByIdentity", mock.Anything, "uid-1").Return(want, nil)

	got, err := q.GetOrders(ctx, "uid-1")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOrderQuery_GetOrders_EmptyIdentity(t *testing.T) {
	q := NewOrderQuery(new(OrderRepoMock))

	_, err := q.GetOrders(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrOrderQueryInvalidArgument)
}
