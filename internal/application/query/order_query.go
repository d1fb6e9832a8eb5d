// internal/application/query/order_query.go
package query

import (
	"context"
	"errors"
	"strings"

	orderdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/order"
)

var ErrOrderQueryInvalidArgument = errors.New("order_query: invalid argument")

// OrderQuery is the read model for an identity's purchase history.
type OrderQuery struct {
	repo orderdom.Repository
}

func NewOrderQuery(repo orderdom.Repository) *OrderQuery {
	return &OrderQuery{repo: repo}
}

// GetOrders returns the identity's orders, newest first.
func (q *OrderQuery) GetOrders(ctx context.Context, identityID string) ([]orderdom.Order, error) {
	iid := strings.TrimSpace(identityID)
	if iid == "" {
		return nil, ErrOrderQueryInvalidArgument
	}
	return q.repo.ListByIdentity(ctx, iid)
}
