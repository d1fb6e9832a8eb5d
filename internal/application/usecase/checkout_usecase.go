// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	cartdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/cart"
	orderdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/order"
)

var ErrCartEmpty = errors.New("checkout_usecase: cart is empty")

// ReceiptMailer is the outbound port for best-effort purchase receipts.
type ReceiptMailer interface {
	SendReceipt(ctx context.Context, toEmail string, o orderdom.Order) error
}

// Receipt reports a single-item purchase.
type Receipt struct {
	OrderID string  `json:"orderId"`
	Name    string  `json:"name"`
	Price   string  `json:"price"`
	Total   float64 `json:"total"`
	Status  string  `json:"status"`
}

// Report reports a whole-cart purchase. Total is computed before any row is
// consumed; Failed carries the rows whose delete did not go through.
type Report struct {
	OrderID   string                  `json:"orderId"`
	Total     float64                 `json:"total"`
	BadPrices []string                `json:"badPrices,omitempty"`
	Purchased int                     `json:"purchased"`
	Failed    []orderdom.ItemSnapshot `json:"failed,omitempty"`
	Status    string                  `json:"status"`
}

// CheckoutUsecase consumes cart rows into an explicit order record.
//
// Atomicity contract: the order document is written first with
// status pending, then rows are deleted one by one with each outcome recorded
// on the order, then the order is finalized completed or partial. Partial
// failure is committed and reported, never rolled back or retried.
type CheckoutUsecase struct {
	carts   cartdom.Repository
	orders  orderdom.Repository
	archive orderdom.Archiver
	mailer  ReceiptMailer
	clock   Clock
	newID   func() string
}

func NewCheckoutUsecase(carts cartdom.Repository, orders orderdom.Repository, archive orderdom.Archiver, mailer ReceiptMailer) *CheckoutUsecase {
	return &CheckoutUsecase{
		carts:   carts,
		orders:  orders,
		archive: archive,
		mailer:  mailer,
		clock:   systemClock{},
		newID:   uuid.NewString,
	}
}

// NewCheckoutUsecaseWithClock is useful for tests; newID may be nil.
func NewCheckoutUsecaseWithClock(carts cartdom.Repository, orders orderdom.Repository, archive orderdom.Archiver, mailer ReceiptMailer, clock Clock, newID func() string) *CheckoutUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &CheckoutUsecase{carts: carts, orders: orders, archive: archive, mailer: mailer, clock: clock, newID: newID}
}

// PurchaseOne consumes a single cart row.
func (uc *CheckoutUsecase) PurchaseOne(ctx context.Context, identityID, identityEmail, itemID string) (Receipt, error) {
	iid := strings.TrimSpace(identityID)
	if iid == "" {
		return Receipt{}, ErrNotSignedIn
	}

	itid := strings.TrimSpace(itemID)
	if itid == "" {
		return Receipt{}, ErrCartInvalidArgument
	}

	item, err := uc.carts.Get(ctx, iid, itid)
	if err != nil {
		return Receipt{}, err
	}

	o, err := uc.run(ctx, iid, identityEmail, []cartdom.Item{item})
	if err != nil {
		return Receipt{}, err
	}

	return Receipt{
		OrderID: o.ID,
		Name:    item.Name,
		Price:   item.Price,
		Total:   o.Total,
		Status:  string(o.Status),
	}, nil
}

// PurchaseAll consumes every row currently in the cart. An empty cart is an
// explicit ErrCartEmpty, never a zero-total report.
func (uc *CheckoutUsecase) PurchaseAll(ctx context.Context, identityID, identityEmail string) (Report, error) {
	iid := strings.TrimSpace(identityID)
	if iid == "" {
		return Report{}, ErrNotSignedIn
	}

	items, err := uc.carts.ListByOwner(ctx, iid)
	if err != nil {
		return Report{}, err
	}
	if len(items) == 0 {
		return Report{}, ErrCartEmpty
	}

	_, bad := cartdom.Total(items)

	o, err := uc.run(ctx, iid, identityEmail, items)
	if err != nil {
		return Report{}, err
	}

	purchased := 0
	for _, it := range o.Items {
		if it.Status == orderdom.ItemPurchased {
			purchased++
		}
	}

	return Report{
		OrderID:   o.ID,
		Total:     o.Total,
		BadPrices: bad,
		Purchased: purchased,
		Failed:    o.FailedItems(),
		Status:    string(o.Status),
	}, nil
}

// run is the shared consume flow: pending order -> per-row delete -> finalize.
func (uc *CheckoutUsecase) run(ctx context.Context, identityID, identityEmail string, items []cartdom.Item) (orderdom.Order, error) {
	total, _ := cartdom.Total(items)

	snaps := make([]orderdom.ItemSnapshot, 0, len(items))
	for _, it := range items {
		snaps = append(snaps, orderdom.ItemSnapshot{
			CartItemID: it.ID,
			ProductID:  it.ProductID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
			Status:     orderdom.ItemPending,
		})
	}

	now := uc.clock.Now()
	o, err := orderdom.New(uc.newID(), identityID, snaps, total, now)
	if err != nil {
		return orderdom.Order{}, err
	}

	// Pending order first: if this write fails, no cart row has been touched.
	if err := uc.orders.Create(ctx, o); err != nil {
		return orderdom.Order{}, err
	}

	for _, it := range items {
		if err := uc.carts.Delete(ctx, identityID, it.ID); err != nil {
			log.Printf("[checkout_usecase] WARN: row consume failed order=%s item=%s err=%v", o.ID, it.ID, err)
			_ = o.MarkItem(it.ID, orderdom.ItemFailed, err.Error())
			continue
		}
		_ = o.MarkItem(it.ID, orderdom.ItemPurchased, "")
	}

	o.Finalize(uc.clock.Now())

	if err := uc.orders.Save(ctx, o); err != nil {
		// The rows are already consumed; surface the error, the pending doc
		// still holds the item outcomes up to the failed save.
		return orderdom.Order{}, err
	}

	uc.afterFinalize(ctx, identityEmail, o)
	return o, nil
}

// afterFinalize runs the best-effort sinks: Postgres archive and receipt mail.
func (uc *CheckoutUsecase) afterFinalize(ctx context.Context, identityEmail string, o orderdom.Order) {
	if uc.archive != nil {
		if err := uc.archive.Archive(ctx, o); err != nil {
			log.Printf("[checkout_usecase] WARN: order archive failed order=%s err=%v", o.ID, err)
		}
	}

	if uc.mailer != nil && strings.TrimSpace(identityEmail) != "" {
		if err := uc.mailer.SendReceipt(ctx, identityEmail, o); err != nil {
			log.Printf("[checkout_usecase] WARN: receipt mail failed order=%s err=%v", o.ID, err)
		}
	}
}
