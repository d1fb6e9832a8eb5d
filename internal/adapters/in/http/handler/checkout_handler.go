// internal/adapters/in/http/handler/checkout_handler.go
package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "github.com/Happ11quokka/Hanyang-Market/internal/application/usecase"
	cartdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/cart"
)

// CheckoutHandler converts cart rows into completed orders.
//
// Routes (all behind auth, see register.go):
//   - POST /market/me/checkout        purchase the whole cart
//   - POST /market/me/checkout/item   {"itemId": "..."} purchase one row
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) http.Handler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := trimPath(r)
	log.Printf("[checkout_handler] enter method=%s path=%q", r.Method, path)

	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "checkout handler is not configured")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	id, ok := identity(w, r)
	if !ok {
		return
	}

	if strings.HasSuffix(path, "/checkout/item") {
		h.handlePurchaseOne(w, r, id.UID, id.Email, start)
		return
	}
	h.handlePurchaseAll(w, r, id.UID, id.Email, start)
}

type purchaseItemReq struct {
	ItemID string `json:"itemId"`
}

func (h *CheckoutHandler) handlePurchaseOne(w http.ResponseWriter, r *http.Request, uid, email string, start time.Time) {
	var req purchaseItemReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" {
		writeErr(w, http.StatusBadRequest, "itemId is required")
		return
	}

	receipt, err := h.uc.PurchaseOne(r.Context(), uid, email, itemID)
	if err != nil {
		if errors.Is(err, cartdom.ErrItemNotFound) {
			writeErr(w, http.StatusNotFound, "cart item not found")
			return
		}
		log.Printf("[checkout_handler] POST item error itemId=%s err=%v elapsed=%s", itemID, err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, "failed to purchase item")
		return
	}

	log.Printf("[checkout_handler] POST item ok orderId=%s elapsed=%s", receipt.OrderID, time.Since(start))
	writeJSON(w, http.StatusOK, receipt)
}

func (h *CheckoutHandler) handlePurchaseAll(w http.ResponseWriter, r *http.Request, uid, email string, start time.Time) {
	report, err := h.uc.PurchaseAll(r.Context(), uid, email)
	if err != nil {
		if errors.Is(err, usecase.ErrCartEmpty) {
			writeErr(w, http.StatusBadRequest, "cart is empty")
			return
		}
		log.Printf("[checkout_handler] POST all error err=%v elapsed=%s", err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, "failed to purchase cart")
		return
	}

	log.Printf("[checkout_handler] POST all ok orderId=%s status=%s purchased=%d failed=%d elapsed=%s",
		report.OrderID, report.Status, report.Purchased, len(report.Failed), time.Since(start))
	writeJSON(w, http.StatusOK, report)
}
