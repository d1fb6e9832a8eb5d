// internal/adapters/in/http/handler/cart_handler.go
package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "github.com/Happ11quokka/Hanyang-Market/internal/application/usecase"
	cartdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/cart"
	productdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/product"
)

// CartHandler serves the signed-in identity's cart.
//
// Routes (all behind auth, see register.go):
//   - GET    /market/me/cart/items
//   - POST   /market/me/cart/items        {"productId": "..."}
//   - DELETE /market/me/cart/items?id=... (or {"id": "..."})
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log.Printf("[cart_handler] enter method=%s path=%q", r.Method, trimPath(r))

	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	id, ok := identity(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r, id.UID, start)
	case http.MethodPost:
		h.handleAdd(w, r, id.UID, start)
	case http.MethodDelete:
		h.handleRemove(w, r, id.UID, start)
	default:
		methodNotAllowed(w)
	}
}

func (h *CartHandler) handleList(w http.ResponseWriter, r *http.Request, uid string, start time.Time) {
	view, err := h.uc.List(r.Context(), uid)
	if err != nil {
		log.Printf("[cart_handler] GET list error err=%v elapsed=%s", err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, "failed to list cart items")
		return
	}

	log.Printf("[cart_handler] GET list ok count=%d elapsed=%s", len(view.Items), time.Since(start))
	writeJSON(w, http.StatusOK, view)
}

type addCartItemReq struct {
	ProductID string `json:"productId"`
}

func (h *CartHandler) handleAdd(w http.ResponseWriter, r *http.Request, uid string, start time.Time) {
	var req addCartItemReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	item, err := h.uc.Add(r.Context(), uid, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCartInvalidArgument):
			writeErr(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, productdom.ErrNotFound):
			writeErr(w, http.StatusNotFound, "product not found")
		default:
			log.Printf("[cart_handler] POST add error productId=%s err=%v elapsed=%s", req.ProductID, err, time.Since(start))
			writeErr(w, http.StatusInternalServerError, "failed to add cart item")
		}
		return
	}

	log.Printf("[cart_handler] POST add ok itemId=%s productId=%s elapsed=%s", item.ID, req.ProductID, time.Since(start))
	writeJSON(w, http.StatusCreated, item)
}

type removeCartItemReq struct {
	ID string `json:"id"`
}

func (h *CartHandler) handleRemove(w http.ResponseWriter, r *http.Request, uid string, start time.Time) {
	itemID := strings.TrimSpace(r.URL.Query().Get("id"))
	if itemID == "" {
		var req removeCartItemReq
		if err := readJSON(r, &req); err == nil {
			itemID = strings.TrimSpace(req.ID)
		}
	}
	if itemID == "" {
		writeErr(w, http.StatusBadRequest, "id is required")
		return
	}

	view, err := h.uc.Remove(r.Context(), uid, itemID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCartInvalidArgument):
			writeErr(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, cartdom.ErrItemNotFound):
			writeErr(w, http.StatusNotFound, "cart item not found")
		default:
			log.Printf("[cart_handler] DELETE error itemId=%s err=%v elapsed=%s", itemID, err, time.Since(start))
			writeErr(w, http.StatusInternalServerError, "failed to remove cart item")
		}
		return
	}

	log.Printf("[cart_handler] DELETE ok itemId=%s remaining=%d elapsed=%s", itemID, len(view.Items), time.Since(start))
	writeJSON(w, http.StatusOK, view)
}
