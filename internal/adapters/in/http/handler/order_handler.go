// internal/adapters/in/http/handler/order_handler.go
package handler

import (
	"log"
	"net/http"
	"time"

	query "github.com/Happ11quokka/Hanyang-Market/internal/application/query"
)

// OrderHandler serves the signed-in identity's order history.
//
// Routes (behind auth, see register.go):
//   - GET /market/me/orders
type OrderHandler struct {
	q *query.OrderQuery
}

func NewOrderHandler(q *query.OrderQuery) http.Handler {
	return &OrderHandler{q: q}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log.Printf("[order_handler] enter method=%s path=%q", r.Method, trimPath(r))

	if h.q == nil {
		writeErr(w, http.StatusInternalServerError, "order handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	id, ok := identity(w, r)
	if !ok {
		return
	}

	orders, err := h.q.GetOrders(r.Context(), id.UID)
	if err != nil {
		log.Printf("[order_handler] GET error err=%v elapsed=%s", err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	log.Printf("[order_handler] GET ok count=%d elapsed=%s", len(orders), time.Since(start))
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}
