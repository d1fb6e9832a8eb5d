// internal/platform/di/register.go
package di

import (
	"encoding/json"
	"log"
	"net/http"

	handler "github.com/Happ11quokka/Hanyang-Market/internal/adapters/in/http/handler"
	"github.com/Happ11quokka/Hanyang-Market/internal/adapters/in/http/middleware"
)

// notImplemented returns a non-nil handler (so deps are never nil) for
// endpoints that are not wired yet.
func notImplemented(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotImplemented)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "not_implemented",
			"name":  name,
		})
	})
}

// requireUserAuth wraps handler with UserAuthMiddleware (fail-closed).
// If middleware is not initialized, it returns 503 so the bug is obvious.
func requireUserAuth(mw *middleware.UserAuthMiddleware, h http.Handler, name string) http.Handler {
	if h == nil {
		h = http.NotFoundHandler()
	}
	if mw == nil || mw.FirebaseAuth == nil {
		log.Printf("[register] ERROR: UserAuthMiddleware is not initialized (endpoint=%s). returning 503", name)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "user_auth_not_initialized",
				"name":  name,
			})
		})
	}
	return mw.Handler(h)
}

// Register registers market routes onto mux.
//   - /market/products is public for GET, authenticated for POST/DELETE
//   - everything under /market/me/ requires a verified identity
func Register(mux *http.ServeMux, cont *Container) {
	if mux == nil || cont == nil {
		return
	}

	var userAuthMW *middleware.UserAuthMiddleware
	if cont.Infra != nil && cont.Infra.FirebaseAuth != nil {
		userAuthMW = &middleware.UserAuthMiddleware{FirebaseAuth: cont.Infra.FirebaseAuth}
	} else {
		// fail-closed in requireUserAuth
		log.Printf("[register] WARN: FirebaseAuth is nil (protected endpoints will return 503)")
		userAuthMW = &middleware.UserAuthMiddleware{FirebaseAuth: nil}
	}

	productH := notImplemented("Product")
	cartH := notImplemented("Cart")
	checkoutH := notImplemented("Checkout")
	orderH := notImplemented("Order")

	if cont.CatalogUC != nil {
		productH = handler.NewProductHandler(cont.CatalogUC)
	}
	if cont.CartUC != nil {
		cartH = handler.NewCartHandler(cont.CartUC)
	}
	if cont.CheckoutUC != nil {
		checkoutH = handler.NewCheckoutHandler(cont.CheckoutUC)
	}
	if cont.OrderQ != nil {
		orderH = handler.NewOrderHandler(cont.OrderQ)
	}

	// Products: GET is public, mutations require auth. The split lives here,
	// not in the handler, so the handler can assume identity on mutations.
	authedProductH := requireUserAuth(userAuthMW, productH, "Product")
	mux.Handle("/market/products", splitByMethod(productH, authedProductH))
	mux.Handle("/market/products/", splitByMethod(productH, authedProductH))

	mux.Handle("/market/me/cart/items", requireUserAuth(userAuthMW, cartH, "Cart"))
	mux.Handle("/market/me/cart/items/", requireUserAuth(userAuthMW, cartH, "Cart"))

	mux.Handle("/market/me/checkout", requireUserAuth(userAuthMW, checkoutH, "Checkout"))
	mux.Handle("/market/me/checkout/", requireUserAuth(userAuthMW, checkoutH, "Checkout"))

	mux.Handle("/market/me/orders", requireUserAuth(userAuthMW, orderH, "Order"))

	log.Printf("[register] market routes registered")
}

// splitByMethod serves GET/HEAD from the public handler and everything else
// from the authenticated one.
func splitByMethod(public, authed http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			public.ServeHTTP(w, r)
		default:
			authed.ServeHTTP(w, r)
		}
	})
}
