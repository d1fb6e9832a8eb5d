// internal/adapters/in/http/handler/product_handler.go
package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "github.com/Happ11quokka/Hanyang-Market/internal/application/usecase"
	productdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/product"
)

// ProductHandler serves the public catalog plus authenticated mutations.
//
// Routes (see register.go for auth wrapping):
//   - GET    /market/products            (?sort=price|name)
//   - GET    /market/products/latest
//   - POST   /market/products            (auth)
//   - DELETE /market/products?id=...     (auth)
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

func NewProductHandler(uc *usecase.CatalogUsecase) http.Handler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := trimPath(r)

	log.Printf("[product_handler] enter method=%s path=%q query=%q", r.Method, path, r.URL.RawQuery)

	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "product handler is not configured")
		return
	}

	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(path, "/products/latest"):
		h.handleLatest(w, r, start)
	case r.Method == http.MethodGet:
		h.handleList(w, r, start)
	case r.Method == http.MethodPost:
		h.handleAdd(w, r, start)
	case r.Method == http.MethodDelete:
		h.handleDelete(w, r, start)
	default:
		methodNotAllowed(w)
	}
}

func (h *ProductHandler) handleList(w http.ResponseWriter, r *http.Request, start time.Time) {
	sortOpt := productdom.ParseSortOption(r.URL.Query().Get("sort"))

	items, err := h.uc.List(r.Context(), sortOpt)
	if err != nil {
		log.Printf("[product_handler] GET list error err=%v elapsed=%s", err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	log.Printf("[product_handler] GET list ok count=%d sort=%s elapsed=%s", len(items), sortOpt, time.Since(start))
	writeJSON(w, http.StatusOK, map[string]any{"products": items})
}

func (h *ProductHandler) handleLatest(w http.ResponseWriter, r *http.Request, start time.Time) {
	items, err := h.uc.Latest(r.Context())
	if err != nil {
		log.Printf("[product_handler] GET latest error err=%v elapsed=%s", err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, "failed to list latest products")
		return
	}

	log.Printf("[product_handler] GET latest ok count=%d elapsed=%s", len(items), time.Since(start))
	writeJSON(w, http.StatusOK, map[string]any{"products": items})
}

type addProductReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"imageUrl"`
}

func (h *ProductHandler) handleAdd(w http.ResponseWriter, r *http.Request, start time.Time) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	var req addProductReq
	if err := readJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	created, err := h.uc.Add(r.Context(), id.Email, usecase.AddProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, productdom.ErrMissingField) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[product_handler] POST add error err=%v elapsed=%s", err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, "failed to add product")
		return
	}

	log.Printf("[product_handler] POST add ok id=%s elapsed=%s", created.ID, time.Since(start))
	writeJSON(w, http.StatusCreated, created)
}

type deleteProductReq struct {
	ID string `json:"id"`
}

func (h *ProductHandler) handleDelete(w http.ResponseWriter, r *http.Request, start time.Time) {
	if _, ok := identity(w, r); !ok {
		return
	}

	pid := strings.TrimSpace(r.URL.Query().Get("id"))
	if pid == "" {
		var req deleteProductReq
		if err := readJSON(r, &req); err == nil {
			pid = strings.TrimSpace(req.ID)
		}
	}
	if pid == "" {
		writeErr(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.uc.Delete(r.Context(), pid); err != nil {
		if errors.Is(err, usecase.ErrCatalogInvalidArgument) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[product_handler] DELETE error id=%s err=%v elapsed=%s", pid, err, time.Since(start))
		writeErr(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	log.Printf("[product_handler] DELETE ok id=%s elapsed=%s", pid, time.Since(start))
	writeJSON(w, http.StatusOK, map[string]string{"deleted": pid})
}
