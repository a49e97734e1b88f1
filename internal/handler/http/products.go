package http

import (
	"encoding/json"
	"net/http"

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/models"
)

// getAllProducts handles GET /api/products. Any authenticated role may browse
// the catalog.
func (h *Handler) getAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.services.ProductService.ListProducts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, products, http.StatusOK)
}

// addProduct handles POST /api/products. Admin only.
func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var newProduct models.NewProduct
	if err := json.NewDecoder(r.Body).Decode(&newProduct); err != nil {
		badRequest(w, invalidJSONMessage)
		return
	}

	product, err := h.services.ProductService.CreateProduct(r.Context(), newProduct)
	if err != nil {
		respondError(w, err)
		return
	}

	log.Info().Str("product_id", product.ID).Msg("product added")
	createdResource(w, product)
}

// viewProduct handles GET /products/{id}.
func (h *Handler) viewProduct(w http.ResponseWriter, r *http.Request, id string) {
	product, err := h.services.ProductService.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, product, http.StatusOK)
}

// updateProduct handles PUT /products/{id}. The target is looked up before
// the payload is validated, so an unknown id answers 404 even for a garbage
// body.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request, id string) {
	var newProduct models.NewProduct
	if err := json.NewDecoder(r.Body).Decode(&newProduct); err != nil {
		badRequest(w, invalidJSONMessage)
		return
	}

	product, err := h.services.ProductService.UpdateProduct(r.Context(), id, newProduct)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, product, http.StatusOK)
}

// deleteProduct handles DELETE /products/{id}. Admin only.
func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request, id string) {
	log := logger.FromRequest(r)

	product, err := h.services.ProductService.RemoveProduct(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	log.Info().Str("product_id", product.ID).Msg("product deleted")
	writeJSON(w, product, http.StatusOK)
}
