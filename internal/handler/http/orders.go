package http

import (
	"encoding/json"
	"net/http"

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/models"
)

// getAllOrders handles GET /api/orders. Admins see every order; customers see
// only their own.
func (h *Handler) getAllOrders(w http.ResponseWriter, r *http.Request, principal models.Principal) {
	orders, err := h.services.OrderService.ListOrders(r.Context(), principal)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, orders, http.StatusOK)
}

// addOrder handles POST /api/orders. Customers only; the service rejects
// admins before it even validates the payload.
func (h *Handler) addOrder(w http.ResponseWriter, r *http.Request, principal models.Principal) {
	log := logger.FromRequest(r)

	var newOrder models.NewOrder
	if err := json.NewDecoder(r.Body).Decode(&newOrder); err != nil {
		badRequest(w, invalidJSONMessage)
		return
	}

	order, err := h.services.OrderService.CreateOrder(r.Context(), principal, newOrder)
	if err != nil {
		respondError(w, err)
		return
	}

	log.Info().Str("order_id", order.ID).Msg("order placed")
	createdResource(w, order)
}

// viewOrder handles GET /orders/{id}. A customer asking for someone else's
// order gets a 404, indistinguishable from an order that does not exist.
func (h *Handler) viewOrder(w http.ResponseWriter, r *http.Request, principal models.Principal, id string) {
	order, err := h.services.OrderService.GetOrder(r.Context(), principal, id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, order, http.StatusOK)
}
