package http

import (
	"encoding/json"
	"net/http"

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/models"
)

const invalidJSONMessage = "Invalid JSON was passed"

// registerUser handles POST /api/register. Registration is open to anyone;
// the created account is always a customer regardless of what the payload
// asked for.
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var newUser models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		badRequest(w, invalidJSONMessage)
		return
	}

	user, err := h.services.UserService.Register(r.Context(), newUser)
	if err != nil {
		respondError(w, err)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	createdResource(w, user)
}

// getAllUsers handles GET /api/users. Admin only; the role gate runs in the
// dispatcher.
func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, users, http.StatusOK)
}

// viewUser handles GET /users/{id}.
func (h *Handler) viewUser(w http.ResponseWriter, r *http.Request, id string) {
	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, user, http.StatusOK)
}

// updateUser handles PUT /users/{id}: a role change. Admins cannot change
// their own role; the service enforces that and the ordering of its checks.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request, principal models.Principal, id string) {
	var change models.RoleChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		badRequest(w, invalidJSONMessage)
		return
	}

	user, err := h.services.UserService.ChangeRole(r.Context(), principal, id, change)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, user, http.StatusOK)
}

// deleteUser handles DELETE /users/{id}. Deleting the authenticated account
// itself is rejected before the target is even looked up.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request, principal models.Principal, id string) {
	log := logger.FromRequest(r)

	user, err := h.services.UserService.RemoveUser(r.Context(), principal, id)
	if err != nil {
		respondError(w, err)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user deleted")
	writeJSON(w, user, http.StatusOK)
}
