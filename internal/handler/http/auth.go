package http

import (
	"errors"
	"net/http"

	"github.com/jmattila/webshop/internal/logger"
	"github.com/jmattila/webshop/internal/service"
	"github.com/jmattila/webshop/models"
)

// authenticate resolves the request's Basic credentials to a verified
// principal. On any failure (missing or malformed header, unknown email,
// wrong password) it writes the 401 challenge itself and returns ok=false,
// so callers just stop. All failure modes produce the identical response;
// nothing observable distinguishes a bad password from a nonexistent
// account.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	log := logger.FromRequest(r)

	email, password, ok := credentials(r)
	if !ok {
		basicAuthChallenge(w)
		return models.Principal{}, false
	}

	principal, err := h.services.AuthService.Authenticate(r.Context(), email, password)
	if err != nil {
		if !errors.Is(err, service.ErrAuthenticationFailed) {
			log.Err(err).Msg("authentication lookup failed")
		}

		basicAuthChallenge(w)
		return models.Principal{}, false
	}

	return principal, true
}
