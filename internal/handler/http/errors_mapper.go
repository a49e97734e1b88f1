// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jere Mattila

package http

import (
	"errors"
	"net/http"

	"github.com/jmattila/webshop/internal/service"
	"github.com/jmattila/webshop/internal/store"
)

// respondError maps a service or store error to its HTTP response.
//
// The mapping is deliberately coarse: not-found sentinels become 404, the
// admin-ordering restriction becomes 403, and everything else (validation
// failures, uniqueness conflicts, ownership guards, even unexpected storage
// errors) degrades to a 400 with the error detail in the body. The server
// never answers 500 for a request the routing layer accepted.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		badRequest(w, validationErr.Messages)
		return
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrProductNotFound),
		errors.Is(err, store.ErrOrderNotFound):
		notFound(w)

	case errors.Is(err, service.ErrAdminOrderForbidden):
		forbidden(w)

	case errors.Is(err, store.ErrEmailAlreadyExists):
		badRequest(w, "Email is already in use")

	case errors.Is(err, store.ErrProductAlreadyExists):
		badRequest(w, "Product is already in database")

	default:
		badRequest(w, err.Error())
	}
}
