package http

import (
	"net/http"
)

// dispatch is the top-level entry point for every request. It classifies the
// path, walks the access-control gates in their fixed precedence order, and
// hands off to exactly one controller. Every reachable input produces exactly
// one response.
//
// Gate order, first match wins:
//
//  1. static asset (GET outside /api): bypasses everything, including auth
//  2. id-suffixed single resource: auth, role, content negotiation, method
//  3. unknown path: 404
//  4. OPTIONS on a known collection: CORS preflight, 204
//  5. method outside the route table: 405
//  6. client does not accept JSON: 406
//  7. collection controllers with their per-route auth and body checks
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	match := matchRoute(r.Method, path)
	switch match.kind {
	case routeStaticAsset:
		h.serveStatic(w, r, match.assetPath)
		return
	case routeSingleResource:
		h.dispatchResource(w, r, match)
		return
	}

	if _, known := allowedMethods[path]; !known {
		notFound(w)
		return
	}

	if r.Method == http.MethodOptions {
		sendOptions(w, path)
		return
	}

	if !methodAllowed(path, r.Method) {
		methodNotAllowed(w)
		return
	}

	if !acceptsJSON(r) {
		contentTypeNotAcceptable(w)
		return
	}

	h.dispatchCollection(w, r, path)
}

// dispatchCollection runs the per-route gates for collection endpoints and
// invokes the controller. Note the asymmetry kept from the API contract:
// registration needs no authentication, and the orders POST checks the body
// content type before the admin restriction is applied inside the service.
func (h *Handler) dispatchCollection(w http.ResponseWriter, r *http.Request, path string) {
	switch {
	case path == "/api/users" && r.Method == http.MethodGet:
		principal, ok := h.authenticate(w, r)
		if !ok {
			return
		}
		if !principal.IsAdmin() {
			forbidden(w)
			return
		}
		h.getAllUsers(w, r)

	case path == "/api/register" && r.Method == http.MethodPost:
		if !isJSONBody(r) {
			badRequest(w, "Invalid Content-Type. Expected application/json")
			return
		}
		h.registerUser(w, r)

	case path == "/api/products" && r.Method == http.MethodGet:
		if _, ok := h.authenticate(w, r); !ok {
			return
		}
		h.getAllProducts(w, r)

	case path == "/api/products" && r.Method == http.MethodPost:
		principal, ok := h.authenticate(w, r)
		if !ok {
			return
		}
		if !principal.IsAdmin() {
			forbidden(w)
			return
		}
		if !isJSONBody(r) {
			badRequest(w, "Invalid Content-Type. Expected application/json")
			return
		}
		h.addProduct(w, r)

	case path == "/api/orders" && r.Method == http.MethodGet:
		principal, ok := h.authenticate(w, r)
		if !ok {
			return
		}
		h.getAllOrders(w, r, principal)

	case path == "/api/orders" && r.Method == http.MethodPost:
		principal, ok := h.authenticate(w, r)
		if !ok {
			return
		}
		if !isJSONBody(r) {
			badRequest(w, "Invalid Content-Type. Expected application/json")
			return
		}
		h.addOrder(w, r, principal)

	default:
		// unreachable: the method was already checked against the table
		methodNotAllowed(w)
	}
}

// dispatchResource runs the gate chain for id-suffixed routes. The order is
// fixed: authentication first, the users-collection admin restriction second,
// content negotiation third, and only then the per-method dispatch. A method
// with no branch on a matched resource is a deliberate 405, not an implicit
// fallthrough.
func (h *Handler) dispatchResource(w http.ResponseWriter, r *http.Request, match routeMatch) {
	principal, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	if match.collection == "users" && !principal.IsAdmin() {
		forbidden(w)
		return
	}

	if !acceptsJSON(r) {
		contentTypeNotAcceptable(w)
		return
	}

	switch match.collection {
	case "users":
		switch r.Method {
		case http.MethodGet:
			h.viewUser(w, r, match.id)
		case http.MethodPut:
			h.updateUser(w, r, principal, match.id)
		case http.MethodDelete:
			h.deleteUser(w, r, principal, match.id)
		default:
			methodNotAllowed(w)
		}

	case "products":
		switch r.Method {
		case http.MethodGet:
			h.viewProduct(w, r, match.id)
		case http.MethodPut:
			if !principal.IsAdmin() {
				forbidden(w)
				return
			}
			h.updateProduct(w, r, match.id)
		case http.MethodDelete:
			if !principal.IsAdmin() {
				forbidden(w)
				return
			}
			h.deleteProduct(w, r, match.id)
		default:
			methodNotAllowed(w)
		}

	case "orders":
		switch r.Method {
		case http.MethodGet:
			h.viewOrder(w, r, principal, match.id)
		default:
			methodNotAllowed(w)
		}
	}
}
