package http

import (
	"net/http"
	"strings"
)

// acceptsJSON reports whether the client accepts a JSON response.
//
// An absent Accept header counts as acceptance (the wildcard default).
// Otherwise the header must mention application/json or */* somewhere; the
// check is substring containment over the raw header value, not full
// media-type parsing. The Accept header may carry several comma-separated
// values with q-parameters; containment handles all of those, at the cost of
// also accepting values like "application/jsonx".
func acceptsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}

	return strings.Contains(accept, "application/json") || strings.Contains(accept, "*/*")
}

// isJSONBody reports whether the request body is declared as JSON. Only the
// exact media type is accepted, case-insensitively; parameters such as
// "; charset=utf-8" do not qualify.
func isJSONBody(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Content-Type"), "application/json")
}
