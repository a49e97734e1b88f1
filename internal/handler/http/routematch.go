package http

import (
	"net/http"
	"regexp"
	"strings"
)

// allowedMethods maps each known collection route to the set of HTTP methods
// it accepts. The table is consulted both to reject unsupported methods
// (405) and to answer CORS preflight OPTIONS requests. Immutable after
// process start.
var allowedMethods = map[string][]string{
	"/api/register": {http.MethodPost},
	"/api/users":    {http.MethodGet},
	"/api/products": {http.MethodGet, http.MethodPost},
	"/api/orders":   {http.MethodGet, http.MethodPost},
}

// resourcePattern recognises id-suffixed resource paths. The /api prefix is
// optional, matching the historical API surface. IDs are 8-24 lowercase
// alphanumerics; anything else falls through to the collection table and
// from there to 404/405 handling.
var resourcePattern = regexp.MustCompile(`^(?:/api)?/(users|products|orders)/([0-9a-z]{8,24})$`)

// routeKind classifies what shape of route a path resolved to.
type routeKind int

const (
	// routeUnmatched means the path is none of the known shapes; whether it
	// is a 404 is decided against the collection table.
	routeUnmatched routeKind = iota

	// routeStaticAsset is any GET outside /api; it bypasses every gate.
	routeStaticAsset

	// routeCollection is an exact member of the allowedMethods table.
	routeCollection

	// routeSingleResource is an id-suffixed users/products/orders path.
	routeSingleResource
)

// routeMatch is the classification result for one request path.
type routeMatch struct {
	kind routeKind

	// collection is the resource collection name ("users", "products",
	// "orders") for single-resource matches.
	collection string

	// id is the resource identifier for single-resource matches.
	id string

	// assetPath is the request path to serve for static asset matches, with
	// "/" already mapped to "/index.html".
	assetPath string
}

// matchRoute classifies a request into one of the route shapes. It is a pure
// function of method and path; allowed-method and authentication decisions
// happen later, in the dispatcher's gate chain.
//
// The static-asset check runs first and takes precedence over everything:
// any GET outside /api is served as a file and never reaches the API gates.
func matchRoute(method, path string) routeMatch {
	if method == http.MethodGet && !strings.HasPrefix(path, "/api") {
		assetPath := path
		if assetPath == "/" || assetPath == "" {
			assetPath = "/index.html"
		}
		return routeMatch{kind: routeStaticAsset, assetPath: assetPath}
	}

	if parts := resourcePattern.FindStringSubmatch(path); parts != nil {
		return routeMatch{kind: routeSingleResource, collection: parts[1], id: parts[2]}
	}

	if _, ok := allowedMethods[path]; ok {
		return routeMatch{kind: routeCollection}
	}

	return routeMatch{kind: routeUnmatched}
}

// methodAllowed reports whether the collection route at path accepts method.
func methodAllowed(path, method string) bool {
	for _, m := range allowedMethods[path] {
		if m == method {
			return true
		}
	}

	return false
}
