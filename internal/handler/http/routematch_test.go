package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchRoute(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		want   routeMatch
	}{
		{
			name:   "root maps to index.html",
			method: http.MethodGet,
			path:   "/",
			want:   routeMatch{kind: routeStaticAsset, assetPath: "/index.html"},
		},
		{
			name:   "any GET outside /api is a static asset",
			method: http.MethodGet,
			path:   "/css/style.css",
			want:   routeMatch{kind: routeStaticAsset, assetPath: "/css/style.css"},
		},
		{
			name:   "api-prefixed name is not a static asset even outside the routed paths",
			method: http.MethodGet,
			path:   "/apidocs.html",
			want:   routeMatch{kind: routeUnmatched},
		},
		{
			name:   "POST outside /api is not a static asset",
			method: http.MethodPost,
			path:   "/css/style.css",
			want:   routeMatch{kind: routeUnmatched},
		},
		{
			name:   "collection route",
			method: http.MethodGet,
			path:   "/api/products",
			want:   routeMatch{kind: routeCollection},
		},
		{
			name:   "single resource with api prefix",
			method: http.MethodGet,
			path:   "/api/users/6719a1f0c4d2b8a9e3f5d7c1",
			want:   routeMatch{kind: routeSingleResource, collection: "users", id: "6719a1f0c4d2b8a9e3f5d7c1"},
		},
		{
			name:   "single resource without api prefix",
			method: http.MethodDelete,
			path:   "/products/6719a1f0c4d2b8a9e3f5d7c1",
			want:   routeMatch{kind: routeSingleResource, collection: "products", id: "6719a1f0c4d2b8a9e3f5d7c1"},
		},
		{
			name:   "id at the lower length bound",
			method: http.MethodPut,
			path:   "/api/orders/abcd1234",
			want:   routeMatch{kind: routeSingleResource, collection: "orders", id: "abcd1234"},
		},
		{
			name:   "id below the lower length bound",
			method: http.MethodPut,
			path:   "/api/orders/abc1234",
			want:   routeMatch{kind: routeUnmatched},
		},
		{
			name:   "id above the upper length bound",
			method: http.MethodPut,
			path:   "/api/users/6719a1f0c4d2b8a9e3f5d7c1a",
			want:   routeMatch{kind: routeUnmatched},
		},
		{
			name:   "uppercase id does not match",
			method: http.MethodPut,
			path:   "/api/users/6719A1F0C4D2B8A9E3F5D7C1",
			want:   routeMatch{kind: routeUnmatched},
		},
		{
			name:   "unknown collection with id shape",
			method: http.MethodPut,
			path:   "/api/baskets/6719a1f0c4d2b8a9e3f5d7c1",
			want:   routeMatch{kind: routeUnmatched},
		},
		{
			name:   "trailing segment breaks the resource match",
			method: http.MethodPut,
			path:   "/api/users/6719a1f0c4d2b8a9e3f5d7c1/roles",
			want:   routeMatch{kind: routeUnmatched},
		},
		{
			name:   "unknown api path",
			method: http.MethodPost,
			path:   "/api/baskets",
			want:   routeMatch{kind: routeUnmatched},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchRoute(tt.method, tt.path))
		})
	}
}

func TestMethodAllowed(t *testing.T) {
	assert.True(t, methodAllowed("/api/products", http.MethodGet))
	assert.True(t, methodAllowed("/api/products", http.MethodPost))
	assert.False(t, methodAllowed("/api/products", http.MethodDelete))
	assert.True(t, methodAllowed("/api/register", http.MethodPost))
	assert.False(t, methodAllowed("/api/register", http.MethodGet))
	assert.False(t, methodAllowed("/api/users", http.MethodPost))
	assert.False(t, methodAllowed("/api/unknown", http.MethodGet))
}
