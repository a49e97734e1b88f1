package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Cross-cutting middleware lives on the chi mux;
// everything else (route matching, authentication, authorization, content
// negotiation, method gating) happens inside the dispatcher so the gate
// order stays in one place.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	router.Handle("/*", http.HandlerFunc(h.dispatch))

	return router
}
