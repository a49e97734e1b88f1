// Package http implements the HTTP transport layer of the webshop server.
//
// Routing is deliberately hand-rolled: a single dispatcher classifies each
// request path (static asset, collection endpoint, or id-suffixed single
// resource) and then walks a fixed chain of gates (authentication,
// authorization, content negotiation, method checks) before any controller
// runs. The order of those gates is part of the API contract and is kept in
// one place instead of being spread over per-route middleware stacks. The
// surrounding chi router only hosts cross-cutting middleware (trace IDs,
// request logging, panic recovery) around the dispatcher.
package http
