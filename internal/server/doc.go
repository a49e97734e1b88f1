// Package server runs the application's HTTP transport.
//
// It owns the http.Server lifecycle: startup, OS signal handling, and
// graceful shutdown with a configurable drain deadline.
package server
