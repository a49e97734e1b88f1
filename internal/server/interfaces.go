package server

// Server runs a transport until a stop signal arrives and then shuts it down
// gracefully.
type Server interface {
	RunServer()
	Shutdown()
}
