package server

// Server is the lifecycle contract of the store API transport layer.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives or
	// the listener fails.
	RunServer()

	// Shutdown drains in-flight requests and closes the listener.
	Shutdown()
}
