package server

// Server is the lifecycle of the dashboard listener.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then drains
	// in-flight requests and returns.
	RunServer()

	// Shutdown stops accepting connections and waits for active requests up
	// to the shutdown timeout.
	Shutdown()
}
