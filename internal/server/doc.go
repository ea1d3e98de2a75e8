// Package server runs the dashboard HTTP listener.
//
// It owns startup, signal handling and graceful shutdown: SIGINT, SIGTERM
// and SIGQUIT stop accepting connections and let in-flight requests finish
// within the shutdown timeout.
package server
