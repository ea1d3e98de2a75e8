package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer without an HTTP
	// handler or listen address.
	errNoServersAreCreated = errors.New("no http server configured")
	errNoServersToRun      = errors.New("no servers to run")
)
