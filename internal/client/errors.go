package client

import "errors"

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("invalid usage")
	ErrNotLoggedIn    = errors.New("not logged in: run login or set ADAPTER_TOKEN")
)
