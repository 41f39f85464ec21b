package client

import "errors"

var (
	// ErrUnknownCommand is returned for a command name that is not supported.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a command is missing required arguments.
	ErrUsage = errors.New("invalid usage")
)
