package kernel

import "errors"

var (
	// ErrNoCommand is returned when no interpreter command is configured.
	ErrNoCommand = errors.New("kernel: no command configured")

	// ErrCommandNotFound is returned when the interpreter executable is
	// not on PATH.
	ErrCommandNotFound = errors.New("kernel: command not found")

	// ErrSessionClosed is returned when writing to an exited session.
	ErrSessionClosed = errors.New("kernel: session closed")
)
