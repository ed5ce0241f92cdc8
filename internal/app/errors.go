package app

import "errors"

var (
	// ErrQuit signals a normal user-requested exit from the event loop.
	ErrQuit = errors.New("quit requested")

	// ErrNoBackend is returned when Run is called before SetBackend.
	ErrNoBackend = errors.New("no backend configured")

	// ErrAlreadyRunning is returned when Run is called twice.
	ErrAlreadyRunning = errors.New("application already running")
)
