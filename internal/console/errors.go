package console

import "errors"

var (
	// ErrNoClient is returned when an operation needs a kernel client
	// and none is bound.
	ErrNoClient = errors.New("console: no kernel client bound")
)
