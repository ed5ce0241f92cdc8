package config

import "errors"

var (
	// ErrInvalidConfig is returned when a configuration file cannot be
	// parsed.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrWatcherClosed is returned when using a closed watcher.
	ErrWatcherClosed = errors.New("config: watcher closed")
)
