// Package event provides the callback wiring between the editor, the
// overview strip, and the console shell.
//
// Collaborators register handlers for exact topics and publishers deliver
// payload structs synchronously on the caller's goroutine, in registration
// order. The documented payload types live in events.go.
package event
