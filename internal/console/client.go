// Package console bridges an interactive console widget to an external
// kernel client. The shell forwards user intent (execute, reset, clear,
// raw stdin) one-directionally to the client; results come back through
// the client's own output channel, outside this package.
package console

// Client is the kernel client contract the shell drives.
type Client interface {
	// Execute runs code in the kernel. Silent executions do not advance
	// the visible prompt or echo output.
	Execute(code string, silent bool) error

	// Input forwards a raw line to the kernel's standard input, used
	// for interactive input requests from running code.
	Input(line string) error

	// Exit asks the client to shut its session down.
	Exit()
}

// Confirmer asks the user a yes/no question. The host supplies a dialog
// implementation; tests supply a canned answer.
type Confirmer interface {
	Confirm(title, message string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(title, message string) bool

// Confirm calls the wrapped function.
func (f ConfirmerFunc) Confirm(title, message string) bool {
	return f(title, message)
}
