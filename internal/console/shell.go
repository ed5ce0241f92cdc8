package console

import (
	"sync"

	"github.com/dmaze/skiff/internal/config"
	"github.com/dmaze/skiff/internal/event"
)

// Shell is the console widget's adapter to a kernel client.
type Shell struct {
	mu     sync.RWMutex
	client Client

	cfg         config.Console
	confirm     Confirmer
	bus         *event.Bus
	version     string
	extraBanner []string
}

// Options configures a new Shell.
type Options struct {
	// Config holds the console options.
	Config config.Console

	// Confirm handles the reset-namespace prompt. A nil Confirmer
	// declines every prompt.
	Confirm Confirmer

	// Bus receives focus-changed and exit-requested notifications.
	Bus *event.Bus

	// Version is reported in the short banner.
	Version string
}

// NewShell creates a shell with no kernel client bound.
func NewShell(opts Options) *Shell {
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Shell{
		cfg:     opts.Config,
		confirm: opts.Confirm,
		bus:     opts.Bus,
		version: opts.Version,
	}
}

// SetClient binds a kernel client. Only one client is bound at a time;
// re-binding simply overwrites the reference, no explicit unbind exists.
// The shell's exit requests are forwarded to whichever client is bound
// when the request fires.
func (s *Shell) SetClient(c Client) {
	s.mu.Lock()
	s.client = c
	s.mu.Unlock()
}

// Client returns the bound kernel client, or nil.
func (s *Shell) Client() Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

// Execute runs code through the visible prompt.
func (s *Shell) Execute(code string) error {
	c := s.Client()
	if c == nil {
		return ErrNoClient
	}
	return c.Execute(code, false)
}

// SilentExecute runs code without advancing the visible prompt, used for
// out-of-band setup commands.
func (s *Shell) SilentExecute(code string) error {
	c := s.Client()
	if c == nil {
		return ErrNoClient
	}
	return c.Execute(code, true)
}

// ClearConsole sends the clear-screen directive to the kernel.
func (s *Shell) ClearConsole() error {
	return s.Execute("%clear")
}

// ResetNamespace prompts for confirmation and, when accepted, removes
// all user-defined names from the kernel namespace. Declining performs
// no action.
func (s *Shell) ResetNamespace() error {
	if s.confirm == nil || !s.confirm.Confirm(
		"Reset namespace",
		"All user-defined variables will be removed.\nAre you sure you want to reset the namespace?",
	) {
		return nil
	}
	return s.Execute("%reset -f")
}

// WriteToStdin forwards a raw line to the kernel through stdin.
func (s *Shell) WriteToStdin(line string) error {
	c := s.Client()
	if c == nil {
		return ErrNoClient
	}
	return c.Input(line)
}

// RequestExit publishes an exit request and forwards it to the bound
// client.
func (s *Shell) RequestExit() {
	if s.bus != nil {
		s.bus.Publish(event.TopicConsoleExitRequested, event.ExitRequested{})
	}
	if c := s.Client(); c != nil {
		c.Exit()
	}
}

// FocusIn reports that the console gained focus.
func (s *Shell) FocusIn() {
	s.publishFocus(true)
}

// FocusOut reports that the console lost focus.
func (s *Shell) FocusOut() {
	s.publishFocus(false)
}

func (s *Shell) publishFocus(gained bool) {
	if s.bus != nil {
		s.bus.Publish(event.TopicConsoleFocusChanged, event.FocusChanged{Gained: gained})
	}
}
