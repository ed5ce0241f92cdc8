// Package kernel runs an interactive interpreter as a child process and
// exposes it as a console client. Code is fed through stdin; stdout and
// stderr are merged and delivered line by line through a callback.
package kernel

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// exitGrace is how long Exit waits after SIGTERM before killing.
const exitGrace = 2 * time.Second

// Session is a running kernel process.
type Session struct {
	id  string
	cmd *exec.Cmd

	stdin  *os.File
	mu     sync.Mutex
	done   chan struct{}
	closed atomic.Bool
	exit   atomic.Int32
	onLine func(line string)
	onExit func(code int)
}

// Options configures a kernel session.
type Options struct {
	// Command is the interpreter executable.
	Command string

	// Args are passed to the interpreter.
	Args []string

	// Env holds additional environment variables in KEY=VALUE form.
	Env []string

	// OnOutput is called for every merged stdout/stderr line. Called
	// from the session's read goroutine.
	OnOutput func(line string)

	// OnExit is called once when the process exits, with its exit code.
	OnExit func(code int)
}

// Start launches the kernel process.
func Start(opts Options) (*Session, error) {
	if opts.Command == "" {
		return nil, ErrNoCommand
	}
	if _, err := exec.LookPath(opts.Command); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, opts.Command)
	}

	cmd := exec.Command(opts.Command, opts.Args...)
	cmd.Env = append(os.Environ(), opts.Env...)

	inR, inW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		inR.Close()
		inW.Close()
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	cmd.Stdin = inR
	cmd.Stdout = outW
	cmd.Stderr = outW

	if err := cmd.Start(); err != nil {
		inR.Close()
		inW.Close()
		outR.Close()
		outW.Close()
		return nil, fmt.Errorf("start kernel: %w", err)
	}

	// Child holds its own copies of the pipe ends.
	inR.Close()
	outW.Close()

	s := &Session{
		id:     uuid.New().String(),
		cmd:    cmd,
		stdin:  inW,
		done:   make(chan struct{}),
		onLine: opts.OnOutput,
		onExit: opts.OnExit,
	}
	s.exit.Store(-1)

	go s.readLoop(outR)

	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// PID returns the kernel process ID, or -1.
func (s *Session) PID() int {
	if s.cmd.Process == nil {
		return -1
	}
	return s.cmd.Process.Pid
}

// Execute submits code to the kernel. Non-silent executions echo the
// submitted code through the output callback so the host can render the
// prompt line; silent ones do not.
func (s *Session) Execute(code string, silent bool) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	if !silent && s.onLine != nil {
		s.onLine(code)
	}
	return s.writeLine(code)
}

// Input forwards a raw line to the kernel's stdin, used to answer
// interactive input requests from running code.
func (s *Session) Input(line string) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	return s.writeLine(line)
}

func (s *Session) writeLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.stdin.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write to kernel: %w", err)
	}
	return nil
}

// Exit shuts the session down: closes stdin, sends SIGTERM, and kills
// the process if it has not exited within the grace period.
func (s *Session) Exit() {
	if s.closed.Swap(true) {
		return
	}

	s.mu.Lock()
	s.stdin.Close()
	s.mu.Unlock()

	if s.cmd.Process != nil {
		s.cmd.Process.Signal(syscall.SIGTERM)
	}

	select {
	case <-s.done:
	case <-time.After(exitGrace):
		if s.cmd.Process != nil {
			s.cmd.Process.Kill()
		}
		<-s.done
	}
}

// Done returns a channel closed when the kernel process has exited.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// ExitCode returns the process exit code, or -1 while it is running.
func (s *Session) ExitCode() int {
	return int(s.exit.Load())
}

// IsRunning reports whether the session is still usable.
func (s *Session) IsRunning() bool {
	return !s.closed.Load()
}

func (s *Session) readLoop(out *os.File) {
	defer close(s.done)

	scanner := bufio.NewScanner(out)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if s.onLine != nil {
			s.onLine(scanner.Text())
		}
	}
	out.Close()

	s.cmd.Wait()
	if state := s.cmd.ProcessState; state != nil {
		s.exit.Store(int32(state.ExitCode()))
	}
	s.closed.Store(true)

	if s.onExit != nil {
		s.onExit(s.ExitCode())
	}
}
