// Package script runs user startup scripts for the console. Scripts are
// Lua files executed in a sandboxed state; they declare what the console
// should do at kernel startup (silent setup code, extra banner lines)
// rather than touching the kernel directly.
package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds a single script run. Startup scripts only build
// hook lists, anything long-running is a bug.
const DefaultTimeout = 5 * time.Second

// ErrScriptFailed wraps Lua errors raised while running a startup script.
var ErrScriptFailed = errors.New("startup script failed")

// Hooks collects what a startup script asked the console to do.
type Hooks struct {
	// Silent holds code snippets to execute in the kernel without
	// advancing the visible prompt, in declaration order.
	Silent []string

	// Banner holds extra lines appended to the long banner.
	Banner []string
}

// Runner executes startup scripts. A fresh sandboxed Lua state is
// created per run, so scripts cannot leak state into each other.
type Runner struct {
	timeout time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout overrides the per-run execution timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// NewRunner creates a script runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the script at path. A missing file is not an error: the
// startup script is optional and its absence yields empty hooks.
func (r *Runner) Run(path string) (Hooks, error) {
	src, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Hooks{}, nil
	}
	if err != nil {
		return Hooks{}, fmt.Errorf("read startup script: %w", err)
	}
	return r.RunSource(string(src))
}

// RunSource executes script source directly.
func (r *Runner) RunSource(src string) (Hooks, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibraries(L)
	scrubUnsafeGlobals(L)

	var hooks Hooks
	registerConsoleModule(L, &hooks)

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	L.SetContext(ctx)

	if err := L.DoString(src); err != nil {
		return Hooks{}, fmt.Errorf("%w: %v", ErrScriptFailed, err)
	}
	return hooks, nil
}

// openSafeLibraries opens only libraries with no filesystem or process
// reach. io, os, debug and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// scrubUnsafeGlobals removes base-library functions that could load
// arbitrary code from outside the script.
func scrubUnsafeGlobals(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// registerConsoleModule exposes the console table to scripts:
//
//	console.silent("import numpy")
//	console.banner("Loaded profile: science")
func registerConsoleModule(L *lua.LState, hooks *Hooks) {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"silent": func(L *lua.LState) int {
			hooks.Silent = append(hooks.Silent, L.CheckString(1))
			return 0
		},
		"banner": func(L *lua.LState) int {
			hooks.Banner = append(hooks.Banner, L.CheckString(1))
			return 0
		},
	})
	L.SetGlobal("console", mod)
}
