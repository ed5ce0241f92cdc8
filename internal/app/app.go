// Package app wires the configuration, editor model, overview strip,
// console shell, and kernel session into a running application.
package app

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmaze/skiff/internal/config"
	"github.com/dmaze/skiff/internal/console"
	"github.com/dmaze/skiff/internal/console/script"
	"github.com/dmaze/skiff/internal/editor"
	"github.com/dmaze/skiff/internal/event"
	"github.com/dmaze/skiff/internal/kernel"
	"github.com/dmaze/skiff/internal/renderer"
	"github.com/dmaze/skiff/internal/renderer/backend"
	"github.com/dmaze/skiff/internal/renderer/scrollflag"
)

// Options configures a new Application.
type Options struct {
	// ConfigPath is the configuration file. Empty uses built-in
	// defaults and disables live reload.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// Version is reported in the console banner.
	Version string

	// Confirm handles destructive-action prompts. Nil declines all.
	Confirm console.Confirmer
}

// Application owns the wired components and the event loop.
type Application struct {
	log *Logger
	bus *event.Bus

	mu      sync.Mutex
	cfg     config.Config
	model   *editor.Model
	strip   *scrollflag.Area
	shell   *console.Shell
	session *kernel.Session
	surface *renderer.Surface
	backend backend.Backend
	watcher *config.Watcher

	running  atomic.Bool
	quitting atomic.Bool
	dirty    atomic.Bool

	shutdownOnce sync.Once
}

// New builds an application from configuration. The backend is attached
// separately with SetBackend.
func New(opts Options) (*Application, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	level := cfg.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logCfg := DefaultLoggerConfig()
	logCfg.Level = ParseLogLevel(level)
	log := NewLogger(logCfg)

	a := &Application{
		log: log,
		bus: event.NewBus(),
		cfg: cfg,
	}

	a.model = editor.NewModel(editor.ModelOptions{
		Palette: a.loadPalette(cfg.Theme),
		OnFlagsChanged: func() {
			a.bus.Publish(event.TopicEditorFlagsChanged, event.FlagsChanged{})
		},
	})

	stripCfg := scrollflag.DefaultConfig()
	if cfg.ScrollFlag.FlagHeight > 0 {
		stripCfg.FlagHeight = cfg.ScrollFlag.FlagHeight
	}
	a.strip = scrollflag.New(a.model, stripCfg)
	a.strip.SetEnabled(cfg.ScrollFlag.Enabled)
	a.strip.OnRedraw(func() {
		a.bus.Publish(event.TopicRedrawNeeded, event.RedrawNeeded{Source: "scrollflag"})
	})
	if err := a.strip.Bind(a.bus); err != nil {
		return nil, fmt.Errorf("bind overview strip: %w", err)
	}

	if _, err := a.bus.Subscribe(event.TopicRedrawNeeded, func(any) {
		a.dirty.Store(true)
	}); err != nil {
		return nil, err
	}
	if _, err := a.bus.Subscribe(event.TopicConsoleExitRequested, func(any) {
		a.quitting.Store(true)
	}); err != nil {
		return nil, err
	}

	a.shell = console.NewShell(console.Options{
		Config:  cfg.Console,
		Confirm: opts.Confirm,
		Bus:     a.bus,
		Version: opts.Version,
	})

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath, a.applyConfig)
		if err != nil {
			log.Warn("config watch disabled: %v", err)
		} else {
			a.watcher = w
		}
	}

	return a, nil
}

// loadPalette resolves the configured theme, falling back to the default
// palette on any error.
func (a *Application) loadPalette(path string) editor.Palette {
	if path == "" {
		return editor.DefaultPalette()
	}
	theme, err := editor.LoadTheme(path)
	if err != nil {
		a.log.Warn("theme unavailable: %v", err)
		return editor.DefaultPalette()
	}
	p, err := theme.Palette()
	if err != nil {
		a.log.Warn("theme invalid: %v", err)
		return editor.DefaultPalette()
	}
	return p
}

// applyConfig is the live-reload callback. Layout options need a restart;
// everything else takes effect immediately.
func (a *Application) applyConfig(cfg config.Config) {
	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()

	a.log.SetLevel(ParseLogLevel(cfg.LogLevel))
	a.strip.SetEnabled(cfg.ScrollFlag.Enabled)
	a.model.SetPalette(a.loadPalette(cfg.Theme))
	a.log.Info("configuration reloaded")
}

// Config returns the current configuration snapshot.
func (a *Application) Config() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// Bus returns the application event bus.
func (a *Application) Bus() *event.Bus {
	return a.bus
}

// Model returns the editor model.
func (a *Application) Model() *editor.Model {
	return a.model
}

// Shell returns the console shell.
func (a *Application) Shell() *console.Shell {
	return a.shell
}

// Strip returns the overview strip panel.
func (a *Application) Strip() *scrollflag.Area {
	return a.strip
}

// SetBackend attaches the display backend and builds the surface.
func (a *Application) SetBackend(b backend.Backend) error {
	if err := b.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}

	surface := renderer.NewSurface(b)
	surface.AddPanel(a.strip)
	surface.Resize(b.Size())

	a.mu.Lock()
	a.backend = b
	a.surface = surface
	a.mu.Unlock()

	a.dirty.Store(true)
	return nil
}

// StartKernel launches the configured kernel process, binds it to the
// shell, and runs the startup script.
func (a *Application) StartKernel() error {
	cfg := a.Config()

	klog := a.log.WithComponent("kernel")
	session, err := kernel.Start(kernel.Options{
		Command:  cfg.Kernel.Command,
		Args:     cfg.Kernel.Args,
		Env:      cfg.Kernel.Env,
		OnOutput: func(line string) { klog.Debug("%s", line) },
		OnExit:   func(code int) { klog.Info("kernel exited with code %d", code) },
	})
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.session = session
	a.mu.Unlock()
	a.shell.SetClient(session)
	klog.Info("kernel started, session %s pid %d", session.ID(), session.PID())

	if err := a.runStartupScript(cfg.Console.StartupScript); err != nil {
		a.log.Warn("startup script: %v", err)
	}

	a.log.Info("%s", a.shell.Banner())
	return nil
}

func (a *Application) runStartupScript(path string) error {
	if path == "" {
		return nil
	}
	hooks, err := script.NewRunner().Run(path)
	if err != nil {
		return err
	}

	a.shell.AddBannerLines(hooks.Banner...)
	for _, code := range hooks.Silent {
		if err := a.shell.SilentExecute(code); err != nil {
			return fmt.Errorf("silent execute %q: %w", code, err)
		}
	}
	return nil
}

// Shutdown stops the kernel, the config watcher, and the backend. Safe
// to call more than once.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		a.quitting.Store(true)

		a.mu.Lock()
		watcher := a.watcher
		session := a.session
		b := a.backend
		a.mu.Unlock()

		if watcher != nil {
			watcher.Close()
		}
		if session != nil {
			session.Exit()
		}
		if b != nil {
			b.Shutdown()
		}
	})
}
