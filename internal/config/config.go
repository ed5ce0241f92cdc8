// Package config holds the application configuration: typed section
// structs, a TOML loader, and a file watcher for live reload.
//
// Components receive the section they need at construction. There is no
// global configuration object.
package config

// Config is a full configuration snapshot. Mutating a snapshot does not
// affect other holders; reload produces a fresh snapshot.
type Config struct {
	LogLevel   string     `toml:"log_level"`
	Console    Console    `toml:"console"`
	ScrollFlag ScrollFlag `toml:"scrollflag"`
	Kernel     Kernel     `toml:"kernel"`
	Theme      string     `toml:"theme"`
}

// Console configures the console shell adapter.
type Console struct {
	// ShowBanner selects the long multi-line banner; when false a
	// one-line version banner is used.
	ShowBanner bool `toml:"show_banner"`

	// LightColor keeps the light color scheme; when false the console
	// switches to the dark scheme.
	LightColor bool `toml:"light_color"`

	// Pylab enables plotting support in the kernel namespace.
	Pylab bool `toml:"pylab"`

	// PylabAutoload populates the namespace at startup when Pylab is
	// enabled.
	PylabAutoload bool `toml:"pylab_autoload"`

	// SymbolicMath loads symbolic math setup at startup.
	SymbolicMath bool `toml:"symbolic_math"`

	// StartupScript is an optional Lua script run when a kernel client
	// is bound.
	StartupScript string `toml:"startup_script"`
}

// ScrollFlag configures the overview strip.
type ScrollFlag struct {
	// Enabled shows the strip.
	Enabled bool `toml:"enabled"`

	// FlagHeight overrides the mark height in pixels (0 keeps the
	// panel default).
	FlagHeight int `toml:"flag_height"`
}

// Kernel configures the execution backend process.
type Kernel struct {
	// Command is the kernel executable.
	Command string `toml:"command"`

	// Args are extra arguments for the kernel command.
	Args []string `toml:"args"`

	// Env are extra environment variables, KEY=VALUE.
	Env []string `toml:"env"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Console: Console{
			ShowBanner:    true,
			LightColor:    true,
			Pylab:         true,
			PylabAutoload: true,
			SymbolicMath:  true,
		},
		ScrollFlag: ScrollFlag{
			Enabled: true,
		},
		Kernel: Kernel{
			Command: "python3",
			Args:    []string{"-i", "-q"},
		},
	}
}
