package editor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmaze/skiff/internal/renderer/core"
)

// Theme is the on-disk color theme for editor side areas. Colors are hex
// strings; empty fields fall back to the default palette.
type Theme struct {
	Name         string `yaml:"name"`
	SideAreas    string `yaml:"side_areas"`
	Warning      string `yaml:"warning"`
	Error        string `yaml:"error"`
	Todo         string `yaml:"todo"`
	Breakpoint   string `yaml:"breakpoint"`
	Occurrence   string `yaml:"occurrence"`
	FoundResults string `yaml:"found_results"`
}

// DefaultPalette returns the built-in light palette.
func DefaultPalette() Palette {
	return Palette{
		SideAreas:    core.Color{R: 239, G: 239, B: 239},
		Warning:      core.Color{R: 255, G: 170, B: 0},
		Error:        core.Color{R: 255, G: 80, B: 80},
		Todo:         core.Color{R: 70, G: 160, B: 255},
		Breakpoint:   core.Color{R: 160, G: 0, B: 0},
		Occurrence:   core.Color{R: 255, G: 255, B: 153},
		FoundResults: core.Color{R: 138, G: 226, B: 52},
	}
}

// LoadTheme reads a theme file from disk.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme %s: %w", path, err)
	}

	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parsing theme %s: %w", path, err)
	}
	return t, nil
}

// Palette resolves the theme against the default palette. Invalid hex
// values are reported; empty fields keep the default.
func (t Theme) Palette() (Palette, error) {
	p := DefaultPalette()

	fields := []struct {
		hex string
		dst *core.Color
	}{
		{t.SideAreas, &p.SideAreas},
		{t.Warning, &p.Warning},
		{t.Error, &p.Error},
		{t.Todo, &p.Todo},
		{t.Breakpoint, &p.Breakpoint},
		{t.Occurrence, &p.Occurrence},
		{t.FoundResults, &p.FoundResults},
	}

	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := core.ColorFromHex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("theme %s: %w", t.Name, err)
		}
		*f.dst = c
	}

	return p, nil
}
