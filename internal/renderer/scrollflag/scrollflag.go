// Package scrollflag renders the editor's overview strip: a narrow
// vertical panel mapping per-line annotations (diagnostics, todos,
// breakpoints, occurrences, search hits) to short colored marks, plus a
// hover-activated indicator mirroring the visible viewport.
//
// The strip owns no document state. Every paint pulls line annotations
// and scrollbar geometry from the editor, so the overview always matches
// the live document.
package scrollflag

import (
	"sync"

	"github.com/dmaze/skiff/internal/editor"
	"github.com/dmaze/skiff/internal/event"
)

// Config holds the strip's static layout.
type Config struct {
	// Width is the strip width in pixels.
	Width int

	// FlagInsetX is the total horizontal inset of a mark; a mark spans
	// [FlagInsetX/2, Width-FlagInsetX/2].
	FlagInsetX int

	// FlagHeight is the mark height in pixels.
	FlagHeight int
}

// DefaultConfig returns the default layout.
func DefaultConfig() Config {
	return Config{
		Width:      12,
		FlagInsetX: 4,
		FlagHeight: 2,
	}
}

// Area is the overview strip panel.
type Area struct {
	editor editor.Editor
	cfg    Config

	mu      sync.RWMutex
	enabled bool
	hover   bool
	altHeld bool
	cursorY float64

	redraw func()
}

// New creates a strip attached to an editor. The strip starts enabled.
func New(ed editor.Editor, cfg Config) *Area {
	if cfg.Width <= 0 {
		cfg = DefaultConfig()
	}
	return &Area{editor: ed, cfg: cfg, enabled: true}
}

// OnRedraw registers the host callback invoked whenever the strip needs
// repainting.
func (a *Area) OnRedraw(fn func()) {
	a.mu.Lock()
	a.redraw = fn
	a.mu.Unlock()
}

// Bind subscribes the strip to the editor notifications it reacts to.
func (a *Area) Bind(bus *event.Bus) error {
	subs := []struct {
		topic   event.Topic
		handler event.Handler
	}{
		{event.TopicEditorFocusChanged, func(any) { a.requestRedraw() }},
		{event.TopicEditorFlagsChanged, func(any) { a.requestRedraw() }},
		{event.TopicEditorKeyPressed, func(p any) {
			if k, ok := p.(event.KeyChanged); ok {
				a.KeyPressed(k.Alt)
			}
		}},
		{event.TopicEditorKeyReleased, func(p any) {
			if k, ok := p.(event.KeyChanged); ok {
				a.KeyReleased(k.Alt)
			}
		}},
		{event.TopicEditorAltPressed, func(p any) {
			if m, ok := p.(event.PointerMoved); ok {
				a.MousePress(m.Y)
			}
		}},
		{event.TopicEditorAltMoved, func(p any) {
			if m, ok := p.(event.PointerMoved); ok {
				a.MouseMove(m.X, m.Y)
			}
		}},
	}

	for _, s := range subs {
		if _, err := bus.Subscribe(s.topic, s.handler); err != nil {
			return err
		}
	}
	return nil
}

// SizeHint returns the fixed width; height stretches to the surface.
func (a *Area) SizeHint() (width, height int) {
	return a.cfg.Width, 0
}

// SetEnabled toggles strip visibility. No other state changes.
func (a *Area) SetEnabled(enabled bool) {
	a.mu.Lock()
	a.enabled = enabled
	a.mu.Unlock()

	a.requestRedraw()
}

// Enabled reports whether the strip is visible.
func (a *Area) Enabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// Enter marks the pointer as hovering and requests a redraw so the
// viewport indicator appears.
func (a *Area) Enter() {
	a.mu.Lock()
	a.hover = true
	a.mu.Unlock()

	a.requestRedraw()
}

// Leave clears the hover state and requests a redraw.
func (a *Area) Leave() {
	a.mu.Lock()
	a.hover = false
	a.mu.Unlock()

	a.requestRedraw()
}

// MouseMove tracks the pointer so the indicator follows it.
func (a *Area) MouseMove(_, y float64) {
	a.mu.Lock()
	a.cursorY = y
	a.mu.Unlock()

	a.requestRedraw()
}

// MousePress jumps the scrollbar so its page is centered on the clicked
// position.
func (a *Area) MousePress(y float64) {
	sb := a.editor.ScrollBar()
	value := a.PositionToValue(y) - float64(sb.PageStep())/2
	sb.SetValue(roundToInt(value))
}

// KeyPressed shows the indicator while the Alt modifier is held.
func (a *Area) KeyPressed(alt bool) {
	if !alt {
		return
	}
	a.mu.Lock()
	a.altHeld = true
	a.mu.Unlock()

	a.requestRedraw()
}

// KeyReleased hides the indicator when the Alt modifier is released.
func (a *Area) KeyReleased(alt bool) {
	if !alt {
		return
	}
	a.mu.Lock()
	a.altHeld = false
	a.mu.Unlock()

	a.requestRedraw()
}

// Wheel forwards wheel events to the editor.
func (a *Area) Wheel(delta int) {
	a.editor.Wheel(delta)
}

func (a *Area) requestRedraw() {
	a.mu.RLock()
	fn := a.redraw
	a.mu.RUnlock()

	if fn != nil {
		fn()
	}
}

func (a *Area) indicatorArmed() (cursorY float64, armed bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cursorY, a.hover || a.altHeld
}

func roundToInt(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
