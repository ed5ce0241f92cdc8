// Package backend provides the display and input surface panels draw on.
// The tcell implementation is the production backend; Buffer records draw
// operations for tests.
package backend

import "github.com/dmaze/skiff/internal/renderer/core"

// Painter is the drawing surface handed to a panel's Paint. Coordinates
// are fractional pixels relative to the panel's own origin; the backend
// rounds to device cells.
type Painter interface {
	// FillRect fills a rectangle with a single color.
	FillRect(r core.RectF, c core.Color)

	// DrawRect draws a rectangle with an outline pen and a fill brush.
	DrawRect(r core.RectF, pen, brush core.Color)
}

// Backend abstracts the host toolkit surface.
type Backend interface {
	// Init prepares the backend for use.
	Init() error

	// Shutdown releases the backend.
	Shutdown()

	// Size returns the surface size in cells.
	Size() (width, height int)

	// Clear erases the surface.
	Clear()

	// Show flushes pending drawing to the display.
	Show()

	// PollEvent blocks for the next input event. Returns nil once the
	// backend shuts down.
	PollEvent() Event

	// PainterAt returns a painter whose origin is at the given cell.
	PainterAt(x, y int) Painter
}

// Event is an input event from the backend.
type Event interface {
	isEvent()
}

// Key identifies non-rune keys.
type Key int

// Keys the application reacts to.
const (
	KeyRune Key = iota
	KeyEscape
	KeyEnter
	KeyCtrlL
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlT
	KeyOther
)

// KeyEvent is a key press.
type KeyEvent struct {
	Key  Key
	Rune rune
	Alt  bool
}

func (KeyEvent) isEvent() {}

// MouseEvent is a pointer press, release, or motion.
type MouseEvent struct {
	X, Y int

	// Primary is true while the primary button is held.
	Primary bool

	// WheelDelta is positive for wheel-up, negative for wheel-down,
	// zero for non-wheel events.
	WheelDelta int

	// Alt is true while the Alt modifier is held.
	Alt bool
}

func (MouseEvent) isEvent() {}

// ResizeEvent reports a new surface size.
type ResizeEvent struct {
	Width, Height int
}

func (ResizeEvent) isEvent() {}

// InterruptEvent wakes the event loop without input.
type InterruptEvent struct{}

func (InterruptEvent) isEvent() {}
