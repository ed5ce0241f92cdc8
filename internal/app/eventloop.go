package app

import (
	"github.com/dmaze/skiff/internal/event"
	"github.com/dmaze/skiff/internal/renderer/backend"
)

// Run drives the event loop until the user quits or the backend closes.
// A clean quit returns ErrQuit.
func (a *Application) Run() error {
	a.mu.Lock()
	b := a.backend
	a.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}
	if a.running.Swap(true) {
		return ErrAlreadyRunning
	}
	defer a.running.Store(false)

	// Terminals do not report key releases, so Alt transitions are
	// derived from modifier flags on successive events.
	altHeld := false

	for {
		if a.dirty.Swap(false) {
			a.surface.Render()
		}

		ev := b.PollEvent()
		if ev == nil {
			return ErrQuit
		}

		switch ev := ev.(type) {
		case backend.ResizeEvent:
			a.surface.Resize(ev.Width, ev.Height)
			a.dirty.Store(true)

		case backend.KeyEvent:
			a.syncAlt(&altHeld, ev.Alt)
			if err := a.handleKey(ev); err != nil {
				return err
			}

		case backend.MouseEvent:
			a.syncAlt(&altHeld, ev.Alt)
			a.handleMouse(ev)

		case backend.InterruptEvent:
			// Wake-up only; the redraw check at loop top does the work.
		}

		if a.quitting.Load() {
			return ErrQuit
		}
	}
}

func (a *Application) handleKey(ev backend.KeyEvent) error {
	switch ev.Key {
	case backend.KeyCtrlQ, backend.KeyEscape:
		return ErrQuit
	case backend.KeyCtrlL:
		if err := a.shell.ClearConsole(); err != nil {
			a.log.Warn("clear console: %v", err)
		}
	case backend.KeyCtrlR:
		if err := a.shell.ResetNamespace(); err != nil {
			a.log.Warn("reset namespace: %v", err)
		}
	case backend.KeyCtrlT:
		a.strip.SetEnabled(!a.strip.Enabled())
	}
	return nil
}

// handleMouse routes Alt-modified pointer events to the strip through
// the bus; plain events go through surface hit testing.
func (a *Application) handleMouse(ev backend.MouseEvent) {
	if ev.Alt && ev.WheelDelta == 0 {
		pos := event.PointerMoved{X: float64(ev.X), Y: float64(ev.Y)}
		if ev.Primary {
			a.bus.Publish(event.TopicEditorAltPressed, pos)
		} else {
			a.bus.Publish(event.TopicEditorAltMoved, pos)
		}
		a.dirty.Store(true)
		return
	}

	if a.surface.DispatchMouse(ev) {
		a.dirty.Store(true)
	}
}

// syncAlt publishes Alt press and release transitions derived from the
// modifier state carried on input events.
func (a *Application) syncAlt(held *bool, alt bool) {
	if alt == *held {
		return
	}
	*held = alt

	change := event.KeyChanged{Alt: true}
	if alt {
		a.bus.Publish(event.TopicEditorKeyPressed, change)
	} else {
		a.bus.Publish(event.TopicEditorKeyReleased, change)
	}
}
