// Package renderer composes side panels onto a backend surface.
//
// Panels do not subclass any toolkit widget. They implement the Panel
// contract and a Surface delegates painting and input to them, so the
// same panel runs against the tcell backend in production and a
// recording painter in tests.
package renderer

import (
	"sync"

	"github.com/dmaze/skiff/internal/renderer/backend"
	"github.com/dmaze/skiff/internal/renderer/core"
)

// Panel is the paint and input contract a side panel implements.
type Panel interface {
	// Paint draws the panel into the given bounds. Bounds are in the
	// panel's own coordinates: origin at the panel's top-left.
	Paint(p backend.Painter, bounds core.RectF)

	// SizeHint returns the preferred width and height. A zero height
	// means "stretch to the surface height".
	SizeHint() (width, height int)

	// Pointer handlers. Coordinates are panel-local.
	Enter()
	Leave()
	MouseMove(x, y float64)
	MousePress(y float64)
	Wheel(delta int)

	// SetEnabled toggles panel visibility.
	SetEnabled(enabled bool)
	Enabled() bool
}

type placed struct {
	panel  Panel
	bounds core.RectF // surface coordinates
}

// Surface owns the backend and the panels docked on its right edge.
type Surface struct {
	mu sync.Mutex

	backend backend.Backend
	panels  []placed
	width   int
	height  int

	hovered int // index into panels, -1 when none
}

// NewSurface creates a surface on the given backend.
func NewSurface(b backend.Backend) *Surface {
	return &Surface{backend: b, hovered: -1}
}

// AddPanel docks a panel on the right edge, left of any existing panels.
func (s *Surface) AddPanel(p Panel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.panels = append(s.panels, placed{panel: p})
	s.arrange()
}

// Resize updates the surface size and re-arranges panels.
func (s *Surface) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.width = width
	s.height = height
	s.arrange()
}

// arrange stacks panels against the right edge. Callers hold s.mu.
func (s *Surface) arrange() {
	x := float64(s.width)
	for i := range s.panels {
		w, h := s.panels[i].panel.SizeHint()
		if h <= 0 {
			h = s.height
		}
		x -= float64(w)
		s.panels[i].bounds = core.NewRectF(x, 0, float64(w), float64(h))
	}
}

// ContentWidth returns the width left of the docked panels.
func (s *Surface) ContentWidth() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.width
	for _, pl := range s.panels {
		if pl.panel.Enabled() {
			pw, _ := pl.panel.SizeHint()
			w -= pw
		}
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Render clears the backend, paints every enabled panel, and flushes.
func (s *Surface) Render() {
	s.mu.Lock()
	panels := append([]placed(nil), s.panels...)
	s.mu.Unlock()

	s.backend.Clear()
	for _, pl := range panels {
		if !pl.panel.Enabled() {
			continue
		}
		painter := s.backend.PainterAt(int(pl.bounds.X), int(pl.bounds.Y))
		pl.panel.Paint(painter, core.NewRectF(0, 0, pl.bounds.W, pl.bounds.H))
	}
	s.backend.Show()
}

// DispatchMouse routes a pointer event to the panel under it, emitting
// Enter and Leave transitions as the pointer crosses panel edges.
// It reports whether a panel consumed the event.
func (s *Surface) DispatchMouse(ev backend.MouseEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	x, y := float64(ev.X), float64(ev.Y)

	target := -1
	for i, pl := range s.panels {
		if pl.panel.Enabled() && pl.bounds.Contains(x, y) {
			target = i
			break
		}
	}

	if target != s.hovered {
		if s.hovered >= 0 {
			s.panels[s.hovered].panel.Leave()
		}
		if target >= 0 {
			s.panels[target].panel.Enter()
		}
		s.hovered = target
	}

	if target < 0 {
		return false
	}

	pl := s.panels[target]
	localX := x - pl.bounds.X
	localY := y - pl.bounds.Y

	switch {
	case ev.WheelDelta != 0:
		pl.panel.Wheel(ev.WheelDelta)
	case ev.Primary:
		pl.panel.MousePress(localY)
	default:
		pl.panel.MouseMove(localX, localY)
	}
	return true
}
