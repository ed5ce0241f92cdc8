package backend

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dmaze/skiff/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a terminal backend on the real screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen creates a terminal backend on a caller-supplied
// screen. Used with tcell's simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init prepares the screen and enables mouse reporting.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.EnablePaste()
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Size returns the screen size in cells.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.screen.Size()
}

// Clear erases the screen.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

// Show flushes pending drawing to the display.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

// Interrupt wakes a blocked PollEvent.
func (t *Terminal) Interrupt() {
	t.screen.PostEvent(tcell.NewEventInterrupt(nil)) //nolint:errcheck
}

// PollEvent blocks for the next input event.
func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if converted := t.convertEvent(ev); converted != nil {
			return converted
		}
	}
}

// PainterAt returns a painter with its origin at the given cell.
func (t *Terminal) PainterAt(x, y int) Painter {
	return &cellPainter{term: t, originX: x, originY: y}
}

func (t *Terminal) convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKey(e)
	case *tcell.EventMouse:
		return convertMouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return ResizeEvent{Width: w, Height: h}
	case *tcell.EventInterrupt:
		return InterruptEvent{}
	default:
		return nil
	}
}

func convertKey(e *tcell.EventKey) KeyEvent {
	alt := e.Modifiers()&tcell.ModAlt != 0

	switch e.Key() {
	case tcell.KeyRune:
		return KeyEvent{Key: KeyRune, Rune: e.Rune(), Alt: alt}
	case tcell.KeyEscape:
		return KeyEvent{Key: KeyEscape, Alt: alt}
	case tcell.KeyEnter:
		return KeyEvent{Key: KeyEnter, Alt: alt}
	case tcell.KeyCtrlL:
		return KeyEvent{Key: KeyCtrlL, Alt: alt}
	case tcell.KeyCtrlQ:
		return KeyEvent{Key: KeyCtrlQ, Alt: alt}
	case tcell.KeyCtrlR:
		return KeyEvent{Key: KeyCtrlR, Alt: alt}
	case tcell.KeyCtrlT:
		return KeyEvent{Key: KeyCtrlT, Alt: alt}
	default:
		return KeyEvent{Key: KeyOther, Alt: alt}
	}
}

func convertMouse(e *tcell.EventMouse) MouseEvent {
	x, y := e.Position()
	buttons := e.Buttons()

	delta := 0
	if buttons&tcell.WheelUp != 0 {
		delta = 3
	} else if buttons&tcell.WheelDown != 0 {
		delta = -3
	}

	return MouseEvent{
		X:          x,
		Y:          y,
		Primary:    buttons&tcell.ButtonPrimary != 0,
		WheelDelta: delta,
		Alt:        e.Modifiers()&tcell.ModAlt != 0,
	}
}

// cellPainter maps fractional pixel rects onto terminal cells.
type cellPainter struct {
	term    *Terminal
	originX int
	originY int
}

// FillRect fills the cells covered by the rectangle.
func (p *cellPainter) FillRect(r core.RectF, c core.Color) {
	p.fill(r, c)
}

// DrawRect fills the rectangle with the brush and, when the rectangle is
// large enough to have an interior, repaints the perimeter with the pen.
// Small rects (the per-line flags) stay brush-colored: terminal cells are
// too coarse for a one-cell outline to read as anything but a darker flag.
func (p *cellPainter) DrawRect(r core.RectF, pen, brush core.Color) {
	x0, y0, x1, y1 := p.cellBounds(r)
	p.fillCells(x0, y0, x1, y1, brush)

	if x1-x0 >= 3 && y1-y0 >= 3 {
		p.fillCells(x0, y0, x1, y0+1, pen)
		p.fillCells(x0, y1-1, x1, y1, pen)
		p.fillCells(x0, y0, x0+1, y1, pen)
		p.fillCells(x1-1, y0, x1, y1, pen)
	}
}

func (p *cellPainter) fill(r core.RectF, c core.Color) {
	x0, y0, x1, y1 := p.cellBounds(r)
	p.fillCells(x0, y0, x1, y1, c)
}

// cellBounds rounds a fractional rect to cell coordinates, keeping at
// least one cell for any rect with positive area.
func (p *cellPainter) cellBounds(r core.RectF) (x0, y0, x1, y1 int) {
	if r.Empty() {
		return 0, 0, 0, 0
	}
	x0 = int(math.Round(r.X))
	y0 = int(math.Round(r.Y))
	x1 = int(math.Round(r.Right()))
	y1 = int(math.Round(r.Bottom()))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0 + p.originX, y0 + p.originY, x1 + p.originX, y1 + p.originY
}

func (p *cellPainter) fillCells(x0, y0, x1, y1 int, c core.Color) {
	p.term.mu.Lock()
	defer p.term.mu.Unlock()

	style := tcell.StyleDefault.Background(convertColor(c))
	width, height := p.term.screen.Size()

	for y := y0; y < y1 && y < height; y++ {
		for x := x0; x < x1 && x < width; x++ {
			if x >= 0 && y >= 0 {
				p.term.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

func convertColor(c core.Color) tcell.Color {
	if c.Default {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
