package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dmaze/skiff/internal/renderer/core"
)

func newSimTerminal(t *testing.T, w, h int) *Terminal {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(term.Shutdown)
	return term
}

func TestPainterAtOffsetsOrigin(t *testing.T) {
	term := newSimTerminal(t, 40, 20)
	sim := term.screen.(tcell.SimulationScreen)

	p := term.PainterAt(30, 0)
	p.FillRect(core.NewRectF(0, 5, 2, 1), core.Color{R: 255})
	term.Show()

	_, _, style, _ := sim.GetContent(30, 5)
	_, bg, _ := style.Decompose()
	if bg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("cell (30,5) background = %v", bg)
	}

	// Outside the filled rect stays untouched.
	_, _, style, _ = sim.GetContent(29, 5)
	_, bg, _ = style.Decompose()
	if bg == tcell.NewRGBColor(255, 0, 0) {
		t.Error("cell (29,5) should not be painted")
	}
}

func TestCellBoundsMinimumOneCell(t *testing.T) {
	term := newSimTerminal(t, 40, 20)

	p := term.PainterAt(0, 0).(*cellPainter)
	x0, y0, x1, y1 := p.cellBounds(core.NewRectF(2, 10.2, 8, 0.4))

	if x1-x0 != 8 {
		t.Errorf("width = %d, want 8", x1-x0)
	}
	if y1-y0 != 1 {
		t.Errorf("height = %d, want at least one cell", y1-y0)
	}
	if y0 != 10 {
		t.Errorf("y0 = %d, want 10", y0)
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want KeyEvent
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), KeyEvent{Key: KeyRune, Rune: 'a'}},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), KeyEvent{Key: KeyRune, Rune: 'x', Alt: true}},
		{tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), KeyEvent{Key: KeyCtrlR}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyEvent{Key: KeyEscape}},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), KeyEvent{Key: KeyOther}},
	}

	for _, tt := range tests {
		if got := convertKey(tt.ev); got != tt.want {
			t.Errorf("convertKey(%v) = %+v, want %+v", tt.ev.Key(), got, tt.want)
		}
	}
}

func TestConvertMouse(t *testing.T) {
	ev := tcell.NewEventMouse(7, 9, tcell.ButtonPrimary, tcell.ModAlt)
	got := convertMouse(ev)

	want := MouseEvent{X: 7, Y: 9, Primary: true, Alt: true}
	if got != want {
		t.Errorf("convertMouse = %+v, want %+v", got, want)
	}

	wheel := convertMouse(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	if wheel.WheelDelta != 3 {
		t.Errorf("WheelDelta = %d, want 3", wheel.WheelDelta)
	}
}
