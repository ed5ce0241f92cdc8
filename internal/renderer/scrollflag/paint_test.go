package scrollflag

import (
	"testing"

	"github.com/dmaze/skiff/internal/editor"
	"github.com/dmaze/skiff/internal/event"
	"github.com/dmaze/skiff/internal/renderer/backend"
	"github.com/dmaze/skiff/internal/renderer/core"
)

func paintBounds() core.RectF {
	return core.NewRectF(0, 0, 12, 520)
}

// drawsWithBrush returns the draw ops using the given brush color.
func drawsWithBrush(ops []backend.Op, brush core.Color) []backend.Op {
	var out []backend.Op
	for _, op := range ops {
		if op.Kind == backend.OpDraw && op.Brush == brush {
			out = append(out, op)
		}
	}
	return out
}

func TestPaintDisabledDrawsNothing(t *testing.T) {
	a, m, _ := newTestArea(t)
	m.SetTodo(5, true)
	a.SetEnabled(false)

	buf := backend.NewBuffer()
	a.Paint(buf, paintBounds())

	if got := len(buf.Ops()); got != 0 {
		t.Errorf("disabled strip painted %d ops, want 0", got)
	}
}

func TestPaintFillsBackground(t *testing.T) {
	a, m, _ := newTestArea(t)

	buf := backend.NewBuffer()
	a.Paint(buf, paintBounds())

	ops := buf.Ops()
	if len(ops) == 0 {
		t.Fatal("no ops painted")
	}
	if ops[0].Kind != backend.OpFill || ops[0].Brush != m.Palette().SideAreas {
		t.Errorf("first op = %+v, want background fill", ops[0])
	}
	if ops[0].Rect != paintBounds() {
		t.Errorf("background rect = %+v", ops[0].Rect)
	}
}

func TestPaintErrorOverridesWarning(t *testing.T) {
	a, m, _ := newTestArea(t)
	pal := m.Palette()

	m.SetDiagnostics(10, []editor.Diagnostic{{Message: "style nit"}})
	m.SetDiagnostics(20, []editor.Diagnostic{
		{Message: "style nit"},
		{Message: "undefined name", Error: true},
	})

	buf := backend.NewBuffer()
	a.Paint(buf, paintBounds())
	ops := buf.Ops()

	warn := drawsWithBrush(ops, pal.Warning)
	errs := drawsWithBrush(ops, pal.Error)
	if len(warn) != 1 {
		t.Errorf("warning marks = %d, want 1", len(warn))
	}
	if len(errs) != 1 {
		t.Errorf("error marks = %d, want 1", len(errs))
	}

	if want := a.FlagRect(20); errs[0].Rect != want {
		t.Errorf("error mark rect = %+v, want %+v", errs[0].Rect, want)
	}
}

func TestPaintCategoriesDrawnIndependently(t *testing.T) {
	a, m, _ := newTestArea(t)
	pal := m.Palette()

	// One line carrying every flag: diagnostics, todo, and breakpoint
	// each produce their own mark, drawn in that order, so breakpoint
	// lands on top.
	m.SetDiagnostics(30, []editor.Diagnostic{{Message: "warn"}})
	m.SetTodo(30, true)
	m.SetBreakpoint(30, true)

	buf := backend.NewBuffer()
	a.Paint(buf, paintBounds())
	ops := buf.Ops()

	var lineOps []backend.Op
	want := a.FlagRect(30)
	for _, op := range ops {
		if op.Kind == backend.OpDraw && op.Rect == want {
			lineOps = append(lineOps, op)
		}
	}

	if len(lineOps) != 3 {
		t.Fatalf("marks on line 30 = %d, want 3", len(lineOps))
	}
	if lineOps[0].Brush != pal.Warning {
		t.Errorf("first mark = %+v, want warning", lineOps[0].Brush)
	}
	if lineOps[1].Brush != pal.Todo {
		t.Errorf("second mark = %+v, want todo", lineOps[1].Brush)
	}
	if lineOps[2].Brush != pal.Breakpoint {
		t.Errorf("last mark = %+v, want breakpoint", lineOps[2].Brush)
	}
}

func TestPaintOccurrencesAndFoundResults(t *testing.T) {
	a, m, _ := newTestArea(t)
	pal := m.Palette()

	m.SetOccurrences([]int{5, 15})
	m.SetFoundResults([]int{25})

	buf := backend.NewBuffer()
	a.Paint(buf, paintBounds())
	ops := buf.Ops()

	if got := len(drawsWithBrush(ops, pal.Occurrence)); got != 2 {
		t.Errorf("occurrence marks = %d, want 2", got)
	}
	found := drawsWithBrush(ops, pal.FoundResults)
	if len(found) != 1 {
		t.Fatalf("found-result marks = %d, want 1", len(found))
	}
	if want := a.FlagRect(25); found[0].Rect != want {
		t.Errorf("found-result rect = %+v, want %+v", found[0].Rect, want)
	}
}

func TestPaintMarkPenDarkerThanBrush(t *testing.T) {
	a, m, _ := newTestArea(t)
	pal := m.Palette()
	m.SetTodo(8, true)

	buf := backend.NewBuffer()
	a.Paint(buf, paintBounds())

	marks := drawsWithBrush(buf.Ops(), pal.Todo)
	if len(marks) != 1 {
		t.Fatalf("todo marks = %d, want 1", len(marks))
	}
	if marks[0].Pen != pal.Todo.Darker(120) {
		t.Errorf("mark pen = %+v, want darker todo color", marks[0].Pen)
	}
}

func TestPaintIndicatorRequiresHoverAndVisibleSlider(t *testing.T) {
	a, _, bar := newTestArea(t)

	paint := func() []backend.Op {
		buf := backend.NewBuffer()
		a.Paint(buf, paintBounds())
		return drawsWithBrush(buf.Ops(), indicatorBrush)
	}

	if got := paint(); len(got) != 0 {
		t.Errorf("indicator drawn without hover: %d ops", len(got))
	}

	a.Enter()
	a.MouseMove(3, 250)
	if got := paint(); len(got) != 1 {
		t.Errorf("indicator ops while hovering = %d, want 1", len(got))
	}

	// Hidden scrollbar suppresses the indicator even while hovering.
	bar.SetVisible(false)
	if got := paint(); len(got) != 0 {
		t.Errorf("indicator drawn with hidden scrollbar: %d ops", len(got))
	}
	bar.SetVisible(true)

	a.Leave()
	if got := paint(); len(got) != 0 {
		t.Errorf("indicator drawn after leave: %d ops", len(got))
	}

	// Alt held shows the indicator without hover.
	a.KeyPressed(true)
	if got := paint(); len(got) != 1 {
		t.Errorf("indicator ops with Alt held = %d, want 1", len(got))
	}
	a.KeyReleased(true)
}

func TestPaintIndicatorSkippedOnZeroSpan(t *testing.T) {
	a, _, bar := newTestArea(t)
	bar.SetRange(0, 0, 0)

	a.Enter()
	buf := backend.NewBuffer()
	a.Paint(buf, paintBounds())

	if got := len(drawsWithBrush(buf.Ops(), indicatorBrush)); got != 0 {
		t.Errorf("indicator drawn despite zero value span: %d ops", got)
	}
}

func TestBindReactsToEditorEvents(t *testing.T) {
	a, _, bar := newTestArea(t)
	bus := event.NewBus()
	if err := a.Bind(bus); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	redraws := 0
	a.OnRedraw(func() { redraws++ })

	bus.Publish(event.TopicEditorFlagsChanged, event.FlagsChanged{})
	bus.Publish(event.TopicEditorFocusChanged, event.FocusChanged{Gained: true})
	bus.Publish(event.TopicEditorKeyPressed, event.KeyChanged{Alt: true})

	if redraws != 3 {
		t.Errorf("redraws = %d, want 3", redraws)
	}

	// Alt-click over the editor jumps the scrollbar like a strip click.
	bus.Publish(event.TopicEditorAltPressed, event.PointerMoved{Y: 260})
	if got := bar.Value(); got != 40 {
		t.Errorf("value after alt-click = %d, want 40", got)
	}
}
