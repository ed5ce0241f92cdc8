package scrollflag

import (
	"math"
	"testing"

	"github.com/dmaze/skiff/internal/editor"
)

// newTestArea builds a strip over a fresh model with a visible scrollbar
// covering min=0, max=80, pageStep=20 and a 500px track at offset 10.
func newTestArea(t *testing.T) (*Area, *editor.Model, *editor.Bar) {
	t.Helper()

	m := editor.NewModel(editor.ModelOptions{LineCount: 100})
	bar := m.ScrollBar().(*editor.Bar)
	bar.SetRange(0, 80, 20)
	bar.SetTrack(500, 10)
	bar.SetVisible(true)

	return New(m, DefaultConfig()), m, bar
}

func TestScaleFactor(t *testing.T) {
	a, _, _ := newTestArea(t)

	// Value span = 80 - 0 + 20 = 100, track = 500px.
	if got := a.ScaleFactor(); got != 5.0 {
		t.Errorf("ScaleFactor() = %v, want 5.0", got)
	}
}

func TestFlagRectScaledMode(t *testing.T) {
	a, _, _ := newTestArea(t)

	// Line 50 with the 0.5 center shift: (50.5 - 0) * 5.0 + 10 = 262.5.
	r := a.FlagRect(50)
	if got := r.CenterY(); got != 262.5 {
		t.Errorf("FlagRect(50).CenterY() = %v, want 262.5", got)
	}
	if r.X != 2 || r.W != 8 || r.H != 2 {
		t.Errorf("FlagRect(50) = %+v, want x=2 w=8 h=2", r)
	}
}

func TestValuePositionRoundTrip(t *testing.T) {
	a, _, bar := newTestArea(t)

	for v := bar.Minimum(); v <= bar.Maximum(); v += 7 {
		got := a.PositionToValue(a.ValueToPosition(float64(v)))
		if math.Abs(got-float64(v)) > 1e-9 {
			t.Errorf("round trip for %d = %v", v, got)
		}
	}
}

func TestPositionToValueClampsToMinimum(t *testing.T) {
	a, _, bar := newTestArea(t)
	bar.SetRange(5, 80, 20)

	// Positions above the track map to the minimum, never below.
	if got := a.PositionToValue(0); got != 5 {
		t.Errorf("PositionToValue(0) = %v, want 5", got)
	}
}

func TestFlagRectUnscaledMode(t *testing.T) {
	m := editor.NewModel(editor.ModelOptions{LineCount: 10, LineHeight: 4})
	m.SetContentOffset(2)
	bar := m.ScrollBar().(*editor.Bar)
	bar.SetVisible(false)
	a := New(m, DefaultConfig())

	// Block of line 3: top = 3*4+2 = 14, height 4, middle 16.
	r := a.FlagRect(3)
	if got := r.CenterY(); got != 16 {
		t.Errorf("FlagRect(3).CenterY() = %v, want 16", got)
	}

	// The unscaled mapping ignores the scrollbar range entirely.
	bar.SetRange(0, 9999, 5)
	if got := a.FlagRect(3).CenterY(); got != 16 {
		t.Errorf("CenterY after range change = %v, want 16", got)
	}
}

func TestZeroValueSpanGuard(t *testing.T) {
	a, _, bar := newTestArea(t)
	bar.SetRange(0, 0, 0)

	if got := a.ScaleFactor(); got != 0 {
		t.Errorf("ScaleFactor() = %v, want 0", got)
	}
	if got := a.ValueToPosition(5); got != 10 {
		t.Errorf("ValueToPosition(5) = %v, want track offset 10", got)
	}
	if got := a.PositionToValue(123); got != 0 {
		t.Errorf("PositionToValue(123) = %v, want minimum 0", got)
	}
	if _, ok := a.IndicatorRect(50); ok {
		t.Error("IndicatorRect should not produce a rect with zero span")
	}
}

func TestIndicatorFollowsCursor(t *testing.T) {
	a, _, _ := newTestArea(t)

	// height = ValueToPosition(pageStep) = 20*5 + 10 = 110.
	r, ok := a.IndicatorRect(250)
	if !ok {
		t.Fatal("IndicatorRect returned no rect")
	}
	if r.H != 110 {
		t.Errorf("indicator height = %v, want 110", r.H)
	}
	if r.Y != 195 { // 250 - 110/2
		t.Errorf("indicator y = %v, want 195", r.Y)
	}
	if r.X != 1 || r.W != 10 {
		t.Errorf("indicator rect = %+v, want x=1 w=10", r)
	}
}

func TestIndicatorClamped(t *testing.T) {
	a, _, _ := newTestArea(t)

	// Above the track: clamp to the offset.
	r, _ := a.IndicatorRect(-100)
	if r.Y != 10 {
		t.Errorf("indicator y = %v, want clamp to 10", r.Y)
	}

	// Below the track: clamp to trackHeight + offset - height.
	r, _ = a.IndicatorRect(10000)
	if r.Y != 400 { // 500 + 10 - 110
		t.Errorf("indicator y = %v, want clamp to 400", r.Y)
	}
}

func TestMousePressCentersPage(t *testing.T) {
	a, _, bar := newTestArea(t)

	// y=260: PositionToValue = (260-10)/5 = 50; minus half a page = 40.
	a.MousePress(260)
	if got := bar.Value(); got != 40 {
		t.Errorf("value after click = %d, want 40", got)
	}
}

func TestMousePressClampsToMinimum(t *testing.T) {
	a, _, bar := newTestArea(t)

	a.MousePress(5)
	if got := bar.Value(); got != 0 {
		t.Errorf("value after click above track = %d, want 0", got)
	}
}

func TestSizeHint(t *testing.T) {
	a, _, _ := newTestArea(t)

	w, h := a.SizeHint()
	if w != 12 || h != 0 {
		t.Errorf("SizeHint() = (%d, %d), want (12, 0)", w, h)
	}
}

func TestRedrawRequests(t *testing.T) {
	a, _, _ := newTestArea(t)

	redraws := 0
	a.OnRedraw(func() { redraws++ })

	a.Enter()
	a.MouseMove(3, 40)
	a.Leave()
	a.KeyPressed(true)
	a.KeyReleased(true)
	a.SetEnabled(false)

	if redraws != 6 {
		t.Errorf("expected 6 redraw requests, got %d", redraws)
	}

	// Non-Alt keys are ignored.
	a.KeyPressed(false)
	a.KeyReleased(false)
	if redraws != 6 {
		t.Errorf("non-Alt keys should not request redraws, got %d", redraws)
	}
}

func TestWheelForwardsToEditor(t *testing.T) {
	a, _, bar := newTestArea(t)
	bar.SetValue(40)

	a.Wheel(3)
	if got := bar.Value(); got != 37 {
		t.Errorf("value after wheel = %d, want 37", got)
	}
}
