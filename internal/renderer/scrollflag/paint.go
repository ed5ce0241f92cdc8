package scrollflag

import (
	"github.com/dmaze/skiff/internal/renderer/backend"
	"github.com/dmaze/skiff/internal/renderer/core"
)

// Viewport indicator colors. Terminal cells have no alpha, so the
// translucent-gray look becomes a light gray brush with a darker pen.
var (
	indicatorPen   = core.Color{R: 128, G: 128, B: 128}
	indicatorBrush = core.Color{R: 192, G: 192, B: 192}
)

// Paint draws the strip. Marks for each category are drawn independently
// in a fixed order (diagnostics, todo, breakpoint, occurrences, search
// hits), so on a line carrying several flags the last category drawn
// wins. The viewport indicator is drawn last, only while the pointer
// hovers the strip or Alt is held, and only when the scrollbar is
// visible.
func (a *Area) Paint(p backend.Painter, bounds core.RectF) {
	if !a.Enabled() {
		return
	}

	pal := a.editor.Palette()
	p.FillRect(bounds, pal.SideAreas)

	for line := 0; line <= a.editor.LineCount(); line++ {
		ann, ok := a.editor.AnnotationsAt(line)
		if !ok || ann.Empty() {
			continue
		}

		if len(ann.Diagnostics) > 0 {
			color := pal.Warning
			for _, d := range ann.Diagnostics {
				if d.Error {
					color = pal.Error
					break
				}
			}
			a.drawFlag(p, line, color)
		}
		if ann.Todo {
			a.drawFlag(p, line, pal.Todo)
		}
		if ann.Breakpoint {
			a.drawFlag(p, line, pal.Breakpoint)
		}
	}

	for _, line := range a.editor.Occurrences() {
		a.drawFlag(p, line, pal.Occurrence)
	}
	for _, line := range a.editor.FoundResults() {
		a.drawFlag(p, line, pal.FoundResults)
	}

	cursorY, armed := a.indicatorArmed()
	if armed && a.sliderVisible() {
		if r, ok := a.IndicatorRect(cursorY); ok {
			p.DrawRect(r, indicatorPen, indicatorBrush)
		}
	}
}

// drawFlag draws one mark with a slightly darker outline.
func (a *Area) drawFlag(p backend.Painter, line int, c core.Color) {
	p.DrawRect(a.FlagRect(line), c.Darker(120), c)
}
