package scrollflag

import (
	"math"

	"github.com/dmaze/skiff/internal/renderer/core"
)

// The geometry methods are plain queries with no caching: each call reads
// the scrollbar through the editor so the mapping always reflects the
// live document, even across concurrent edits between repaints.

// sliderVisible reports whether the vertical scrollbar is shown.
func (a *Area) sliderVisible() bool {
	return a.editor.ScrollBar().Visible()
}

// offset returns the vertical offset of the scrollbar track relative to
// the top of the editor.
func (a *Area) offset() float64 {
	return a.editor.ScrollBar().TrackOffset()
}

// trackHeight returns the pixel span in which the slider handle may move.
func (a *Area) trackHeight() float64 {
	return a.editor.ScrollBar().TrackHeight()
}

// valueSpan returns the scrollbar's value span: max - min + pageStep.
func (a *Area) valueSpan() float64 {
	sb := a.editor.ScrollBar()
	return float64(sb.Maximum() - sb.Minimum() + sb.PageStep())
}

// ScaleFactor returns the ratio between the track's pixel span and the
// scrollbar's value span. A zero value span yields 0: no scaling is
// possible for a single-page document.
func (a *Area) ScaleFactor() float64 {
	span := a.valueSpan()
	if span <= 0 {
		return 0
	}
	return a.trackHeight() / span
}

// ValueToPosition converts a scrollbar value to a pixel position on the
// strip. With no usable scale the mapping collapses to the track offset.
func (a *Area) ValueToPosition(v float64) float64 {
	scale := a.ScaleFactor()
	if scale == 0 {
		return a.offset()
	}
	sb := a.editor.ScrollBar()
	return (v-float64(sb.Minimum()))*scale + a.offset()
}

// PositionToValue converts a pixel position back to a scrollbar value,
// clamped to at least the scrollbar minimum.
func (a *Area) PositionToValue(y float64) float64 {
	sb := a.editor.ScrollBar()
	scale := a.ScaleFactor()
	if scale == 0 {
		return float64(sb.Minimum())
	}
	return float64(sb.Minimum()) + math.Max(0, (y-a.offset())/scale)
}

// FlagRect returns the mark rectangle for a line.
//
// Scaled mode (scrollbar visible): the mark is centered on the mapped
// position of line+0.5; the half-line shift aligns the mark with the
// vertical center of its text block before scaling.
//
// Unscaled mode (scrollbar hidden, whole document on screen): the mark is
// centered on the middle of the line's rendered block, no scaling.
func (a *Area) FlagRect(line int) core.RectF {
	x := float64(a.cfg.FlagInsetX) / 2
	w := float64(a.cfg.Width - a.cfg.FlagInsetX)
	h := float64(a.cfg.FlagHeight)

	if a.sliderVisible() {
		pos := a.ValueToPosition(float64(line) + 0.5)
		return core.NewRectF(x, pos-h/2, w, h)
	}

	top, height := a.editor.BlockBounds(line)
	middle := top + height/2
	return core.NewRectF(x, middle-h/2, w, h)
}

// IndicatorRect returns the viewport indicator rectangle for a pointer at
// cursorY. The indicator's height covers one page-step of document; its
// position follows the pointer, clamped to the track. Reports false when
// the value span is zero and no indicator can be sized.
func (a *Area) IndicatorRect(cursorY float64) (core.RectF, bool) {
	if a.ScaleFactor() == 0 {
		return core.RectF{}, false
	}

	sb := a.editor.ScrollBar()
	height := a.ValueToPosition(float64(sb.PageStep()))

	minY := a.offset()
	maxY := a.trackHeight() + a.offset() - height
	y := math.Max(minY, math.Min(maxY, cursorY-height/2))

	return core.NewRectF(1, y, float64(a.cfg.Width-2), height), true
}
