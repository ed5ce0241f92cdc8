package editor

import "sync"

// Bar is a plain scrollbar model implementing ScrollBar. It mirrors the
// value range of a toolkit scrollbar: value moves in [min, max] and one
// page of content corresponds to PageStep values.
type Bar struct {
	mu sync.RWMutex

	min      int
	max      int
	pageStep int
	value    int
	visible  bool

	trackHeight float64
	trackOffset float64
}

// NewBar creates a scrollbar with a zero range, hidden.
func NewBar() *Bar {
	return &Bar{}
}

// Minimum returns the lowest scrollbar value.
func (b *Bar) Minimum() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.min
}

// Maximum returns the highest scrollbar value.
func (b *Bar) Maximum() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.max
}

// PageStep returns the number of values covered by one page.
func (b *Bar) PageStep() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pageStep
}

// Value returns the current scrollbar value.
func (b *Bar) Value() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.value
}

// SetValue moves the scrollbar, clamped to [min, max].
func (b *Bar) SetValue(v int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if v < b.min {
		v = b.min
	}
	if v > b.max {
		v = b.max
	}
	b.value = v
}

// SetRange sets the value range and page step. The current value is
// re-clamped.
func (b *Bar) SetRange(min, max, pageStep int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if max < min {
		max = min
	}
	b.min = min
	b.max = max
	b.pageStep = pageStep
	if b.value < min {
		b.value = min
	}
	if b.value > max {
		b.value = max
	}
}

// Visible reports whether the scrollbar is shown.
func (b *Bar) Visible() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.visible
}

// SetVisible shows or hides the scrollbar.
func (b *Bar) SetVisible(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visible = v
}

// TrackHeight returns the pixel span in which the slider may move.
func (b *Bar) TrackHeight() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.trackHeight
}

// TrackOffset returns the vertical offset of the track.
func (b *Bar) TrackOffset() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.trackOffset
}

// SetTrack sets the track geometry.
func (b *Bar) SetTrack(height, offset float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trackHeight = height
	b.trackOffset = offset
}
