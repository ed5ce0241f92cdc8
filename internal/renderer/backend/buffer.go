package backend

import (
	"sync"

	"github.com/dmaze/skiff/internal/renderer/core"
)

// OpKind identifies a recorded draw operation.
type OpKind int

// Draw operation kinds.
const (
	OpFill OpKind = iota
	OpDraw
)

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	Rect  core.RectF
	Pen   core.Color
	Brush core.Color
}

// Buffer is a Painter that records draw operations instead of rendering
// them. Tests inspect the recorded ops to verify paint behavior.
type Buffer struct {
	mu  sync.Mutex
	ops []Op
}

// NewBuffer creates an empty recording painter.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// FillRect records a fill operation.
func (b *Buffer) FillRect(r core.RectF, c core.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ops = append(b.ops, Op{Kind: OpFill, Rect: r, Brush: c})
}

// DrawRect records an outlined rectangle operation.
func (b *Buffer) DrawRect(r core.RectF, pen, brush core.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ops = append(b.ops, Op{Kind: OpDraw, Rect: r, Pen: pen, Brush: brush})
}

// Ops returns a copy of the recorded operations.
func (b *Buffer) Ops() []Op {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Op(nil), b.ops...)
}

// Reset discards all recorded operations.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ops = nil
}
