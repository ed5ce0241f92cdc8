// Package editor defines the collaborator contract side panels consume,
// plus an in-memory model implementing it. Panels pull all state from the
// Editor interface on demand; nothing is pushed or cached on the panel
// side, so a repaint is always consistent with the live document.
package editor

import "github.com/dmaze/skiff/internal/renderer/core"

// Diagnostic is a single analysis result attached to a line.
type Diagnostic struct {
	Message string
	Error   bool
}

// Annotations holds the optional per-line flags the overview strip renders.
type Annotations struct {
	Diagnostics []Diagnostic
	Todo        bool
	Breakpoint  bool
}

// Empty reports whether the line carries no flags at all.
func (a Annotations) Empty() bool {
	return len(a.Diagnostics) == 0 && !a.Todo && !a.Breakpoint
}

// ScrollBar abstracts the editor's vertical scrollbar.
type ScrollBar interface {
	Minimum() int
	Maximum() int
	PageStep() int
	Value() int
	SetValue(v int)
	Visible() bool

	// TrackHeight is the pixel span in which the slider handle may move.
	TrackHeight() float64

	// TrackOffset is the vertical offset of the track relative to the
	// top of the editor.
	TrackOffset() float64
}

// Palette names the colors the overview strip draws with.
type Palette struct {
	SideAreas    core.Color
	Warning      core.Color
	Error        core.Color
	Todo         core.Color
	Breakpoint   core.Color
	Occurrence   core.Color
	FoundResults core.Color
}

// Editor is the contract the overview strip pulls from at paint time.
type Editor interface {
	// LineCount returns the number of lines in the document.
	LineCount() int

	// AnnotationsAt returns the flags for a line, if any.
	AnnotationsAt(line int) (Annotations, bool)

	// Occurrences returns the lines highlighted as occurrences of the
	// word under the cursor.
	Occurrences() []int

	// FoundResults returns the lines holding search hits.
	FoundResults() []int

	// ScrollBar returns the vertical scrollbar abstraction.
	ScrollBar() ScrollBar

	// BlockBounds returns the rendered top and height of a line in
	// editor pixel coordinates, content offset applied.
	BlockBounds(line int) (top, height float64)

	// Palette returns the mark colors.
	Palette() Palette

	// Wheel forwards a wheel event from a panel to the editor.
	Wheel(delta int)
}
