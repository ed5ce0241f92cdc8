package editor

import "sync"

// Model is an in-memory Editor implementation. The host application sets
// annotation, occurrence, and search data on it; side panels read through
// the Editor interface.
type Model struct {
	mu sync.RWMutex

	lineCount     int
	lineHeight    float64
	contentOffset float64

	annotations  map[int]Annotations
	occurrences  []int
	foundResults []int

	scrollBar *Bar
	palette   Palette

	// onFlagsChanged fires after any annotation mutation.
	onFlagsChanged func()
}

// ModelOptions configures a new Model.
type ModelOptions struct {
	// LineCount is the initial number of document lines.
	LineCount int

	// LineHeight is the rendered height of one line (default 1).
	LineHeight float64

	// Palette holds the mark colors (default DefaultPalette).
	Palette Palette

	// OnFlagsChanged is called after annotations, occurrences, or
	// search results change.
	OnFlagsChanged func()
}

// NewModel creates a model with the given options.
func NewModel(opts ModelOptions) *Model {
	if opts.LineHeight <= 0 {
		opts.LineHeight = 1
	}
	zero := Palette{}
	if opts.Palette == zero {
		opts.Palette = DefaultPalette()
	}

	return &Model{
		lineCount:      opts.LineCount,
		lineHeight:     opts.LineHeight,
		annotations:    make(map[int]Annotations),
		scrollBar:      NewBar(),
		palette:        opts.Palette,
		onFlagsChanged: opts.OnFlagsChanged,
	}
}

// LineCount returns the number of lines in the document.
func (m *Model) LineCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lineCount
}

// SetLineCount updates the document length. Annotations beyond the new
// end are dropped.
func (m *Model) SetLineCount(n int) {
	if n < 0 {
		n = 0
	}

	m.mu.Lock()
	m.lineCount = n
	for line := range m.annotations {
		if line >= n {
			delete(m.annotations, line)
		}
	}
	m.mu.Unlock()

	m.flagsChanged()
}

// AnnotationsAt returns the flags for a line, if any.
func (m *Model) AnnotationsAt(line int) (Annotations, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.annotations[line]
	return a, ok
}

// SetDiagnostics replaces the diagnostics on a line.
func (m *Model) SetDiagnostics(line int, diags []Diagnostic) {
	m.mutate(line, func(a *Annotations) {
		a.Diagnostics = append([]Diagnostic(nil), diags...)
	})
}

// SetTodo sets or clears the todo flag on a line.
func (m *Model) SetTodo(line int, todo bool) {
	m.mutate(line, func(a *Annotations) { a.Todo = todo })
}

// SetBreakpoint sets or clears the breakpoint flag on a line.
func (m *Model) SetBreakpoint(line int, bp bool) {
	m.mutate(line, func(a *Annotations) { a.Breakpoint = bp })
}

// ToggleBreakpoint flips the breakpoint flag on a line and returns the
// new state.
func (m *Model) ToggleBreakpoint(line int) bool {
	var state bool
	m.mutate(line, func(a *Annotations) {
		a.Breakpoint = !a.Breakpoint
		state = a.Breakpoint
	})
	return state
}

// ClearAnnotations removes all flags from a line.
func (m *Model) ClearAnnotations(line int) {
	m.mu.Lock()
	delete(m.annotations, line)
	m.mu.Unlock()

	m.flagsChanged()
}

// Occurrences returns the lines highlighted as occurrences.
func (m *Model) Occurrences() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]int(nil), m.occurrences...)
}

// SetOccurrences replaces the occurrence lines.
func (m *Model) SetOccurrences(lines []int) {
	m.mu.Lock()
	m.occurrences = append([]int(nil), lines...)
	m.mu.Unlock()

	m.flagsChanged()
}

// FoundResults returns the lines holding search hits.
func (m *Model) FoundResults() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]int(nil), m.foundResults...)
}

// SetFoundResults replaces the search hit lines.
func (m *Model) SetFoundResults(lines []int) {
	m.mu.Lock()
	m.foundResults = append([]int(nil), lines...)
	m.mu.Unlock()

	m.flagsChanged()
}

// ScrollBar returns the vertical scrollbar abstraction.
func (m *Model) ScrollBar() ScrollBar {
	return m.scrollBar
}

// BlockBounds returns the rendered top and height of a line.
func (m *Model) BlockBounds(line int) (top, height float64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return float64(line)*m.lineHeight + m.contentOffset, m.lineHeight
}

// SetContentOffset sets the vertical offset of the rendered content.
func (m *Model) SetContentOffset(off float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contentOffset = off
}

// Palette returns the mark colors.
func (m *Model) Palette() Palette {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.palette
}

// SetPalette replaces the mark colors.
func (m *Model) SetPalette(p Palette) {
	m.mu.Lock()
	m.palette = p
	m.mu.Unlock()

	m.flagsChanged()
}

// Wheel scrolls the document by delta scrollbar values.
func (m *Model) Wheel(delta int) {
	sb := m.scrollBar
	sb.SetValue(sb.Value() - delta)
}

func (m *Model) mutate(line int, fn func(*Annotations)) {
	m.mu.Lock()
	a := m.annotations[line]
	fn(&a)
	if a.Empty() {
		delete(m.annotations, line)
	} else {
		m.annotations[line] = a
	}
	m.mu.Unlock()

	m.flagsChanged()
}

func (m *Model) flagsChanged() {
	if m.onFlagsChanged != nil {
		m.onFlagsChanged()
	}
}
