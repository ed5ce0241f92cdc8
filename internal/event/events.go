package event

// Topic identifies an event stream on the bus.
type Topic string

// Editor topics.
const (
	// TopicEditorFocusChanged is published when the editor gains or
	// loses focus.
	TopicEditorFocusChanged Topic = "editor.focus.changed"

	// TopicEditorKeyPressed is published for key presses the editor
	// forwards to its panels.
	TopicEditorKeyPressed Topic = "editor.key.pressed"

	// TopicEditorKeyReleased is published for key releases.
	TopicEditorKeyReleased Topic = "editor.key.released"

	// TopicEditorAltPressed is published for Alt+primary-button presses
	// over the editor.
	TopicEditorAltPressed Topic = "editor.alt.mouse.pressed"

	// TopicEditorAltMoved is published when the pointer moves over the
	// editor with Alt held.
	TopicEditorAltMoved Topic = "editor.alt.mouse.moved"

	// TopicEditorFlagsChanged is published when per-line annotations,
	// occurrences, or search results change.
	TopicEditorFlagsChanged Topic = "editor.flags.changed"
)

// Console topics.
const (
	// TopicConsoleFocusChanged is published on console focus in and out.
	TopicConsoleFocusChanged Topic = "console.focus.changed"

	// TopicConsoleExitRequested is published when the console widget
	// asks its kernel client to exit.
	TopicConsoleExitRequested Topic = "console.exit.requested"
)

// Renderer topics.
const (
	// TopicRedrawNeeded is published when the display needs an update.
	TopicRedrawNeeded Topic = "renderer.redraw.needed"
)

// FocusChanged is the payload for focus change topics.
type FocusChanged struct {
	// Gained is true on focus in, false on focus out.
	Gained bool
}

// KeyChanged is the payload for key press and release topics.
type KeyChanged struct {
	// Alt is true when the key is the Alt modifier.
	Alt bool
}

// PointerMoved is the payload for pointer topics.
type PointerMoved struct {
	// X and Y are in the receiving panel's pixel coordinates.
	X float64
	Y float64
}

// FlagsChanged is the payload for annotation change notifications.
type FlagsChanged struct{}

// ExitRequested is the payload for console exit requests.
type ExitRequested struct{}

// RedrawNeeded is the payload for redraw requests.
type RedrawNeeded struct {
	// Source identifies the component requesting the redraw.
	Source string
}
