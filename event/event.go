// Package event defines the raw input events dispatched through the widget
// tree and the capture status widgets return from handling them. Events are
// produced from Bubble Tea messages by the program host; widgets never see
// tea.Msg values directly.
package event

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glaze-ui/glaze/layout"
)

// Status reports whether a widget consumed an event.
type Status int

const (
	// Ignored means the event was not handled and keeps propagating.
	Ignored Status = iota
	// Captured means the event was fully consumed; siblings and ancestors
	// must not react to it.
	Captured
)

// Merge combines two statuses, preferring Captured.
func (s Status) Merge(o Status) Status {
	if s == Captured || o == Captured {
		return Captured
	}
	return Ignored
}

// Event is a single raw input occurrence.
type Event interface {
	isEvent()
}

// PointerPressed is a primary-button press at a position.
type PointerPressed struct {
	Pos layout.Point
}

// PointerReleased is a primary-button release at a position.
type PointerReleased struct {
	Pos layout.Point
}

// PointerMoved is a pointer motion without button change.
type PointerMoved struct {
	Pos layout.Point
}

// TouchBegan is the start of a touch sequence.
type TouchBegan struct {
	Pos layout.Point
}

// TouchEnded is the end of a touch sequence.
type TouchEnded struct {
	Pos layout.Point
}

// TouchCancelled is a touch sequence aborted by the host.
type TouchCancelled struct{}

// KeyPressed is a keyboard key press.
type KeyPressed struct {
	Key Key
}

// Refresh is a synthetic pass dispatched after out-of-band tree operations
// so widgets can surface focus transitions through their usual notification
// point. It carries no input and is never captured.
type Refresh struct{}

func (PointerPressed) isEvent()  {}
func (PointerReleased) isEvent() {}
func (PointerMoved) isEvent()    {}
func (TouchBegan) isEvent()      {}
func (TouchEnded) isEvent()      {}
func (TouchCancelled) isEvent()  {}
func (KeyPressed) isEvent()      {}
func (Refresh) isEvent()         {}

// Key identifies a pressed key using Bubble Tea's canonical key names
// ("enter", "tab", "shift+tab", "a", ...). Runes carries printable input.
type Key struct {
	Name  string
	Runes []rune
}

// IsActivate reports whether the key triggers a focused widget's action.
func (k Key) IsActivate() bool {
	return k.Name == "enter" || k.Name == " "
}

// IsText reports whether the key carries printable text with no modifiers.
func (k Key) IsText() bool {
	return len(k.Runes) > 0 && k.Name == string(k.Runes)
}

// Cursor is the pointer position, when one is known. Terminal programs only
// learn the position from mouse events, so Present starts out false.
type Cursor struct {
	Pos     layout.Point
	Present bool
}

// Over reports whether the cursor is known and inside the rectangle.
func (c Cursor) Over(r layout.Rect) bool {
	return c.Present && r.Contains(c.Pos)
}

// FromKey converts a Bubble Tea key message to a KeyPressed event.
func FromKey(msg tea.KeyMsg) KeyPressed {
	return KeyPressed{Key: Key{Name: msg.String(), Runes: msg.Runes}}
}

// FromMouse converts a Bubble Tea mouse message to a pointer event and the
// updated cursor. The event is nil for mouse actions the toolkit does not
// track (wheel, secondary buttons).
func FromMouse(msg tea.MouseMsg) (Event, Cursor) {
	pos := layout.Point{X: msg.X, Y: msg.Y}
	cur := Cursor{Pos: pos, Present: true}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return PointerPressed{Pos: pos}, cur
		}
	case tea.MouseActionRelease:
		return PointerReleased{Pos: pos}, cur
	case tea.MouseActionMotion:
		return PointerMoved{Pos: pos}, cur
	}
	return nil, cur
}
