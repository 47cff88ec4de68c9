// Package textinput provides a focus-aware single-line text field. The
// field owns its text buffer in widget state; edits and submissions surface
// as application messages built by the handlers attached to the
// description. A field without a change handler is disabled.
package textinput

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/glaze-ui/glaze/draw"
	"github.com/glaze-ui/glaze/event"
	"github.com/glaze-ui/glaze/layout"
	"github.com/glaze-ui/glaze/theme"
	"github.com/glaze-ui/glaze/widget"
)

const defaultWidth = 24

// TextInput is a focus-aware single-line text field.
type TextInput struct {
	placeholder string
	initial     string
	onChange    func(value string) tea.Msg
	onSubmit    func(value string) tea.Msg
	onFocus     tea.Msg
	onBlur      tea.Msg
	id          widget.ID
	width       int
}

// New creates a text input with the given placeholder and a unique
// identity.
func New(placeholder string) *TextInput {
	return &TextInput{
		placeholder: placeholder,
		id:          widget.NewUnique(),
		width:       defaultWidth,
	}
}

// Value seeds the buffer when the field first receives state. Later
// rebuilds keep the buffer the user has been editing.
func (ti *TextInput) Value(v string) *TextInput {
	ti.initial = v
	return ti
}

// OnChange sets the message builder invoked after every edit. Until a
// change handler is set the field is disabled.
func (ti *TextInput) OnChange(fn func(value string) tea.Msg) *TextInput {
	ti.onChange = fn
	return ti
}

// OnSubmit sets the message builder invoked when Enter is pressed.
func (ti *TextInput) OnSubmit(fn func(value string) tea.Msg) *TextInput {
	ti.onSubmit = fn
	return ti
}

// OnFocus sets the message published when the field gains focus.
func (ti *TextInput) OnFocus(msg tea.Msg) *TextInput {
	ti.onFocus = msg
	return ti
}

// OnBlur sets the message published when the field loses focus.
func (ti *TextInput) OnBlur(msg tea.Msg) *TextInput {
	ti.onBlur = msg
	return ti
}

// ID sets an explicit identity.
func (ti *TextInput) ID(id widget.ID) *TextInput {
	ti.id = id
	return ti
}

// Width sets the rendered width in cells.
func (ti *TextInput) Width(w int) *TextInput {
	if w > 0 {
		ti.width = w
	}
	return ti
}

type state struct {
	isFocused  bool
	wasFocused bool
	status     theme.StatusKind
	value      []rune
	pos        int
}

// IsFocused implements widget.Focusable.
func (s *state) IsFocused() bool { return s.isFocused }

// Focus implements widget.Focusable; disabled fields refuse focus.
func (s *state) Focus() {
	if s.status != theme.StatusDisabled {
		s.isFocused = true
	}
}

// Unfocus implements widget.Focusable.
func (s *state) Unfocus() { s.isFocused = false }

// State implements widget.Widget.
func (ti *TextInput) State() any {
	value := []rune(ti.initial)
	return &state{
		status: theme.StatusActive,
		value:  value,
		pos:    len(value),
	}
}

// Children implements widget.Widget.
func (ti *TextInput) Children() []widget.Widget { return nil }

// Diff implements widget.Widget.
func (ti *TextInput) Diff(t *widget.Tree) {
	t.DiffChildren(nil)
}

// Layout implements widget.Widget.
func (ti *TextInput) Layout(_ *widget.Tree, limits layout.Limits) layout.Node {
	return layout.NewNode(layout.Size{
		Width:  limits.ClampWidth(ti.width),
		Height: limits.ClampHeight(1),
	})
}

func (ti *TextInput) disabled() bool {
	return ti.onChange == nil
}

// Update implements widget.Widget. Structurally this mirrors the button's
// state machine with the activation payload replaced by the text buffer.
func (ti *TextInput) Update(t *widget.Tree, ev event.Event, node layout.Node, cur event.Cursor, shell *widget.Shell) event.Status {
	st := t.State.(*state)

	if st.isFocused != st.wasFocused {
		if st.isFocused {
			shell.Publish(ti.onFocus)
		} else {
			shell.Publish(ti.onBlur)
		}
		st.wasFocused = st.isFocused
	}

	switch ev := ev.(type) {
	case event.PointerPressed, event.TouchBegan:
		if ti.disabled() {
			break
		}
		pos := pressPosition(ev)
		if node.Bounds.Contains(pos) {
			st.status = theme.StatusPressed
			if !st.isFocused {
				shell.Publish(ti.onFocus)
			}
			st.isFocused = true
			st.wasFocused = true
			st.pos = ti.caretForColumn(st, pos.X-node.Bounds.X)
			return event.Captured
		}
		if st.isFocused {
			shell.Publish(ti.onBlur)
		}
		st.isFocused = false
		st.wasFocused = false

	case event.PointerReleased, event.TouchEnded:
		if ti.disabled() || st.status != theme.StatusPressed {
			break
		}
		st.status = theme.StatusActive
		return event.Captured

	case event.TouchCancelled:
		st.status = theme.StatusActive

	case event.KeyPressed:
		if ti.disabled() || !st.isFocused {
			break
		}
		return ti.handleKey(st, ev.Key, shell)
	}

	return event.Ignored
}

func (ti *TextInput) handleKey(st *state, k event.Key, shell *widget.Shell) event.Status {
	if k.IsText() {
		head := append([]rune{}, st.value[:st.pos]...)
		st.value = append(append(head, k.Runes...), st.value[st.pos:]...)
		st.pos += len(k.Runes)
		ti.publishChange(st, shell)
		return event.Captured
	}

	switch k.Name {
	case "enter":
		if ti.onSubmit != nil {
			shell.Publish(ti.onSubmit(string(st.value)))
		}
		return event.Captured
	case "left":
		if st.pos > 0 {
			st.pos--
		}
		return event.Captured
	case "right":
		if st.pos < len(st.value) {
			st.pos++
		}
		return event.Captured
	case "home", "ctrl+a":
		st.pos = 0
		return event.Captured
	case "end", "ctrl+e":
		st.pos = len(st.value)
		return event.Captured
	case "backspace":
		if st.pos > 0 {
			st.value = append(st.value[:st.pos-1], st.value[st.pos:]...)
			st.pos--
			ti.publishChange(st, shell)
		}
		return event.Captured
	case "delete":
		if st.pos < len(st.value) {
			st.value = append(st.value[:st.pos], st.value[st.pos+1:]...)
			ti.publishChange(st, shell)
		}
		return event.Captured
	case "ctrl+u":
		if st.pos > 0 {
			st.value = append([]rune{}, st.value[st.pos:]...)
			st.pos = 0
			ti.publishChange(st, shell)
		}
		return event.Captured
	case "ctrl+w":
		if deleteWordBackward(st) {
			ti.publishChange(st, shell)
		}
		return event.Captured
	}

	return event.Ignored
}

func (ti *TextInput) publishChange(st *state, shell *widget.Shell) {
	if ti.onChange != nil {
		shell.Publish(ti.onChange(string(st.value)))
	}
}

// deleteWordBackward removes the run of non-spaces (and the spaces after
// it) immediately before the caret.
func deleteWordBackward(st *state) bool {
	if st.pos == 0 {
		return false
	}
	i := st.pos
	for i > 0 && st.value[i-1] == ' ' {
		i--
	}
	for i > 0 && st.value[i-1] != ' ' {
		i--
	}
	st.value = append(st.value[:i], st.value[st.pos:]...)
	st.pos = i
	return true
}

// caretForColumn maps a clicked column to a caret index.
func (ti *TextInput) caretForColumn(st *state, col int) int {
	if col <= 0 {
		return 0
	}
	w := 0
	for i, r := range st.value {
		w += ansi.StringWidth(string(r))
		if w > col {
			return i
		}
	}
	return len(st.value)
}

// Operate implements widget.Widget.
func (ti *TextInput) Operate(t *widget.Tree, node layout.Node, op widget.Operation) {
	st := t.State.(*state)
	if ti.disabled() {
		st.status = theme.StatusDisabled
	} else if st.status == theme.StatusDisabled {
		st.status = theme.StatusActive
	}
	op.Focusable(st, &ti.id)
}

// CurrentValue returns the buffer held in the given state tree. The host
// and tests use it to observe edits without waiting for change messages.
func (ti *TextInput) CurrentValue(t *widget.Tree) string {
	if st, ok := t.State.(*state); ok {
		return string(st.value)
	}
	return ""
}

// Draw implements widget.Widget.
func (ti *TextInput) Draw(t *widget.Tree, surface draw.Surface, styles theme.Styles, node layout.Node, cur event.Cursor) {
	st := t.State.(*state)

	var status theme.Status
	switch {
	case ti.disabled():
		status = theme.Disabled()
	case st.isFocused:
		status = theme.Focused(cur.Over(node.Bounds))
	default:
		status = theme.Active()
	}
	style := styles.Input(status)
	surface.FillRect(node.Bounds, style)

	if len(st.value) == 0 && !st.isFocused {
		placeholder := styles.Input(status)
		if styles.InputPlaceholder != nil && status.Kind != theme.StatusDisabled {
			placeholder = *styles.InputPlaceholder
		}
		surface.WriteString(node.Bounds.X, node.Bounds.Y, clipText(ti.placeholder, node.Bounds.Width), placeholder)
		return
	}

	visible, caretCol := window(st.value, st.pos, node.Bounds.Width)
	surface.WriteString(node.Bounds.X, node.Bounds.Y, visible, style)

	if st.isFocused && styles.InputCursor != nil && caretCol < node.Bounds.Width {
		under := " "
		runes := []rune(visible)
		if idx := caretIndex(runes, caretCol); idx < len(runes) {
			under = string(runes[idx])
		}
		surface.WriteString(node.Bounds.X+caretCol, node.Bounds.Y, under, *styles.InputCursor)
	}
}

// window returns the slice of the buffer that fits the width while keeping
// the caret visible, plus the caret's column inside it.
func window(value []rune, pos, width int) (string, int) {
	if width <= 0 {
		return "", 0
	}
	start := 0
	for cellWidth(value[start:pos]) >= width {
		start++
	}
	end := start
	w := 0
	for end < len(value) {
		rw := ansi.StringWidth(string(value[end]))
		if w+rw > width {
			break
		}
		w += rw
		end++
	}
	return string(value[start:end]), cellWidth(value[start:pos])
}

func cellWidth(runes []rune) int {
	return ansi.StringWidth(string(runes))
}

func caretIndex(runes []rune, col int) int {
	w := 0
	for i := range runes {
		if w == col {
			return i
		}
		w += ansi.StringWidth(string(runes[i]))
	}
	return len(runes)
}

func clipText(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	w := 0
	for i, r := range runes {
		rw := ansi.StringWidth(string(r))
		if w+rw > width {
			return string(runes[:i])
		}
		w += rw
	}
	return s
}

func pressPosition(ev event.Event) layout.Point {
	switch ev := ev.(type) {
	case event.PointerPressed:
		return ev.Pos
	case event.TouchBegan:
		return ev.Pos
	}
	return layout.Point{}
}
