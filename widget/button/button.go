// Package button provides a focus-aware push button. A button without an
// activation message is disabled: it draws dimmed, never captures input and
// refuses keyboard focus.
package button

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glaze-ui/glaze/draw"
	"github.com/glaze-ui/glaze/event"
	"github.com/glaze-ui/glaze/layout"
	"github.com/glaze-ui/glaze/theme"
	"github.com/glaze-ui/glaze/widget"
)

// defaultPadding is applied around the button content.
var defaultPadding = layout.Padding{Left: 2, Right: 2}

// onPress is the activation payload: either a fixed message or a producer
// invoked lazily when the button actually activates.
type onPress struct {
	msg tea.Msg
	fn  func() tea.Msg
}

func (p *onPress) get() tea.Msg {
	if p.fn != nil {
		return p.fn()
	}
	return p.msg
}

// Button is a focus-aware push button wrapping a content widget.
type Button struct {
	content widget.Widget
	press   *onPress
	onFocus tea.Msg
	onBlur  tea.Msg
	id      widget.ID
	padding layout.Padding
	clip    bool
}

// New creates a button with the given content and a unique identity.
func New(content widget.Widget) *Button {
	return &Button{
		content: content,
		id:      widget.NewUnique(),
		padding: defaultPadding,
	}
}

// Label creates a button around a plain text label.
func Label(text string) *Button {
	return New(widget.NewText(text))
}

// OnPress sets the message produced when the button activates. Until an
// activation message is set the button is disabled.
func (b *Button) OnPress(msg tea.Msg) *Button {
	b.press = &onPress{msg: msg}
	return b
}

// OnPressFunc sets a producer invoked only when the button activates,
// avoiding the cost of building messages that are never sent.
func (b *Button) OnPressFunc(fn func() tea.Msg) *Button {
	b.press = &onPress{fn: fn}
	return b
}

// OnPressMaybe sets the activation message when non-nil and leaves the
// button disabled otherwise.
func (b *Button) OnPressMaybe(msg tea.Msg) *Button {
	if msg == nil {
		b.press = nil
		return b
	}
	return b.OnPress(msg)
}

// OnFocus sets the message published when the button gains focus.
func (b *Button) OnFocus(msg tea.Msg) *Button {
	b.onFocus = msg
	return b
}

// OnBlur sets the message published when the button loses focus.
func (b *Button) OnBlur(msg tea.Msg) *Button {
	b.onBlur = msg
	return b
}

// ID sets an explicit identity, allowing the application to address the
// button across rebuilds.
func (b *Button) ID(id widget.ID) *Button {
	b.id = id
	return b
}

// Padding overrides the default content padding.
func (b *Button) Padding(p layout.Padding) *Button {
	b.padding = p
	return b
}

// Clip restricts content drawing to the button bounds on overflow.
func (b *Button) Clip(clip bool) *Button {
	b.clip = clip
	return b
}

// state is the per-instance runtime state stored in the widget tree.
type state struct {
	isFocused  bool
	wasFocused bool
	status     theme.StatusKind
}

// IsFocused implements widget.Focusable.
func (s *state) IsFocused() bool { return s.isFocused }

// Focus implements widget.Focusable; disabled buttons refuse focus.
func (s *state) Focus() {
	if s.status != theme.StatusDisabled {
		s.isFocused = true
	}
}

// Unfocus implements widget.Focusable.
func (s *state) Unfocus() { s.isFocused = false }

// State implements widget.Widget.
func (b *Button) State() any {
	return &state{status: theme.StatusActive}
}

// Children implements widget.Widget.
func (b *Button) Children() []widget.Widget {
	return []widget.Widget{b.content}
}

// Diff implements widget.Widget.
func (b *Button) Diff(t *widget.Tree) {
	t.DiffChildren([]widget.Widget{b.content})
}

// Layout implements widget.Widget.
func (b *Button) Layout(t *widget.Tree, limits layout.Limits) layout.Node {
	child := b.content.Layout(t.Children[0], limits.Shrink(b.padding))
	child = child.Move(b.padding.Left, b.padding.Top)
	size := layout.Size{
		Width:  child.Bounds.Width + b.padding.Horizontal(),
		Height: child.Bounds.Height + b.padding.Vertical(),
	}
	return layout.NewNode(size, child)
}

// Update implements widget.Widget. The precedence is fixed: content first,
// then focus-transition notifications, then the pointer/keyboard state
// machine.
func (b *Button) Update(t *widget.Tree, ev event.Event, node layout.Node, cur event.Cursor, shell *widget.Shell) event.Status {
	if b.content.Update(t.Children[0], ev, node.Children[0], cur, shell) == event.Captured {
		return event.Captured
	}

	st := t.State.(*state)

	// Transitions caused by operations (Tab cycling) and by direct
	// interaction both surface here, exactly once per transition.
	if st.isFocused != st.wasFocused {
		if st.isFocused {
			shell.Publish(b.onFocus)
		} else {
			shell.Publish(b.onBlur)
		}
		st.wasFocused = st.isFocused
	}

	switch ev := ev.(type) {
	case event.PointerPressed, event.TouchBegan:
		if b.press == nil {
			break
		}
		pos := pressPosition(ev)
		if node.Bounds.Contains(pos) {
			st.status = theme.StatusPressed
			if !st.isFocused {
				shell.Publish(b.onFocus)
			}
			st.isFocused = true
			st.wasFocused = true
			return event.Captured
		}
		if st.isFocused {
			shell.Publish(b.onBlur)
		}
		st.isFocused = false
		st.wasFocused = false

	case event.PointerReleased, event.TouchEnded:
		if b.press == nil || st.status != theme.StatusPressed {
			break
		}
		st.status = theme.StatusActive
		if cur.Over(node.Bounds) {
			shell.Publish(b.press.get())
		}
		return event.Captured

	case event.TouchCancelled:
		st.status = theme.StatusActive

	case event.KeyPressed:
		if b.press == nil || !st.isFocused || !ev.Key.IsActivate() {
			break
		}
		st.status = theme.StatusPressed
		shell.Publish(b.press.get())
		return event.Captured
	}

	return event.Ignored
}

// Operate implements widget.Widget. The disabled flag is synced into the
// state before the operation sees it, so Focus can refuse while there is no
// activation handler.
func (b *Button) Operate(t *widget.Tree, node layout.Node, op widget.Operation) {
	st := t.State.(*state)
	if b.press == nil {
		st.status = theme.StatusDisabled
	} else if st.status == theme.StatusDisabled {
		st.status = theme.StatusActive
	}

	op.Focusable(st, &b.id)

	op.Container(&b.id, node.Bounds, func(inner widget.Operation) {
		b.content.Operate(t.Children[0], node.Children[0], inner)
	})
}

// Draw implements widget.Widget. The visual status is derived fresh from
// state, handler presence and pointer position; state is not mutated.
func (b *Button) Draw(t *widget.Tree, surface draw.Surface, styles theme.Styles, node layout.Node, cur event.Cursor) {
	st := t.State.(*state)
	hovered := cur.Over(node.Bounds)

	var status theme.Status
	switch {
	case b.press == nil:
		status = theme.Disabled()
	case st.isFocused:
		status = theme.Focused(hovered)
	case hovered && st.status == theme.StatusPressed:
		status = theme.Pressed()
	case hovered:
		status = theme.Hovered()
	default:
		status = theme.Active()
	}

	style := styles.Button(status)
	surface.FillRect(node.Bounds, style)

	target := surface
	if b.clip {
		target = surface.Clip(node.Bounds)
	}
	// Content inherits the button's style so labels match the background.
	content := styles
	content.Text = &style
	b.content.Draw(t.Children[0], target, content, node.Children[0], cur)
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
