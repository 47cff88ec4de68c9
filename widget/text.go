package widget

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/glaze-ui/glaze/draw"
	"github.com/glaze-ui/glaze/event"
	"github.com/glaze-ui/glaze/layout"
	"github.com/glaze-ui/glaze/theme"
)

// Text is a stateless leaf widget drawing a single styled line. It never
// captures events and is invisible to focus operations.
type Text struct {
	content string
	style   *lipgloss.Style
}

// NewText creates a text widget.
func NewText(content string) *Text {
	return &Text{content: content}
}

// Style overrides the theme's text style.
func (t *Text) Style(style lipgloss.Style) *Text {
	t.style = &style
	return t
}

// Content returns the displayed string.
func (t *Text) Content() string { return t.content }

// State implements Widget; Text keeps no state.
func (t *Text) State() any { return nil }

// Children implements Widget.
func (t *Text) Children() []Widget { return nil }

// Diff implements Widget.
func (t *Text) Diff(tree *Tree) {
	tree.DiffChildren(nil)
}

// Layout implements Widget.
func (t *Text) Layout(_ *Tree, limits layout.Limits) layout.Node {
	w := limits.ClampWidth(ansi.StringWidth(t.content))
	return layout.NewNode(layout.Size{Width: w, Height: limits.ClampHeight(1)})
}

// Update implements Widget; text ignores all input.
func (t *Text) Update(*Tree, event.Event, layout.Node, event.Cursor, *Shell) event.Status {
	return event.Ignored
}

// Operate implements Widget; text has nothing to report.
func (t *Text) Operate(*Tree, layout.Node, Operation) {}

// Draw implements Widget.
func (t *Text) Draw(_ *Tree, surface draw.Surface, styles theme.Styles, node layout.Node, _ event.Cursor) {
	style := lipgloss.NewStyle()
	switch {
	case t.style != nil:
		style = *t.style
	case styles.Text != nil:
		style = *styles.Text
	}
	surface.WriteString(node.Bounds.X, node.Bounds.Y, t.content, style)
}
