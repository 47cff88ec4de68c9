package widget

import (
	"github.com/glaze-ui/glaze/draw"
	"github.com/glaze-ui/glaze/event"
	"github.com/glaze-ui/glaze/layout"
	"github.com/glaze-ui/glaze/theme"
)

type axis int

const (
	horizontal axis = iota
	vertical
)

// Box lays out children along one axis. NewRow orders them horizontally,
// NewColumn vertically. Boxes are stateless containers: they forward events
// and operations to their children in declared order and never capture
// anything themselves.
type Box struct {
	axis     axis
	spacing  int
	children []Widget
}

// NewRow creates a horizontal container.
func NewRow(children ...Widget) *Box {
	return &Box{axis: horizontal, children: children}
}

// NewColumn creates a vertical container.
func NewColumn(children ...Widget) *Box {
	return &Box{axis: vertical, children: children}
}

// Spacing sets the gap between adjacent children in cells.
func (b *Box) Spacing(n int) *Box {
	if n < 0 {
		n = 0
	}
	b.spacing = n
	return b
}

// State implements Widget; boxes keep no state.
func (b *Box) State() any { return nil }

// Children implements Widget.
func (b *Box) Children() []Widget { return b.children }

// Diff implements Widget.
func (b *Box) Diff(t *Tree) {
	t.DiffChildren(b.children)
}

// Layout implements Widget. Children are laid out in order, each receiving
// the space remaining after its predecessors.
func (b *Box) Layout(t *Tree, limits layout.Limits) layout.Node {
	nodes := make([]layout.Node, 0, len(b.children))
	offset := 0
	cross := 0
	for i, c := range b.children {
		var child layout.Node
		if b.axis == horizontal {
			child = c.Layout(t.Children[i], layout.NewLimits(limits.Max.Width-offset, limits.Max.Height))
			child = child.Move(offset, 0)
			offset += child.Bounds.Width + b.spacing
			cross = max(cross, child.Bounds.Height)
		} else {
			child = c.Layout(t.Children[i], layout.NewLimits(limits.Max.Width, limits.Max.Height-offset))
			child = child.Move(0, offset)
			offset += child.Bounds.Height + b.spacing
			cross = max(cross, child.Bounds.Width)
		}
		nodes = append(nodes, child)
	}
	if len(b.children) > 0 {
		offset -= b.spacing
	}
	size := layout.Size{Width: offset, Height: cross}
	if b.axis == vertical {
		size = layout.Size{Width: cross, Height: offset}
	}
	return layout.NewNode(size, nodes...)
}

// Update implements Widget. Children see events in declared order and the
// first capture stops propagation, except for press events: a press is
// delivered to every child so that a widget further along the order can
// still observe an outside press and give up its focus. The combined status
// still reports Captured when any child captured.
func (b *Box) Update(t *Tree, ev event.Event, node layout.Node, cur event.Cursor, shell *Shell) event.Status {
	status := event.Ignored
	propagate := false
	switch ev.(type) {
	case event.PointerPressed, event.TouchBegan:
		propagate = true
	}
	for i, c := range b.children {
		st := c.Update(t.Children[i], ev, node.Children[i], cur, shell)
		status = status.Merge(st)
		if st == event.Captured && !propagate {
			return status
		}
	}
	return status
}

// Operate implements Widget.
func (b *Box) Operate(t *Tree, node layout.Node, op Operation) {
	op.Container(nil, node.Bounds, func(inner Operation) {
		for i, c := range b.children {
			c.Operate(t.Children[i], node.Children[i], inner)
		}
	})
}

// Draw implements Widget.
func (b *Box) Draw(t *Tree, surface draw.Surface, styles theme.Styles, node layout.Node, cur event.Cursor) {
	for i, c := range b.children {
		c.Draw(t.Children[i], surface, styles, node.Children[i], cur)
	}
}
