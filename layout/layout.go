// Package layout provides the geometry primitives widgets use to size and
// position themselves. It is deliberately small: the toolkit core only needs
// bounding boxes and a tree of resolved geometry nodes, not a constraint
// solver.
package layout

// Point is a position in terminal cells.
type Point struct {
	X int
	Y int
}

// Size is a width/height pair in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Rect is an axis-aligned rectangle in terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether p falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlapping region of two rectangles. The result is
// empty when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.Width, o.X+o.Width)
	y2 := min(r.Y+r.Height, o.Y+o.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{X: x1, Y: y1}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Padding describes spacing around a widget's content.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Horizontal returns the total horizontal padding.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns the total vertical padding.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// Limits is the space a parent makes available to a child during layout.
type Limits struct {
	Max Size
}

// NewLimits builds limits with the given maximum dimensions.
func NewLimits(width, height int) Limits {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Limits{Max: Size{Width: width, Height: height}}
}

// Shrink reduces the limits by the given padding, bottoming out at zero.
func (l Limits) Shrink(p Padding) Limits {
	return NewLimits(l.Max.Width-p.Horizontal(), l.Max.Height-p.Vertical())
}

// ClampWidth caps a desired width to the available space.
func (l Limits) ClampWidth(w int) int {
	if w > l.Max.Width {
		return l.Max.Width
	}
	if w < 0 {
		return 0
	}
	return w
}

// ClampHeight caps a desired height to the available space.
func (l Limits) ClampHeight(h int) int {
	if h > l.Max.Height {
		return l.Max.Height
	}
	if h < 0 {
		return 0
	}
	return h
}

// Node is the resolved geometry of a widget and its children. Bounds are
// absolute once the root node has been positioned; containers call Move on
// child nodes to place them.
type Node struct {
	Bounds   Rect
	Children []Node
}

// NewNode builds a node of the given size at the origin.
func NewNode(size Size, children ...Node) Node {
	return Node{
		Bounds:   Rect{Width: size.Width, Height: size.Height},
		Children: children,
	}
}

// Move translates the node and all of its children by the given offset and
// returns the result.
func (n Node) Move(dx, dy int) Node {
	n.Bounds.X += dx
	n.Bounds.Y += dy
	moved := make([]Node, len(n.Children))
	for i, c := range n.Children {
		moved[i] = c.Move(dx, dy)
	}
	n.Children = moved
	return n
}

// Size returns the node's dimensions.
func (n Node) Size() Size {
	return Size{Width: n.Bounds.Width, Height: n.Bounds.Height}
}
