package layout

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{X: 2, Y: 3}, true},
		{Point{X: 5, Y: 4}, true},
		{Point{X: 6, Y: 3}, false},
		{Point{X: 2, Y: 5}, false},
		{Point{X: 1, Y: 3}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Fatalf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	got := a.Intersect(b)
	want := Rect{X: 5, Y: 5, Width: 5, Height: 5}
	if got != want {
		t.Fatalf("Intersect = %+v, want %+v", got, want)
	}

	c := Rect{X: 20, Y: 20, Width: 2, Height: 2}
	if !a.Intersect(c).Empty() {
		t.Fatalf("expected empty intersection for disjoint rects")
	}
}

func TestLimitsShrinkBottomsOutAtZero(t *testing.T) {
	l := NewLimits(5, 3)
	shrunk := l.Shrink(Padding{Top: 2, Bottom: 2, Left: 4, Right: 4})
	if shrunk.Max.Width != 0 || shrunk.Max.Height != 0 {
		t.Fatalf("expected limits clamped to zero, got %+v", shrunk.Max)
	}
}

func TestLimitsClamp(t *testing.T) {
	l := NewLimits(10, 4)
	if got := l.ClampWidth(20); got != 10 {
		t.Fatalf("ClampWidth(20) = %d, want 10", got)
	}
	if got := l.ClampWidth(-1); got != 0 {
		t.Fatalf("ClampWidth(-1) = %d, want 0", got)
	}
	if got := l.ClampHeight(2); got != 2 {
		t.Fatalf("ClampHeight(2) = %d, want 2", got)
	}
}

func TestNodeMoveTranslatesChildren(t *testing.T) {
	child := NewNode(Size{Width: 2, Height: 1})
	parent := NewNode(Size{Width: 10, Height: 4}, child.Move(1, 1))

	moved := parent.Move(5, 2)
	if moved.Bounds.X != 5 || moved.Bounds.Y != 2 {
		t.Fatalf("expected parent at (5,2), got %+v", moved.Bounds)
	}
	got := moved.Children[0].Bounds
	if got.X != 6 || got.Y != 3 {
		t.Fatalf("expected child translated to (6,3), got %+v", got)
	}

	// The original node must be unaffected.
	if parent.Children[0].Bounds.X != 1 {
		t.Fatalf("expected Move to copy, original child at %+v", parent.Children[0].Bounds)
	}
}
