// Package draw provides the surface widgets paint into. The toolkit core
// only needs rectangle fills and styled text placement; Buffer is the stock
// cell-grid implementation used by the program host and by tests.
package draw

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/glaze-ui/glaze/layout"
)

// Surface is the drawing contract handed to widgets.
type Surface interface {
	// FillRect paints every cell of the rectangle with the style's
	// background, clearing any previous content.
	FillRect(r layout.Rect, style lipgloss.Style)
	// WriteString places styled text starting at the given cell.
	WriteString(x, y int, s string, style lipgloss.Style)
	// Clip returns a surface restricted to the rectangle. Writes outside
	// it are discarded.
	Clip(r layout.Rect) Surface
}

// Cell is a single terminal cell.
type Cell struct {
	Rune  rune
	Style lipgloss.Style
}

// Buffer is a 2D grid of cells.
type Buffer struct {
	cells  []Cell
	width  int
	height int
	clip   layout.Rect
}

// NewBuffer creates a buffer of the given dimensions filled with spaces.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i].Rune = ' '
	}
	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
		clip:   layout.Rect{Width: width, Height: height},
	}
}

// Width returns the buffer width.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height.
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) index(x, y int) int { return y*b.width + x }

func (b *Buffer) inClip(x, y int) bool {
	return b.clip.Contains(layout.Point{X: x, Y: y})
}

// Set writes a cell, honouring the clip region.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.inClip(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
}

// Get returns the cell at the coordinates, or a blank cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' '}
	}
	return b.cells[b.index(x, y)]
}

// FillRect implements Surface.
func (b *Buffer) FillRect(r layout.Rect, style lipgloss.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			b.Set(x, y, Cell{Rune: ' ', Style: style})
		}
	}
}

// WriteString implements Surface. Wide runes occupy their display width;
// the trailing half of a wide rune is left as a styled blank.
func (b *Buffer) WriteString(x, y int, s string, style lipgloss.Style) {
	cx := x
	for _, r := range s {
		w := ansi.StringWidth(string(r))
		if w <= 0 {
			continue
		}
		b.Set(cx, y, Cell{Rune: r, Style: style})
		for i := 1; i < w; i++ {
			b.Set(cx+i, y, Cell{Rune: ' ', Style: style})
		}
		cx += w
	}
}

// Clip implements Surface. The returned surface shares the backing cells.
func (b *Buffer) Clip(r layout.Rect) Surface {
	clipped := *b
	clipped.clip = b.clip.Intersect(r)
	return &clipped
}

// Render produces the styled terminal output, one line per row.
func (b *Buffer) Render() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[b.index(x, y)]
			sb.WriteString(c.Style.Render(string(c.Rune)))
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Line returns the plain text of a single row, without styling. Tests use
// it to assert layout without caring about colours.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteRune(b.cells[b.index(x, y)].Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}
