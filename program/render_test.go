package program

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glaze-ui/glaze/draw"
	"github.com/glaze-ui/glaze/internal/testutil"
	"github.com/glaze-ui/glaze/widget"
	"github.com/glaze-ui/glaze/widget/button"
	"github.com/glaze-ui/glaze/widget/textinput"
)

func TestRenderBasicTree(t *testing.T) {
	root := widget.NewColumn(
		widget.NewText("Title"),
		button.Label("OK").OnPress(oneMsg{}),
		textinput.New("type here").OnChange(func(v string) tea.Msg { return focusMsg{name: v} }),
	)
	m := New(root, WithSize(20, 3))

	buf := draw.NewBuffer(m.width, m.height)
	m.root.Draw(m.tree, buf, m.styles, m.node, m.cursor)

	lines := make([]string, 0, buf.Height())
	for y := 0; y < buf.Height(); y++ {
		lines = append(lines, buf.Line(y))
	}
	testutil.AssertGolden(t, "render_basic.golden", strings.Join(lines, "\n"))
}
