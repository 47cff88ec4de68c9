// Package picklist provides a focus-aware option selector. While focused it
// expands to show its options; typing narrows them with fuzzy matching and
// Enter publishes the selection message. A list without a selection handler
// is disabled.
package picklist

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/glaze-ui/glaze/draw"
	"github.com/glaze-ui/glaze/event"
	"github.com/glaze-ui/glaze/layout"
	"github.com/glaze-ui/glaze/theme"
	"github.com/glaze-ui/glaze/widget"
)

const (
	defaultWidth      = 24
	defaultMaxVisible = 5
)

// PickList is a focus-aware option selector.
type PickList struct {
	options     []string
	placeholder string
	onSelect    func(option string) tea.Msg
	onFocus     tea.Msg
	onBlur      tea.Msg
	id          widget.ID
	width       int
	maxVisible  int
}

// New creates a pick list over the given options with a unique identity.
func New(placeholder string, options ...string) *PickList {
	return &PickList{
		options:     options,
		placeholder: placeholder,
		id:          widget.NewUnique(),
		width:       defaultWidth,
		maxVisible:  defaultMaxVisible,
	}
}

// OnSelect sets the message builder invoked when an option is chosen.
// Until a selection handler is set the list is disabled.
func (p *PickList) OnSelect(fn func(option string) tea.Msg) *PickList {
	p.onSelect = fn
	return p
}

// OnFocus sets the message published when the list gains focus.
func (p *PickList) OnFocus(msg tea.Msg) *PickList {
	p.onFocus = msg
	return p
}

// OnBlur sets the message published when the list loses focus.
func (p *PickList) OnBlur(msg tea.Msg) *PickList {
	p.onBlur = msg
	return p
}

// ID sets an explicit identity.
func (p *PickList) ID(id widget.ID) *PickList {
	p.id = id
	return p
}

// Width sets the rendered width in cells.
func (p *PickList) Width(w int) *PickList {
	if w > 0 {
		p.width = w
	}
	return p
}

// MaxVisible caps how many options are shown while expanded.
func (p *PickList) MaxVisible(n int) *PickList {
	if n > 0 {
		p.maxVisible = n
	}
	return p
}

type state struct {
	isFocused  bool
	wasFocused bool
	status     theme.StatusKind
	selected   string
	filter     []rune
	highlight  int
}

// IsFocused implements widget.Focusable.
func (s *state) IsFocused() bool { return s.isFocused }

// Focus implements widget.Focusable; disabled lists refuse focus.
func (s *state) Focus() {
	if s.status != theme.StatusDisabled {
		s.isFocused = true
	}
}

// Unfocus implements widget.Focusable.
func (s *state) Unfocus() { s.isFocused = false }

// State implements widget.Widget.
func (p *PickList) State() any {
	return &state{status: theme.StatusActive}
}

// Children implements widget.Widget.
func (p *PickList) Children() []widget.Widget { return nil }

// Diff implements widget.Widget.
func (p *PickList) Diff(t *widget.Tree) {
	t.DiffChildren(nil)
}

func (p *PickList) disabled() bool {
	return p.onSelect == nil
}

// filtered returns the options matching the current filter, best match
// first. An empty filter keeps the declared order.
func (p *PickList) filtered(st *state) []string {
	if len(st.filter) == 0 {
		return p.options
	}
	ranks := fuzzy.RankFindFold(string(st.filter), p.options)
	sort.Sort(ranks)
	matches := make([]string, len(ranks))
	for i, r := range ranks {
		matches[i] = r.Target
	}
	return matches
}

// Layout implements widget.Widget. A focused list grows to show options.
func (p *PickList) Layout(t *widget.Tree, limits layout.Limits) layout.Node {
	st := t.State.(*state)
	height := 1
	if st.isFocused {
		height += min(len(p.filtered(st)), p.maxVisible)
	}
	return layout.NewNode(layout.Size{
		Width:  limits.ClampWidth(p.width),
		Height: limits.ClampHeight(height),
	})
}

// Update implements widget.Widget.
func (p *PickList) Update(t *widget.Tree, ev event.Event, node layout.Node, cur event.Cursor, shell *widget.Shell) event.Status {
	st := t.State.(*state)

	if st.isFocused != st.wasFocused {
		if st.isFocused {
			shell.Publish(p.onFocus)
		} else {
			shell.Publish(p.onBlur)
		}
		st.wasFocused = st.isFocused
	}

	switch ev := ev.(type) {
	case event.PointerPressed, event.TouchBegan:
		if p.disabled() {
			break
		}
		pos := pressPosition(ev)
		if node.Bounds.Contains(pos) {
			st.status = theme.StatusPressed
			if !st.isFocused {
				shell.Publish(p.onFocus)
				st.isFocused = true
				st.wasFocused = true
				return event.Captured
			}
			if row := pos.Y - node.Bounds.Y - 1; row >= 0 {
				if options := p.filtered(st); row < len(options) {
					st.highlight = row
					p.choose(st, options[row], shell)
				}
			}
			return event.Captured
		}
		if st.isFocused {
			shell.Publish(p.onBlur)
		}
		st.isFocused = false
		st.wasFocused = false

	case event.PointerReleased, event.TouchEnded:
		if p.disabled() || st.status != theme.StatusPressed {
			break
		}
		st.status = theme.StatusActive
		return event.Captured

	case event.TouchCancelled:
		st.status = theme.StatusActive

	case event.KeyPressed:
		if p.disabled() || !st.isFocused {
			break
		}
		return p.handleKey(st, ev.Key, shell)
	}

	return event.Ignored
}

func (p *PickList) handleKey(st *state, k event.Key, shell *widget.Shell) event.Status {
	options := p.filtered(st)

	if k.IsText() && k.Name != " " {
		st.filter = append(st.filter, k.Runes...)
		st.highlight = 0
		return event.Captured
	}

	switch k.Name {
	case "up":
		if st.highlight > 0 {
			st.highlight--
		}
		return event.Captured
	case "down":
		if st.highlight < len(options)-1 {
			st.highlight++
		}
		return event.Captured
	case "enter", " ":
		if st.highlight < len(options) {
			p.choose(st, options[st.highlight], shell)
		}
		return event.Captured
	case "backspace":
		if len(st.filter) > 0 {
			st.filter = st.filter[:len(st.filter)-1]
			st.highlight = 0
		}
		return event.Captured
	case "esc":
		if len(st.filter) > 0 {
			st.filter = nil
			st.highlight = 0
			return event.Captured
		}
	}

	return event.Ignored
}

func (p *PickList) choose(st *state, option string, shell *widget.Shell) {
	st.selected = option
	st.filter = nil
	st.highlight = 0
	if p.onSelect != nil {
		shell.Publish(p.onSelect(option))
	}
}

// Selected returns the chosen option held in the given state tree.
func (p *PickList) Selected(t *widget.Tree) string {
	if st, ok := t.State.(*state); ok {
		return st.selected
	}
	return ""
}

// Operate implements widget.Widget.
func (p *PickList) Operate(t *widget.Tree, node layout.Node, op widget.Operation) {
	st := t.State.(*state)
	if p.disabled() {
		st.status = theme.StatusDisabled
	} else if st.status == theme.StatusDisabled {
		st.status = theme.StatusActive
	}
	op.Focusable(st, &p.id)
}

// Draw implements widget.Widget.
func (p *PickList) Draw(t *widget.Tree, surface draw.Surface, styles theme.Styles, node layout.Node, cur event.Cursor) {
	st := t.State.(*state)

	var status theme.Status
	switch {
	case p.disabled():
		status = theme.Disabled()
	case st.isFocused:
		status = theme.Focused(cur.Over(node.Bounds))
	default:
		status = theme.Active()
	}
	style := styles.Input(status)

	header := layout.Rect{X: node.Bounds.X, Y: node.Bounds.Y, Width: node.Bounds.Width, Height: 1}
	surface.FillRect(header, style)

	label := st.selected
	if len(st.filter) > 0 {
		label = "/" + string(st.filter)
		if styles.ListFilter != nil {
			style = *styles.ListFilter
		}
	} else if label == "" {
		label = p.placeholder
		if styles.InputPlaceholder != nil && !p.disabled() {
			style = *styles.InputPlaceholder
		}
	}
	surface.WriteString(node.Bounds.X, node.Bounds.Y, clipText("▾ "+label, node.Bounds.Width), style)

	if !st.isFocused {
		return
	}
	options := p.filtered(st)
	for i := 0; i < len(options) && i < node.Bounds.Height-1; i++ {
		row := layout.Rect{X: node.Bounds.X, Y: node.Bounds.Y + 1 + i, Width: node.Bounds.Width, Height: 1}
		itemStyle := styles.List(theme.Active())
		if i == st.highlight {
			itemStyle = styles.List(theme.Focused(false))
		}
		surface.FillRect(row, itemStyle)
		surface.WriteString(row.X, row.Y, clipText("  "+options[i], row.Width), itemStyle)
	}
}

func clipText(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width < 0 {
		width = 0
	}
	return string(runes[:width])
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
