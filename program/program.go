// Package program hosts a widget tree inside a Bubble Tea program. The
// Model owns the root widget description, its state tree and resolved
// layout; it converts incoming Bubble Tea messages to toolkit events, runs
// dispatch passes, drains widget messages back to the application and
// interprets tasks against the tree.
package program

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glaze-ui/glaze/draw"
	"github.com/glaze-ui/glaze/event"
	"github.com/glaze-ui/glaze/internal/logging/events"
	"github.com/glaze-ui/glaze/layout"
	"github.com/glaze-ui/glaze/task"
	"github.com/glaze-ui/glaze/theme"
	"github.com/glaze-ui/glaze/widget"
)

// KeyMap holds the focus-cycling and quit bindings the host intercepts
// before events reach the tree.
type KeyMap struct {
	FocusNext     key.Binding
	FocusPrevious key.Binding
	Quit          key.Binding
}

// DefaultKeyMap binds Tab, Shift+Tab and Ctrl+C.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		FocusPrevious: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) { m.keys = km }
}

// WithStyles replaces the default style catalog.
func WithStyles(styles theme.Styles) Option {
	return func(m *Model) { m.styles = styles }
}

// WithSize fixes the viewport instead of tracking window-size messages.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width = width
		m.height = height
		m.fixedSize = true
	}
}

// Model implements tea.Model around a widget tree.
type Model struct {
	root      widget.Widget
	tree      *widget.Tree
	node      layout.Node
	cursor    event.Cursor
	keys      KeyMap
	styles    theme.Styles
	width     int
	height    int
	fixedSize bool
}

// New creates a host model for the given root widget.
func New(root widget.Widget, opts ...Option) *Model {
	m := &Model{
		root:   root,
		tree:   widget.NewTree(root),
		keys:   DefaultKeyMap(),
		styles: theme.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.relayout()
	return m
}

// SetRoot swaps in a rebuilt widget tree, reconciling existing state by
// position and state type. The application calls this after its own state
// changes reshape the view.
func (m *Model) SetRoot(root widget.Widget) {
	m.root = root
	m.tree.Diff(root)
	m.relayout()
}

// Tree exposes the state tree for inspection.
func (m *Model) Tree() *widget.Tree { return m.tree }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.fixedSize {
			m.width = msg.Width
			m.height = msg.Height
			m.relayout()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.FocusNext):
			return m, m.Perform(task.FocusNext(nil))
		case key.Matches(msg, m.keys.FocusPrevious):
			return m, m.Perform(task.FocusPrevious(nil))
		}
		return m, m.dispatch(event.FromKey(msg))

	case tea.MouseMsg:
		ev, cur := event.FromMouse(msg)
		m.cursor = cur
		if ev == nil {
			return m, nil
		}
		return m, m.dispatch(ev)
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	buf := draw.NewBuffer(m.width, m.height)
	m.root.Draw(m.tree, buf, m.styles, m.node, m.cursor)
	return buf.Render()
}

// Perform interprets a task against the tree and returns the command that
// forwards the task's messages plus any focus notifications the operations
// caused. A refresh pass follows the task so transitions surface through
// the widgets' usual notification point.
func (m *Model) Perform(t task.Task) tea.Cmd {
	msgs := task.Perform(t, m.runOperation)
	shell := widget.NewShell()
	for _, msg := range msgs {
		shell.Publish(msg)
	}
	m.root.Update(m.tree, event.Refresh{}, m.node, m.cursor, shell)
	m.relayout()
	return forward(shell.Drain())
}

// FindFocused synchronously reports which widget holds focus.
func (m *Model) FindFocused() (widget.ID, bool) {
	op := widget.NewFindFocused()
	widget.Operate(m.root, m.tree, m.node, op)
	return op.Result()
}

func (m *Model) runOperation(op widget.Operation) any {
	widget.Operate(m.root, m.tree, m.node, op)
	events.Operation.Run(op)
	if r, ok := op.(interface{ Result() (widget.ID, bool) }); ok {
		if id, found := r.Result(); found {
			events.Operation.Found(id.String())
			return id
		}
	}
	return nil
}

// dispatch runs one event pass over the tree and returns the command
// forwarding the published messages.
func (m *Model) dispatch(ev event.Event) tea.Cmd {
	shell := widget.NewShell()
	m.root.Update(m.tree, ev, m.node, m.cursor, shell)
	// Focused pick lists expand, so geometry can change mid-stream.
	m.relayout()
	return forward(shell.Drain())
}

func (m *Model) relayout() {
	m.node = m.root.Layout(m.tree, layout.NewLimits(m.width, m.height))
}

// forward wraps published messages into a command preserving their order.
func forward(msgs []tea.Msg) tea.Cmd {
	switch len(msgs) {
	case 0:
		return nil
	case 1:
		msg := msgs[0]
		return func() tea.Msg { return msg }
	}
	cmds := make([]tea.Cmd, len(msgs))
	for i, msg := range msgs {
		msg := msg
		cmds[i] = func() tea.Msg { return msg }
	}
	return tea.Sequence(cmds...)
}
