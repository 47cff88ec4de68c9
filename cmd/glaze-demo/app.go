package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glaze-ui/glaze/internal/config"
	"github.com/glaze-ui/glaze/internal/logging/events"
	"github.com/glaze-ui/glaze/program"
	"github.com/glaze-ui/glaze/task"
	"github.com/glaze-ui/glaze/widget"
	"github.com/glaze-ui/glaze/widget/button"
	"github.com/glaze-ui/glaze/widget/picklist"
	"github.com/glaze-ui/glaze/widget/textinput"
)

// Application messages published by the widgets.
type (
	incrementMsg    struct{}
	decrementMsg    struct{}
	resetMsg        struct{}
	nameChangedMsg  struct{ value string }
	emailChangedMsg struct{ value string }
	submittedMsg    struct{ value string }
	accentPickedMsg struct{ value string }
	focusChangedMsg struct {
		name    string
		focused bool
	}
)

// demo is the application model wrapping the widget-tree host.
type demo struct {
	engine *program.Model

	count   int
	name    string
	email   string
	accent  string
	focused string
}

func newDemo(cfg config.Config) *demo {
	d := &demo{accent: "violet"}
	opts := []program.Option{}
	if cfg.Width > 0 && cfg.Height > 0 {
		opts = append(opts, program.WithSize(cfg.Width, cfg.Height))
	}
	d.engine = program.New(d.buildTree(), opts...)
	return d
}

// buildTree rebuilds the view description from current application state.
// Explicit names keep widget identity stable across rebuilds.
func (d *demo) buildTree() widget.Widget {
	reset := button.Label("reset")
	if d.count != 0 {
		reset.OnPress(resetMsg{})
	}

	return widget.NewColumn(
		widget.NewText("glaze demo — tab cycles focus, ctrl+c quits"),
		widget.NewText(""),
		textinput.New("name").
			ID(widget.Named("name")).
			Value(d.name).
			OnChange(func(v string) tea.Msg { return nameChangedMsg{value: v} }).
			OnSubmit(func(v string) tea.Msg { return submittedMsg{value: v} }).
			OnFocus(focusChangedMsg{name: "name", focused: true}).
			OnBlur(focusChangedMsg{name: "name", focused: false}),
		textinput.New("email").
			ID(widget.Named("email")).
			Value(d.email).
			OnChange(func(v string) tea.Msg { return emailChangedMsg{value: v} }).
			OnSubmit(func(v string) tea.Msg { return submittedMsg{value: v} }).
			OnFocus(focusChangedMsg{name: "email", focused: true}).
			OnBlur(focusChangedMsg{name: "email", focused: false}),
		widget.NewText(""),
		widget.NewRow(
			button.Label("+1").
				ID(widget.Named("increment")).
				OnPress(incrementMsg{}).
				OnFocus(focusChangedMsg{name: "increment", focused: true}).
				OnBlur(focusChangedMsg{name: "increment", focused: false}),
			button.Label("-1").
				ID(widget.Named("decrement")).
				OnPress(decrementMsg{}).
				OnFocus(focusChangedMsg{name: "decrement", focused: true}).
				OnBlur(focusChangedMsg{name: "decrement", focused: false}),
			reset.
				ID(widget.Named("reset")).
				OnFocus(focusChangedMsg{name: "reset", focused: true}).
				OnBlur(focusChangedMsg{name: "reset", focused: false}),
		).Spacing(1),
		widget.NewText(""),
		picklist.New("accent", "violet", "teal", "amber", "rose").
			ID(widget.Named("accent")).
			OnSelect(func(v string) tea.Msg { return accentPickedMsg{value: v} }),
		widget.NewText(""),
		widget.NewText(d.statusLine()),
	).Spacing(0)
}

func (d *demo) statusLine() string {
	focused := d.focused
	if focused == "" {
		focused = "none"
	}
	return fmt.Sprintf("count=%d accent=%s focus=%s", d.count, d.accent, focused)
}

// Init implements tea.Model.
func (d *demo) Init() tea.Cmd {
	return d.engine.Init()
}

// Update implements tea.Model. Application messages update demo state and
// rebuild the view; everything else goes to the widget host.
func (d *demo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case incrementMsg:
		d.count++
		events.Widget.Activated("button", msg)
	case decrementMsg:
		d.count--
		events.Widget.Activated("button", msg)
	case resetMsg:
		d.count = 0
		events.Widget.Activated("button", msg)
	case nameChangedMsg:
		d.name = msg.value
	case emailChangedMsg:
		d.email = msg.value
	case submittedMsg:
		// Enter in a field behaves like Tab: move on to the next one.
		return d, d.engine.Perform(task.FocusNext(nil))
	case accentPickedMsg:
		d.accent = msg.value
		events.Widget.Activated("picklist", msg)
	case focusChangedMsg:
		if msg.focused {
			d.focused = msg.name
			events.Focus.Gained(msg.name)
		} else {
			events.Focus.Lost(msg.name)
			if d.focused == msg.name {
				d.focused = ""
			}
		}
	default:
		_, cmd := d.engine.Update(msg)
		d.engine.SetRoot(d.buildTree())
		return d, cmd
	}

	d.engine.SetRoot(d.buildTree())
	return d, nil
}

// View implements tea.Model.
func (d *demo) View() string {
	return d.engine.View()
}
