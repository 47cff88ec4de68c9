package textinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glaze-ui/glaze/event"
	"github.com/glaze-ui/glaze/layout"
	"github.com/glaze-ui/glaze/widget"
)

type changedMsg struct{ value string }
type submittedMsg struct{ value string }
type blurredMsg struct{}

func editable() *TextInput {
	return New("type here").OnChange(func(v string) tea.Msg { return changedMsg{value: v} })
}

func buildInput(ti *TextInput) (*widget.Tree, layout.Node) {
	tree := widget.NewTree(ti)
	node := ti.Layout(tree, layout.NewLimits(40, 5))
	return tree, node
}

func dispatch(ti *TextInput, tree *widget.Tree, node layout.Node, ev event.Event) (event.Status, []tea.Msg) {
	shell := widget.NewShell()
	status := ti.Update(tree, ev, node, event.Cursor{}, shell)
	return status, shell.Drain()
}

func typeString(ti *TextInput, tree *widget.Tree, node layout.Node, s string) []tea.Msg {
	var msgs []tea.Msg
	for _, r := range s {
		k := event.KeyPressed{Key: event.Key{Name: string(r), Runes: []rune{r}}}
		_, out := dispatch(ti, tree, node, k)
		msgs = append(msgs, out...)
	}
	return msgs
}

func pressKey(ti *TextInput, tree *widget.Tree, node layout.Node, name string) (event.Status, []tea.Msg) {
	return dispatch(ti, tree, node, event.KeyPressed{Key: event.Key{Name: name}})
}

func focusInput(t *testing.T, ti *TextInput, tree *widget.Tree, node layout.Node) {
	t.Helper()
	widget.Operate(ti, tree, node, widget.NewFocusNext())
	if !tree.State.(*state).isFocused {
		t.Fatalf("expected field focused")
	}
}

func TestTypingEditsBufferAndPublishesChanges(t *testing.T) {
	ti := editable()
	tree, node := buildInput(ti)
	focusInput(t, ti, tree, node)

	msgs := typeString(ti, tree, node, "hi")
	if got := ti.CurrentValue(tree); got != "hi" {
		t.Fatalf("expected buffer %q, got %q", "hi", got)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected a change message per edit, got %v", msgs)
	}
	if msgs[0] != (changedMsg{value: "h"}) || msgs[1] != (changedMsg{value: "hi"}) {
		t.Fatalf("expected incremental change values, got %v", msgs)
	}
}

func TestEnterSubmitsCurrentValue(t *testing.T) {
	ti := editable().OnSubmit(func(v string) tea.Msg { return submittedMsg{value: v} })
	tree, node := buildInput(ti)
	focusInput(t, ti, tree, node)
	typeString(ti, tree, node, "go")

	status, msgs := pressKey(ti, tree, node, "enter")
	if status != event.Captured {
		t.Fatalf("expected enter captured")
	}
	if len(msgs) != 1 || msgs[0] != (submittedMsg{value: "go"}) {
		t.Fatalf("expected submission with current value, got %v", msgs)
	}
}

func TestCaretMovementAndInsertion(t *testing.T) {
	ti := editable()
	tree, node := buildInput(ti)
	focusInput(t, ti, tree, node)

	typeString(ti, tree, node, "ab")
	pressKey(ti, tree, node, "left")
	typeString(ti, tree, node, "c")
	if got := ti.CurrentValue(tree); got != "acb" {
		t.Fatalf("expected insertion at caret, got %q", got)
	}

	pressKey(ti, tree, node, "home")
	typeString(ti, tree, node, "x")
	if got := ti.CurrentValue(tree); got != "xacb" {
		t.Fatalf("expected insertion at start, got %q", got)
	}

	pressKey(ti, tree, node, "end")
	typeString(ti, tree, node, "y")
	if got := ti.CurrentValue(tree); got != "xacby" {
		t.Fatalf("expected insertion at end, got %q", got)
	}
}

func TestDeletionKeys(t *testing.T) {
	ti := editable()
	tree, node := buildInput(ti)
	focusInput(t, ti, tree, node)
	typeString(ti, tree, node, "hello world")

	pressKey(ti, tree, node, "ctrl+w")
	if got := ti.CurrentValue(tree); got != "hello " {
		t.Fatalf("expected word deleted, got %q", got)
	}

	pressKey(ti, tree, node, "backspace")
	if got := ti.CurrentValue(tree); got != "hello" {
		t.Fatalf("expected trailing space deleted, got %q", got)
	}

	pressKey(ti, tree, node, "ctrl+u")
	if got := ti.CurrentValue(tree); got != "" {
		t.Fatalf("expected buffer killed to start, got %q", got)
	}
}

func TestClickPositionsCaret(t *testing.T) {
	ti := editable().Value("hello")
	tree, node := buildInput(ti)

	status, _ := dispatch(ti, tree, node, event.PointerPressed{Pos: layout.Point{X: 2, Y: 0}})
	if status != event.Captured {
		t.Fatalf("expected press inside bounds to capture")
	}
	typeString(ti, tree, node, "X")
	if got := ti.CurrentValue(tree); got != "heXllo" {
		t.Fatalf("expected caret at clicked column, got %q", got)
	}
}

func TestPressOutsideBlursWithoutEditing(t *testing.T) {
	ti := editable().OnBlur(blurredMsg{}).Value("keep")
	tree, node := buildInput(ti)
	focusInput(t, ti, tree, node)

	status, msgs := dispatch(ti, tree, node, event.PointerPressed{Pos: layout.Point{X: 30, Y: 4}})
	if status != event.Ignored {
		t.Fatalf("expected outside press ignored")
	}
	if len(msgs) != 1 {
		t.Fatalf("expected one blur message, got %v", msgs)
	}
	if _, ok := msgs[0].(blurredMsg); !ok {
		t.Fatalf("expected blur message, got %T", msgs[0])
	}
	if got := ti.CurrentValue(tree); got != "keep" {
		t.Fatalf("expected buffer untouched, got %q", got)
	}
}

func TestDisabledFieldRefusesFocusAndInput(t *testing.T) {
	ti := New("read only")
	tree, node := buildInput(ti)

	widget.Operate(ti, tree, node, widget.NewFocusNext())
	if tree.State.(*state).isFocused {
		t.Fatalf("expected disabled field to refuse focus")
	}

	status, msgs := dispatch(ti, tree, node, event.PointerPressed{Pos: layout.Point{X: 1, Y: 0}})
	if status != event.Ignored || len(msgs) != 0 {
		t.Fatalf("expected disabled field to ignore presses, got status=%v msgs=%v", status, msgs)
	}
}

func TestWindowKeepsCaretVisible(t *testing.T) {
	value := []rune("abcdefgh")
	visible, caret := window(value, len(value), 5)
	if visible != "efgh" {
		t.Fatalf("expected window scrolled to the caret, got %q", visible)
	}
	if caret != 4 {
		t.Fatalf("expected caret column 4, got %d", caret)
	}

	visible, caret = window(value, 0, 5)
	if visible != "abcde" || caret != 0 {
		t.Fatalf("expected window anchored at start, got %q col %d", visible, caret)
	}
}
