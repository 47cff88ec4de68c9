package picklist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glaze-ui/glaze/event"
	"github.com/glaze-ui/glaze/layout"
	"github.com/glaze-ui/glaze/widget"
)

type pickedMsg struct{ option string }

func fruitList() *PickList {
	return New("fruit", "apple", "banana", "cherry").
		OnSelect(func(o string) tea.Msg { return pickedMsg{option: o} })
}

func buildList(p *PickList) (*widget.Tree, layout.Node) {
	tree := widget.NewTree(p)
	node := p.Layout(tree, layout.NewLimits(40, 10))
	return tree, node
}

func dispatch(p *PickList, tree *widget.Tree, node layout.Node, ev event.Event) (event.Status, []tea.Msg) {
	shell := widget.NewShell()
	status := p.Update(tree, ev, node, event.Cursor{}, shell)
	return status, shell.Drain()
}

func pressKey(p *PickList, tree *widget.Tree, node layout.Node, name string) (event.Status, []tea.Msg) {
	return dispatch(p, tree, node, event.KeyPressed{Key: event.Key{Name: name}})
}

func typeRunes(p *PickList, tree *widget.Tree, node layout.Node, s string) {
	for _, r := range s {
		dispatch(p, tree, node, event.KeyPressed{Key: event.Key{Name: string(r), Runes: []rune{r}}})
	}
}

func focusList(t *testing.T, p *PickList, tree *widget.Tree, node layout.Node) layout.Node {
	t.Helper()
	widget.Operate(p, tree, node, widget.NewFocusNext())
	if !tree.State.(*state).isFocused {
		t.Fatalf("expected list focused")
	}
	return p.Layout(tree, layout.NewLimits(40, 10))
}

func TestFocusExpandsOptionList(t *testing.T) {
	p := fruitList()
	tree, node := buildList(p)
	if node.Bounds.Height != 1 {
		t.Fatalf("expected collapsed list height 1, got %d", node.Bounds.Height)
	}

	node = focusList(t, p, tree, node)
	if node.Bounds.Height != 4 {
		t.Fatalf("expected expanded height 4, got %d", node.Bounds.Height)
	}
}

func TestEnterChoosesHighlightedOption(t *testing.T) {
	p := fruitList()
	tree, node := buildList(p)
	node = focusList(t, p, tree, node)

	pressKey(p, tree, node, "down")
	status, msgs := pressKey(p, tree, node, "enter")
	if status != event.Captured {
		t.Fatalf("expected enter captured")
	}
	if len(msgs) != 1 || msgs[0] != (pickedMsg{option: "banana"}) {
		t.Fatalf("expected banana chosen, got %v", msgs)
	}
	if got := p.Selected(tree); got != "banana" {
		t.Fatalf("expected selection recorded, got %q", got)
	}
}

func TestTypingFiltersWithFuzzyMatch(t *testing.T) {
	p := fruitList()
	tree, node := buildList(p)
	node = focusList(t, p, tree, node)

	typeRunes(p, tree, node, "an")
	options := p.filtered(tree.State.(*state))
	if len(options) != 1 || options[0] != "banana" {
		t.Fatalf("expected fuzzy filter to keep banana, got %v", options)
	}

	_, msgs := pressKey(p, tree, node, "enter")
	if len(msgs) != 1 || msgs[0] != (pickedMsg{option: "banana"}) {
		t.Fatalf("expected filtered choice, got %v", msgs)
	}
	if len(tree.State.(*state).filter) != 0 {
		t.Fatalf("expected filter cleared after choosing")
	}
}

func TestBackspaceAndEscEditTheFilter(t *testing.T) {
	p := fruitList()
	tree, node := buildList(p)
	node = focusList(t, p, tree, node)

	typeRunes(p, tree, node, "ch")
	pressKey(p, tree, node, "backspace")
	if got := string(tree.State.(*state).filter); got != "c" {
		t.Fatalf("expected backspace to pop one rune, got %q", got)
	}

	status, _ := pressKey(p, tree, node, "esc")
	if status != event.Captured {
		t.Fatalf("expected esc with a filter to capture")
	}
	if len(tree.State.(*state).filter) != 0 {
		t.Fatalf("expected esc to clear the filter")
	}

	status, _ = pressKey(p, tree, node, "esc")
	if status != event.Ignored {
		t.Fatalf("expected esc without a filter to be ignored")
	}
}

func TestClickFocusesThenSelectsOptionRow(t *testing.T) {
	p := fruitList()
	tree, node := buildList(p)

	status, _ := dispatch(p, tree, node, event.PointerPressed{Pos: layout.Point{X: 1, Y: 0}})
	if status != event.Captured {
		t.Fatalf("expected first click to focus the list")
	}
	if got := p.Selected(tree); got != "" {
		t.Fatalf("expected no selection from the focusing click, got %q", got)
	}

	node = p.Layout(tree, layout.NewLimits(40, 10))
	_, msgs := dispatch(p, tree, node, event.PointerPressed{Pos: layout.Point{X: 1, Y: 2}})
	if len(msgs) != 1 || msgs[0] != (pickedMsg{option: "banana"}) {
		t.Fatalf("expected click on second row to choose banana, got %v", msgs)
	}
}

func TestPressOutsideBlurs(t *testing.T) {
	p := fruitList()
	tree, node := buildList(p)
	node = focusList(t, p, tree, node)

	status, _ := dispatch(p, tree, node, event.PointerPressed{Pos: layout.Point{X: 39, Y: 9}})
	if status != event.Ignored {
		t.Fatalf("expected outside press ignored")
	}
	if tree.State.(*state).isFocused {
		t.Fatalf("expected focus cleared")
	}
}

func TestDisabledListRefusesFocus(t *testing.T) {
	p := New("fruit", "apple")
	tree, node := buildList(p)

	widget.Operate(p, tree, node, widget.NewFocusNext())
	if tree.State.(*state).isFocused {
		t.Fatalf("expected disabled list to refuse focus")
	}
}
