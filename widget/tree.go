package widget

import "reflect"

// Tree is the state store for one widget and its children. The host owns
// the root Tree and reconciles it against each rebuilt description; slots
// keep their state as long as the widget at their position keeps the same
// state type, and are reset otherwise.
type Tree struct {
	tag      reflect.Type
	State    any
	Children []*Tree
}

// NewTree builds a state tree for a widget description.
func NewTree(w Widget) *Tree {
	state := w.State()
	t := &Tree{
		tag:   stateTag(state),
		State: state,
	}
	for _, c := range w.Children() {
		t.Children = append(t.Children, NewTree(c))
	}
	return t
}

// Diff reconciles this tree with a new description. When the widget's state
// type changed the slot is reset, discarding the old state and children.
func (t *Tree) Diff(w Widget) {
	fresh := w.State()
	if tag := stateTag(fresh); tag != t.tag {
		t.tag = tag
		t.State = fresh
		t.Children = nil
	}
	w.Diff(t)
}

// DiffChildren reconciles the child slots positionally: surplus slots are
// dropped, matching slots diffed in place, and new slots appended.
func (t *Tree) DiffChildren(children []Widget) {
	if len(t.Children) > len(children) {
		t.Children = t.Children[:len(children)]
	}
	for i, c := range children {
		if i < len(t.Children) {
			t.Children[i].Diff(c)
			continue
		}
		t.Children = append(t.Children, NewTree(c))
	}
}

func stateTag(state any) reflect.Type {
	if state == nil {
		return nil
	}
	return reflect.TypeOf(state)
}
