package widget

import "github.com/glaze-ui/glaze/layout"

// Operation is a tree-wide query or mutation executed as one synchronous
// traversal. Containers forward the operation to each child in declared
// order; leaf widgets that expose Focusable state report themselves. The
// walk is depth-first and pre-order, so the visit order matches the visual
// order of the tree.
type Operation interface {
	// Container is invoked for every container node; operate recurses
	// into its children.
	Container(id *ID, bounds layout.Rect, operate func(Operation))

	// Focusable is invoked for every widget exposing focusable state.
	Focusable(state Focusable, id *ID)
}

// finisher is implemented by operations that collect during the walk and
// apply their effect afterwards.
type finisher interface {
	finish()
}

// Operate applies one operation to the tree rooted at root and returns once
// the operation has fully completed. It is the single entry point the
// application uses to run focus operations out-of-band from event dispatch.
func Operate(root Widget, tree *Tree, node layout.Node, op Operation) {
	root.Operate(tree, node, op)
	if f, ok := op.(finisher); ok {
		f.finish()
	}
}

type focusEntry struct {
	state Focusable
	id    *ID
}

// collector gathers the focusable widgets in traversal order. The cycling
// operations embed it and act on the collected order once the walk is done,
// which is what makes reverse stepping and wraparound possible.
type collector struct {
	entries []focusEntry
}

func (c *collector) Container(_ *ID, _ layout.Rect, operate func(Operation)) {
	operate(c)
}

func (c *collector) Focusable(state Focusable, id *ID) {
	c.entries = append(c.entries, focusEntry{state: state, id: id})
}

// FocusNext moves keyboard focus to the next focusable widget in traversal
// order, wrapping around past the last one. Disabled widgets are skipped:
// the step verifies that Focus took effect and keeps advancing past any
// widget that refused it. With no focusable widgets the operation is a
// no-op; with no current focus the first accepting widget is chosen.
type FocusNext struct {
	collector
}

// NewFocusNext returns a FocusNext operation.
func NewFocusNext() *FocusNext { return &FocusNext{} }

func (op *FocusNext) finish() { cycleFocus(op.entries, 1) }

// FocusPrevious is the reverse of FocusNext: it steps backward through the
// traversal order, wrapping around past the first widget.
type FocusPrevious struct {
	collector
}

// NewFocusPrevious returns a FocusPrevious operation.
func NewFocusPrevious() *FocusPrevious { return &FocusPrevious{} }

func (op *FocusPrevious) finish() { cycleFocus(op.entries, -1) }

// cycleFocus moves focus by step through entries. At most one entry is
// focused when it returns.
func cycleFocus(entries []focusEntry, step int) {
	n := len(entries)
	if n == 0 {
		return
	}

	current := -1
	for i, e := range entries {
		if e.state.IsFocused() {
			current = i
			break
		}
	}
	for _, e := range entries {
		e.state.Unfocus()
	}

	start := current + step
	if current == -1 && step < 0 {
		start = n - 1
	}
	for k := 0; k < n; k++ {
		idx := ((start+k*step)%n + n) % n
		entries[idx].state.Focus()
		if entries[idx].state.IsFocused() {
			return
		}
	}
}

// FindFocused locates the widget currently holding keyboard focus. Run it
// with Operate, then read Result.
type FindFocused struct {
	id    ID
	found bool
}

// NewFindFocused returns a FindFocused operation.
func NewFindFocused() *FindFocused { return &FindFocused{} }

// Container implements Operation.
func (op *FindFocused) Container(_ *ID, _ layout.Rect, operate func(Operation)) {
	operate(op)
}

// Focusable implements Operation.
func (op *FindFocused) Focusable(state Focusable, id *ID) {
	if op.found || !state.IsFocused() {
		return
	}
	op.found = true
	if id != nil {
		op.id = *id
	}
}

// Result returns the identity of the focused widget, if any.
func (op *FindFocused) Result() (ID, bool) {
	return op.id, op.found
}

// FocusID focuses the widget with the given identity. With no match, or when
// the target refuses focus because it is disabled, existing focus is left
// untouched.
type FocusID struct {
	collector
	target ID
}

// NewFocusID returns a FocusID operation for the identity.
func NewFocusID(id ID) *FocusID { return &FocusID{target: id} }

func (op *FocusID) finish() {
	var match *focusEntry
	for i := range op.entries {
		e := &op.entries[i]
		if e.id != nil && *e.id == op.target {
			match = e
			break
		}
	}
	if match == nil {
		return
	}
	match.state.Focus()
	if !match.state.IsFocused() {
		return
	}
	for i := range op.entries {
		e := &op.entries[i]
		if e != match {
			e.state.Unfocus()
		}
	}
}
