// Package widget defines the toolkit's core contracts: the Widget tree
// protocol, per-instance state storage, stable identities, the Focusable
// capability and the tree-wide operation protocol that acts on it.
//
// Widgets are cheap descriptions rebuilt every frame; their runtime state
// lives in a Tree owned by the host and reconciled across rebuilds. Input
// events are dispatched top-down, children before parents, and every
// "failure" in the package is a no-op rather than an error.
package widget

import (
	"github.com/glaze-ui/glaze/draw"
	"github.com/glaze-ui/glaze/event"
	"github.com/glaze-ui/glaze/layout"
	"github.com/glaze-ui/glaze/theme"
)

// Widget is the contract every node in the view hierarchy implements.
type Widget interface {
	// State returns a fresh state value for a new tree slot, or nil for
	// stateless widgets.
	State() any

	// Children returns the child descriptions in declared order.
	Children() []Widget

	// Diff reconciles an existing state tree with this description.
	Diff(t *Tree)

	// Layout resolves geometry within the given limits. The returned
	// node is positioned at the origin; parents translate it.
	Layout(t *Tree, limits layout.Limits) layout.Node

	// Update handles one input event. Interactive widgets forward the
	// event to their content first and report Captured as soon as any
	// child captures it.
	Update(t *Tree, ev event.Event, node layout.Node, cur event.Cursor, shell *Shell) event.Status

	// Operate applies a tree-wide operation to this subtree.
	Operate(t *Tree, node layout.Node, op Operation)

	// Draw paints the widget. Drawing derives the visual status from
	// current state and must not mutate it.
	Draw(t *Tree, surface draw.Surface, styles theme.Styles, node layout.Node, cur event.Cursor)
}
