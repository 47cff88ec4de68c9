package widget

// Focusable is the capability a widget's state exposes to participate in
// keyboard-focus traversal. The operation protocol manipulates focus through
// this interface only, never through concrete widget types. Widgets whose
// state does not implement it are invisible to focus operations.
//
// Focus must refuse to set the flag while the widget is disabled; Unfocus
// always succeeds. Both are idempotent.
type Focusable interface {
	IsFocused() bool
	Focus()
	Unfocus()
}
