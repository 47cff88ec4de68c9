// Package task provides deferred, composable units of work chaining widget
// tree operations with application continuations. Composing a task never
// executes anything; a task only runs when an interpreter drives it, and its
// steps run in the order they were composed.
package task

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glaze-ui/glaze/widget"
)

// Task is a deferred unit of work. The zero set of constructors below is
// the whole vocabulary: None, Operate, Emit, Then and Chain.
type Task interface {
	isTask()
}

type none struct{}

type operate struct {
	op widget.Operation
}

type emit struct {
	msg tea.Msg
}

type andThen struct {
	inner Task
	next  func(result any) Task
}

func (none) isTask()    {}
func (operate) isTask() {}
func (emit) isTask()    {}
func (andThen) isTask() {}

// None returns the terminal no-op task.
func None() Task { return none{} }

// Operate returns a task that runs one tree operation when interpreted.
func Operate(op widget.Operation) Task { return operate{op: op} }

// Emit returns a task that publishes an application message.
func Emit(msg tea.Msg) Task { return emit{msg: msg} }

// Then sequences a continuation after a task. The continuation receives the
// result of the preceding operation (a widget.ID for FindFocused, nil
// otherwise) and produces the follow-up task.
func Then(t Task, f func(result any) Task) Task {
	if f == nil {
		return t
	}
	return andThen{inner: t, next: f}
}

// Chain runs two tasks in order, discarding the first one's result.
func Chain(first, second Task) Task {
	return Then(first, func(any) Task { return second })
}

// FocusNext composes: focus the next focusable widget, find which widget
// ended up focused, then apply f to produce a follow-up task. f may be nil
// when the application does not care about the outcome.
func FocusNext(f func(id widget.ID, ok bool) Task) Task {
	return Chain(
		Operate(widget.NewFocusNext()),
		found(f),
	)
}

// FocusPrevious is FocusNext in the reverse direction.
func FocusPrevious(f func(id widget.ID, ok bool) Task) Task {
	return Chain(
		Operate(widget.NewFocusPrevious()),
		found(f),
	)
}

// Focus composes a task focusing the widget with the given identity.
func Focus(id widget.ID) Task {
	return Operate(widget.NewFocusID(id))
}

func found(f func(id widget.ID, ok bool) Task) Task {
	return Then(Operate(widget.NewFindFocused()), func(result any) Task {
		if f == nil {
			return None()
		}
		if id, ok := result.(widget.ID); ok {
			return f(id, true)
		}
		return f(widget.ID{}, false)
	})
}

// Perform interprets a task. The run callback executes one tree operation
// and returns its result; Perform returns the messages emitted along the
// way, in order. The final step's result is discarded.
func Perform(t Task, run func(op widget.Operation) any) []tea.Msg {
	msgs, _ := perform(t, run)
	return msgs
}

func perform(t Task, run func(op widget.Operation) any) ([]tea.Msg, any) {
	switch t := t.(type) {
	case none, nil:
		return nil, nil
	case emit:
		if t.msg == nil {
			return nil, nil
		}
		return []tea.Msg{t.msg}, nil
	case operate:
		if run == nil {
			return nil, nil
		}
		return nil, run(t.op)
	case andThen:
		msgs, result := perform(t.inner, run)
		more, final := perform(t.next(result), run)
		return append(msgs, more...), final
	default:
		return nil, nil
	}
}
