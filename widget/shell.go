package widget

import tea "github.com/charmbracelet/bubbletea"

// Shell is the outward message channel shared by a dispatch pass. Widgets
// publish activation, focus and blur messages into it; the host drains it
// once the pass completes and feeds the messages to the application.
type Shell struct {
	messages []tea.Msg
}

// NewShell returns an empty shell.
func NewShell() *Shell {
	return &Shell{}
}

// Publish appends a message. Nil messages are dropped.
func (s *Shell) Publish(msg tea.Msg) {
	if msg == nil {
		return
	}
	s.messages = append(s.messages, msg)
}

// Messages returns the published messages in order.
func (s *Shell) Messages() []tea.Msg {
	return s.messages
}

// Drain returns the published messages and resets the shell.
func (s *Shell) Drain() []tea.Msg {
	msgs := s.messages
	s.messages = nil
	return msgs
}
