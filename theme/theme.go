// Package theme maps widget interaction status to Lip Gloss styles shared
// across the toolkit.
package theme

import "github.com/charmbracelet/lipgloss"

// StatusKind is the interaction state stored on a widget between events.
// Hover and the focused/hovered combination are derived at draw time and
// never stored.
type StatusKind int

const (
	// StatusActive means the widget is idle and accepts input.
	StatusActive StatusKind = iota
	// StatusHovered means the pointer is over the widget.
	StatusHovered
	// StatusPressed means a press started on the widget and has not ended.
	StatusPressed
	// StatusFocused means the widget holds keyboard focus.
	StatusFocused
	// StatusDisabled means the widget has no activation handler.
	StatusDisabled
)

// Status is the fully derived visual status used for styling. Hovered is
// only meaningful when Kind is StatusFocused.
type Status struct {
	Kind    StatusKind
	Hovered bool
}

// Active returns the idle status.
func Active() Status { return Status{Kind: StatusActive} }

// Hovered returns the pointer-over status.
func Hovered() Status { return Status{Kind: StatusHovered} }

// Pressed returns the mid-press status.
func Pressed() Status { return Status{Kind: StatusPressed} }

// Focused returns the keyboard-focus status, with the hover flag preserved.
func Focused(hovered bool) Status { return Status{Kind: StatusFocused, Hovered: hovered} }

// Disabled returns the no-handler status.
func Disabled() Status { return Status{Kind: StatusDisabled} }

// Styles describes reusable Lip Gloss styles shared across the widgets.
type Styles struct {
	Text *lipgloss.Style

	ButtonActive         *lipgloss.Style
	ButtonHovered        *lipgloss.Style
	ButtonPressed        *lipgloss.Style
	ButtonFocused        *lipgloss.Style
	ButtonFocusedHovered *lipgloss.Style
	ButtonDisabled       *lipgloss.Style

	InputText        *lipgloss.Style
	InputPlaceholder *lipgloss.Style
	InputFocused     *lipgloss.Style
	InputDisabled    *lipgloss.Style
	InputCursor      *lipgloss.Style

	ListItem        *lipgloss.Style
	ListHighlighted *lipgloss.Style
	ListFilter      *lipgloss.Style
	ListDisabled    *lipgloss.Style
}

var defaultStyles = Styles{
	Text: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ButtonActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")),
	),
	ButtonHovered: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("63")),
	),
	ButtonPressed: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("105")),
	),
	ButtonFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Bold(true).Underline(true),
	),
	ButtonFocusedHovered: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("63")).Bold(true).Underline(true),
	),
	ButtonDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Background(lipgloss.Color("237")),
	),
	InputText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	InputPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	InputFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")),
	),
	InputDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	InputCursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("255")),
	),
	ListItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ListHighlighted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	ListFilter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	ListDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
}

// Default returns the stock style catalog.
func Default() Styles {
	return defaultStyles
}

// Button selects the button style for a status.
func (s Styles) Button(st Status) lipgloss.Style {
	switch st.Kind {
	case StatusDisabled:
		return deref(s.ButtonDisabled)
	case StatusFocused:
		if st.Hovered {
			return deref(s.ButtonFocusedHovered)
		}
		return deref(s.ButtonFocused)
	case StatusPressed:
		return deref(s.ButtonPressed)
	case StatusHovered:
		return deref(s.ButtonHovered)
	default:
		return deref(s.ButtonActive)
	}
}

// Input selects the text-input style for a status.
func (s Styles) Input(st Status) lipgloss.Style {
	switch st.Kind {
	case StatusDisabled:
		return deref(s.InputDisabled)
	case StatusFocused:
		return deref(s.InputFocused)
	default:
		return deref(s.InputText)
	}
}

// List selects the pick-list item style for a status.
func (s Styles) List(st Status) lipgloss.Style {
	switch st.Kind {
	case StatusDisabled:
		return deref(s.ListDisabled)
	case StatusFocused:
		return deref(s.ListHighlighted)
	default:
		return deref(s.ListItem)
	}
}

func ptr(s lipgloss.Style) *lipgloss.Style {
	return &s
}

func deref(s *lipgloss.Style) lipgloss.Style {
	if s == nil {
		return lipgloss.NewStyle()
	}
	return *s
}
