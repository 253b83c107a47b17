package splash

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dhanuzh/feurboot/internal/display"
	"github.com/Dhanuzh/feurboot/internal/theme"
)

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Screen exposes a splash program as the bootstrap's page and presentation
// surface. Only the message and loading elements exist on it.
type Screen struct {
	sender Sender
	scope  *theme.Scope
}

// NewScreen creates a Screen sending to s and painting through scope.
func NewScreen(s Sender, scope *theme.Scope) *Screen {
	return &Screen{sender: s, scope: scope}
}

// Element implements display.Document.
func (s *Screen) Element(id string) (display.Element, bool) {
	switch id {
	case display.AppMessage, display.LoadingMessage:
		return element{id: id, sender: s.sender}, true
	}
	return nil, false
}

// SetProperty implements theme.Surface.
func (s *Screen) SetProperty(name, value string) {
	s.scope.SetProperty(name, value)
	s.sender.Send(PaintMsg{})
}

// SetBackground implements theme.Surface.
func (s *Screen) SetBackground(value string) {
	s.scope.SetBackground(value)
	s.sender.Send(PaintMsg{})
}

// Close asks the splash to quit.
func (s *Screen) Close() {
	s.sender.Send(DoneMsg{})
}

type element struct {
	id     string
	sender Sender
}

func (e element) SetText(text string) {
	e.sender.Send(TextMsg{ID: e.id, Text: text})
}
