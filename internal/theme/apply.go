package theme

import (
	"maps"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Presentation variables set on the root scope.
const (
	VarBackground = "--bg-color"
	VarPrimary    = "--primary-color"
	VarSecondary  = "--secondary-color"
)

// Surface is the presentation surface a palette is applied to: a root scope
// of named style variables plus the top-level container background.
type Surface interface {
	SetProperty(name, value string)
	SetBackground(value string)
}

// Apply writes the palette for m onto s. Applying the same mode twice leaves
// s unchanged. A nil surface is ignored.
func Apply(s Surface, m Mode) {
	if s == nil {
		return
	}
	p := m.Palette()
	s.SetProperty(VarBackground, string(p.Background))
	s.SetProperty(VarPrimary, string(p.Primary))
	s.SetProperty(VarSecondary, string(p.Secondary))
	s.SetBackground(string(p.Background))
}

// Scope is an in-memory Surface. Renderers read the applied colours back as
// lipgloss styles.
type Scope struct {
	mu         sync.RWMutex
	props      map[string]string
	background string
}

// NewScope creates an empty Scope.
func NewScope() *Scope {
	return &Scope{props: make(map[string]string)}
}

// SetProperty implements Surface.
func (s *Scope) SetProperty(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.props[name] = value
}

// SetBackground implements Surface.
func (s *Scope) SetBackground(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.background = value
}

// Property returns a root variable.
func (s *Scope) Property(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.props[name]
	return v, ok
}

// Background returns the container background.
func (s *Scope) Background() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.background
}

// State is a copy of everything applied to a Scope.
type State struct {
	Properties map[string]string
	Background string
}

// Snapshot copies the current state.
func (s *Scope) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{Properties: maps.Clone(s.props), Background: s.background}
}

// ContainerStyle is the style for the top-level container.
func (s *Scope) ContainerStyle() lipgloss.Style {
	st := lipgloss.NewStyle()
	if bg := s.Background(); bg != "" {
		st = st.Background(lipgloss.Color(bg))
	}
	return st
}

// TextStyle is the container style with the given variable as foreground.
func (s *Scope) TextStyle(name string) lipgloss.Style {
	st := s.ContainerStyle()
	if fg, ok := s.Property(name); ok {
		st = st.Foreground(lipgloss.Color(fg))
	}
	return st
}
