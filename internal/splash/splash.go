// Package splash draws the bootstrap page in the terminal while the engine
// comes up.
package splash

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dhanuzh/feurboot/internal/display"
	"github.com/Dhanuzh/feurboot/internal/theme"
)

// TextMsg sets the text of a page element.
type TextMsg struct {
	ID   string
	Text string
}

// PaintMsg asks for a redraw after the palette changed.
type PaintMsg struct{}

// DoneMsg closes the splash.
type DoneMsg struct{}

// Model is the splash screen.
type Model struct {
	spinner spinner.Model
	scope   *theme.Scope
	texts   map[string]string

	width, height int
	interrupted   bool
	done          bool
}

// New creates a splash model painting with scope.
func New(scope *theme.Scope) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	if scope == nil {
		scope = theme.NewScope()
	}
	return Model{
		spinner: sp,
		scope:   scope,
		texts:   make(map[string]string),
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TextMsg:
		texts := make(map[string]string, len(m.texts)+1)
		for k, v := range m.texts {
			texts[k] = v
		}
		texts[msg.ID] = msg.Text
		m.texts = texts
		return m, nil
	case PaintMsg:
		return m, nil
	case DoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Text returns the current text of an element.
func (m Model) Text(id string) string { return m.texts[id] }

// Interrupted reports whether the user pressed ctrl+c.
func (m Model) Interrupted() bool { return m.interrupted }

// Done reports whether the splash was closed normally.
func (m Model) Done() bool { return m.done }

func (m Model) View() string {
	if m.done {
		return ""
	}
	container := m.scope.ContainerStyle()
	primary := m.scope.TextStyle(theme.VarPrimary).Bold(true)
	secondary := m.scope.TextStyle(theme.VarSecondary)

	var lines []string
	if msg := m.texts[display.AppMessage]; msg != "" {
		lines = append(lines, primary.Render(msg), "")
	}
	if msg := m.texts[display.LoadingMessage]; msg != "" {
		lines = append(lines, secondary.Render(m.spinner.View()+" "+msg))
	}
	body := strings.Join(lines, "\n")

	if m.width == 0 || m.height == 0 {
		return container.Render(body) + "\n"
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(container.GetBackground()))
}
