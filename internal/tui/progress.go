// internal/tui/progress.go
//
// Live progress view shown while the selector works through the
// candidate stream. It follows bubbletea's Elm-style loop: the
// pipeline pushes ProgressMsg/DoneMsg into the program and the view
// redraws on each one.

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	bestStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
)

// ProgressMsg reports the selector's position in the candidate stream.
type ProgressMsg struct {
	Seen     int
	BestSize int
}

// DoneMsg ends the view. Reporting the pipeline's outcome stays with
// the caller.
type DoneMsg struct{}

// Model is the progress view state.
type Model struct {
	spinner  spinner.Model
	seen     int
	bestSize int
	done     bool
}

// New builds the progress view.
func New() Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle
	return Model{spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		m.seen = msg.Seen
		m.bestSize = msg.BestSize
		return m, nil
	case DoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		// The build keeps running; ctrl+c only drops the view.
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	line := fmt.Sprintf("%s %s", m.spinner.View(), countStyle.Render(fmt.Sprintf("weighing candidates · %d seen", m.seen)))
	if m.bestSize > 0 {
		line += " · " + bestStyle.Render(fmt.Sprintf("best %d bytes", m.bestSize))
	}
	return line + "\n"
}
