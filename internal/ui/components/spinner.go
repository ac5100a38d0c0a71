package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayumu/kotoba/internal/ui/theme"
)

// Spinner wraps bubbles/spinner for screens waiting on a model response.
type Spinner struct {
	Model spinner.Model
	Label string
}

// NewSpinner creates a new styled spinner with a label.
func NewSpinner(label string) Spinner {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Spinner{Model: sp, Label: label}
}

// Init starts the spinner ticking.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update handles tick messages.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the spinner and label.
func (s Spinner) View() string {
	return s.Model.View() + " " + theme.Hint.Render(s.Label)
}
