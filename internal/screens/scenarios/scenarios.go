// Package scenarios implements the role-play scenario picker.
package scenarios

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayumu/kotoba/internal/chat"
	"github.com/ayumu/kotoba/internal/router"
	"github.com/ayumu/kotoba/internal/screen"
	"github.com/ayumu/kotoba/internal/screens/chatscreen"
	"github.com/ayumu/kotoba/internal/services"
	"github.com/ayumu/kotoba/internal/ui/components"
	"github.com/ayumu/kotoba/internal/ui/theme"
)

// ScenarioScreen lets the learner pick a role-play situation.
type ScenarioScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*ScenarioScreen)(nil)

// New creates a new ScenarioScreen.
func New(deps *services.Deps) *ScenarioScreen {
	items := make([]components.MenuItem, 0, len(chat.Scenarios))
	for _, scn := range chat.Scenarios {
		scn := scn
		items = append(items, components.MenuItem{
			Label:  scn.Title,
			Detail: scn.Description,
			Action: func() tea.Cmd {
				// The picker is replaced rather than stacked, so Esc from
				// the chat lands back on home.
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: chatscreen.New(deps, scn, nil)}
				}
			},
		})
	}

	return &ScenarioScreen{menu: components.NewMenu(items)}
}

func (s *ScenarioScreen) Init() tea.Cmd {
	return nil
}

func (s *ScenarioScreen) Title() string {
	return "Scenarios"
}

func (s *ScenarioScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ScenarioScreen) View(width, height int) string {
	content := strings.Join([]string{
		theme.Subtitle.Render("Pick a situation to role-play"),
		"",
		s.menu.View(),
	}, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
