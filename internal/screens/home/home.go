package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayumu/kotoba/internal/chat"
	"github.com/ayumu/kotoba/internal/router"
	"github.com/ayumu/kotoba/internal/screen"
	chatscreen "github.com/ayumu/kotoba/internal/screens/chatscreen"
	"github.com/ayumu/kotoba/internal/screens/decks"
	reviewscreen "github.com/ayumu/kotoba/internal/screens/reviewscreen"
	"github.com/ayumu/kotoba/internal/screens/scenarios"
	statsscreen "github.com/ayumu/kotoba/internal/screens/statsscreen"
	"github.com/ayumu/kotoba/internal/screens/stories"
	"github.com/ayumu/kotoba/internal/services"
	"github.com/ayumu/kotoba/internal/ui/components"
	"github.com/ayumu/kotoba/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	deps *services.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps *services.Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Practice", Detail: "free conversation", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(deps, chat.FreeTalk, nil)}
			}
		}},
		{Label: "Scenarios", Detail: "role-play situations", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: scenarios.New(deps)}
			}
		}},
		{Label: "Decks", Detail: "flashcard study", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: decks.New(deps)}
			}
		}},
		{Label: "Stories", Detail: "graded reading", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stories.New(deps)}
			}
		}},
		{Label: "Review", Detail: "feedback on past conversations", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: reviewscreen.New(deps)}
			}
		}},
		{Label: "Stats", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statsscreen.New(deps)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	greeting := fmt.Sprintf("こんにちは、%sさん！", h.deps.Session.Name)
	sections = append(sections,
		theme.Title.Render("言葉 Kotoba"),
		theme.Subtitle.Render("Japanese conversation practice"),
		"",
		theme.Japanese.Render(greeting),
		"",
		h.menu.View(),
	)

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
