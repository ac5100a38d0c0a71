// Package statsscreen shows the profile's practice statistics.
package statsscreen

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayumu/kotoba/internal/chat"
	"github.com/ayumu/kotoba/internal/screen"
	"github.com/ayumu/kotoba/internal/services"
	"github.com/ayumu/kotoba/internal/stats"
	"github.com/ayumu/kotoba/internal/ui/theme"
)

type summaryLoadedMsg struct {
	Summary *stats.Summary
	Err     error
}

// StatsScreen displays the practice summary.
type StatsScreen struct {
	deps    *services.Deps
	summary *stats.Summary
	errMsg  string
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(deps *services.Deps) *StatsScreen {
	return &StatsScreen{deps: deps}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sum, err := s.deps.Stats.Summarize(
			context.Background(), s.deps.Session.ProfileID, time.Now())
		return summaryLoadedMsg{Summary: sum, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(summaryLoadedMsg); ok {
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.summary = m.Summary
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return centered(width, height, theme.Incorrect.Render(s.errMsg))
	}
	if s.summary == nil {
		return centered(width, height, theme.Hint.Render("Crunching numbers..."))
	}

	sum := s.summary
	rows := []string{
		row("Streak", fmt.Sprintf("%d days", sum.StreakDays)),
		row("Conversations", fmt.Sprintf("%d", sum.Conversations)),
		row("Decks", fmt.Sprintf("%d (%d cards)", sum.Decks, sum.Cards)),
		row("Stories read", fmt.Sprintf("%d", sum.Stories)),
	}

	if sum.FavoriteScenario != "" {
		rows = append(rows, row("Favorite scenario", chat.Lookup(sum.FavoriteScenario).Title))
	}
	if !sum.LastPracticed.IsZero() {
		rows = append(rows, row("Last practiced", sum.LastPracticed.Format("Jan 02, 15:04")))
	}

	content := theme.Title.Render(s.deps.Session.Name+"'s practice") + "\n\n" +
		strings.Join(rows, "\n")

	return centered(width, height, content)
}

func row(label, value string) string {
	return fmt.Sprintf("%s  %s",
		theme.Hint.Render(fmt.Sprintf("%18s", label)),
		theme.Body.Render(value))
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
