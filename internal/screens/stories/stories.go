// Package stories implements graded-reading story generation and the
// saved story library.
package stories

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayumu/kotoba/internal/router"
	"github.com/ayumu/kotoba/internal/screen"
	"github.com/ayumu/kotoba/internal/services"
	"github.com/ayumu/kotoba/internal/store"
	"github.com/ayumu/kotoba/internal/story"
	"github.com/ayumu/kotoba/internal/ui/components"
	"github.com/ayumu/kotoba/internal/ui/layout"
	"github.com/ayumu/kotoba/internal/ui/theme"
)

type storiesLoadedMsg struct {
	Stories []*store.Story
	Err     error
}

type storyReadyMsg struct {
	Level string
	Story *story.Story
	Err   error
}

// StoriesScreen offers story generation per level and the saved library.
type StoriesScreen struct {
	deps *services.Deps

	saved    []*store.Story
	loaded   bool
	errMsg   string
	selected int

	generating bool
	spinner    components.Spinner
}

var _ screen.Screen = (*StoriesScreen)(nil)
var _ screen.KeyHintProvider = (*StoriesScreen)(nil)

// New creates a new StoriesScreen.
func New(deps *services.Deps) *StoriesScreen {
	return &StoriesScreen{
		deps:    deps,
		spinner: components.NewSpinner("writing a story..."),
	}
}

func (s *StoriesScreen) Init() tea.Cmd {
	return s.load()
}

func (s *StoriesScreen) load() tea.Cmd {
	return func() tea.Msg {
		saved, err := s.deps.Store.StoryRepo().List(context.Background(), s.deps.Session.ProfileID)
		return storiesLoadedMsg{Stories: saved, Err: err}
	}
}

func (s *StoriesScreen) Title() string {
	return "Stories"
}

func (s *StoriesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

// entries returns the combined list length: one row per level, then the
// saved stories.
func (s *StoriesScreen) entries() int {
	return len(story.Levels) + len(s.saved)
}

func (s *StoriesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case storiesLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.saved = msg.Stories
		}
		return s, nil

	case storyReadyMsg:
		s.generating = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: newReader(s.deps, msg.Level, msg.Story, nil)}
		}

	case tea.KeyMsg:
		if s.generating {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < s.entries()-1 {
				s.selected++
			}
		case "enter":
			return s.handleSelect()
		}
	}

	if s.generating {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StoriesScreen) handleSelect() (screen.Screen, tea.Cmd) {
	if s.selected < len(story.Levels) {
		level := story.Levels[s.selected]
		s.generating = true
		s.errMsg = ""
		generate := func() tea.Msg {
			st, err := s.deps.Story.Generate(context.Background(), level, "")
			return storyReadyMsg{Level: string(level), Story: st, Err: err}
		}
		return s, tea.Batch(s.spinner.Init(), generate)
	}

	saved := s.saved[s.selected-len(story.Levels)]
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: newReader(s.deps, saved.Level, nil, saved)}
	}
}

func (s *StoriesScreen) View(width, height int) string {
	if !s.loaded {
		return centered(width, height, theme.Hint.Render("Loading stories..."))
	}
	if s.generating {
		return centered(width, height, s.spinner.View())
	}

	var b strings.Builder

	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(s.errMsg) + "\n\n")
	}

	b.WriteString(theme.Subtitle.Render("New story") + "\n")
	for i, lvl := range story.Levels {
		line := fmt.Sprintf("%s  %s", lvl, theme.Hint.Render(lvl.Description()))
		if i == s.selected {
			line = theme.Selected.Render("▸ "+string(lvl)) + "  " + theme.Hint.Render(lvl.Description())
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if len(s.saved) > 0 {
		b.WriteString("\n" + theme.Subtitle.Render("Library") + "\n")
		for i, st := range s.saved {
			idx := len(story.Levels) + i
			line := fmt.Sprintf("%s  %s", st.Title, theme.Hint.Render(st.Level))
			if idx == s.selected {
				line = theme.Selected.Render("▸ "+st.Title) + "  " + theme.Hint.Render(st.Level)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}

	return centered(width, height, b.String())
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
