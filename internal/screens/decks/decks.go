// Package decks implements flashcard deck management and study mode.
package decks

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
	"github.com/ayumu/kotoba/internal/ui/components"
	"github.com/ayumu/kotoba/internal/ui/layout"
	"github.com/ayumu/kotoba/internal/ui/theme"
)

type decksLoadedMsg struct {
	Decks []*store.Deck
	Err   error
}

type deckMutatedMsg struct {
	Err error
}

// DeckListScreen shows the profile's decks.
type DeckListScreen struct {
	deps *services.Deps

	decks    []*store.Deck
	selected int
	loaded   bool
	errMsg   string

	creating   bool
	nameInput  components.TextInput
	confirming bool
}

var _ screen.Screen = (*DeckListScreen)(nil)
var _ screen.KeyHintProvider = (*DeckListScreen)(nil)

// New creates a new DeckListScreen.
func New(deps *services.Deps) *DeckListScreen {
	return &DeckListScreen{
		deps:      deps,
		nameInput: components.NewTextInput("Deck name...", 80),
	}
}

func (s *DeckListScreen) Init() tea.Cmd {
	return s.load()
}

func (s *DeckListScreen) load() tea.Cmd {
	return func() tea.Msg {
		decks, err := s.deps.Store.DeckRepo().List(context.Background(), s.deps.Session.ProfileID)
		return decksLoadedMsg{Decks: decks, Err: err}
	}
}

func (s *DeckListScreen) Title() string {
	return "Decks"
}

func (s *DeckListScreen) KeyHints() []layout.KeyHint {
	if s.creating {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Create"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete deck"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "N", Description: "New deck"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DeckListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case decksLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.decks = msg.Decks
			if s.selected >= len(s.decks) {
				s.selected = len(s.decks) - 1
			}
			if s.selected < 0 {
				s.selected = 0
			}
		}
		return s, nil

	case deckMutatedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load()

	case tea.KeyMsg:
		if s.creating {
			return s.updateCreating(msg)
		}
		if s.confirming {
			return s.updateConfirming(msg)
		}
		return s.updateBrowsing(msg)
	}
	return s, nil
}

func (s *DeckListScreen) updateBrowsing(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.decks)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(s.decks) {
			deck := s.decks[s.selected]
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: newDetail(s.deps, deck)}
			}
		}
	case "n":
		s.creating = true
		s.nameInput.Reset()
		return s, s.nameInput.Focus()
	case "d":
		if s.selected < len(s.decks) {
			s.confirming = true
		}
	}
	return s, nil
}

func (s *DeckListScreen) updateCreating(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.creating = false
		return s, nil
	case "enter":
		name := strings.TrimSpace(s.nameInput.Value())
		if name == "" {
			return s, nil
		}
		s.creating = false
		return s, func() tea.Msg {
			_, err := s.deps.Store.DeckRepo().Create(context.Background(), s.deps.Session.ProfileID, name, "")
			return deckMutatedMsg{Err: err}
		}
	}
	var cmd tea.Cmd
	s.nameInput, cmd = s.nameInput.Update(msg)
	return s, cmd
}

func (s *DeckListScreen) updateConfirming(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y":
		s.confirming = false
		deckID := s.decks[s.selected].ID
		return s, func() tea.Msg {
			err := s.deps.Store.DeckRepo().Delete(context.Background(), s.deps.Session.ProfileID, deckID)
			return deckMutatedMsg{Err: err}
		}
	case "n", "esc":
		s.confirming = false
	}
	return s, nil
}

func (s *DeckListScreen) View(width, height int) string {
	if !s.loaded {
		return centered(width, height, theme.Hint.Render("Loading decks..."))
	}

	var b strings.Builder

	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(s.errMsg) + "\n\n")
	}

	if s.creating {
		b.WriteString(theme.Body.Render("New deck") + "\n\n")
		b.WriteString(s.nameInput.View())
		return centered(width, height, b.String())
	}

	if len(s.decks) == 0 {
		return centered(width, height, theme.Hint.Render("No decks yet. Press N to create one."))
	}

	for i, d := range s.decks {
		line := fmt.Sprintf("%s  %s", d.Name,
			theme.Hint.Render(fmt.Sprintf("%d cards", d.CardCount)))
		if i == s.selected {
			line = theme.Selected.Render("▸ " + d.Name + "  ")
			line += theme.Hint.Render(fmt.Sprintf("%d cards", d.CardCount))
			if s.confirming {
				line += theme.Incorrect.Render("  delete? (y/n)")
			}
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
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
