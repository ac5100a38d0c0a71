package decks

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/ayumu/kotoba/internal/router"
	"github.com/ayumu/kotoba/internal/screen"
	"github.com/ayumu/kotoba/internal/services"
	"github.com/ayumu/kotoba/internal/store"
	"github.com/ayumu/kotoba/internal/ui/components"
	"github.com/ayumu/kotoba/internal/ui/layout"
	"github.com/ayumu/kotoba/internal/ui/theme"
)

type cardsLoadedMsg struct {
	Cards []*store.Card
	Err   error
}

type cardMutatedMsg struct {
	Err error
}

// editorField identifies which card input is focused.
type editorField int

const (
	fieldFront editorField = iota
	fieldBack
)

// detailScreen shows one deck's cards and the card editor.
type detailScreen struct {
	deps *services.Deps
	deck *store.Deck

	cards    []*store.Card
	selected int
	loaded   bool
	errMsg   string

	editing    bool
	editingID  int // 0 when adding
	frontInput components.TextInput
	backInput  components.TextInput
	focused    editorField
}

var _ screen.Screen = (*detailScreen)(nil)
var _ screen.KeyHintProvider = (*detailScreen)(nil)

func newDetail(deps *services.Deps, deck *store.Deck) *detailScreen {
	return &detailScreen{
		deps:       deps,
		deck:       deck,
		frontInput: components.NewTextInput("Front (Japanese)...", 200),
		backInput:  components.NewTextInput("Back (meaning)...", 200),
	}
}

func (s *detailScreen) Init() tea.Cmd {
	return s.load()
}

func (s *detailScreen) load() tea.Cmd {
	return func() tea.Msg {
		cards, err := s.deps.Store.CardRepo().List(context.Background(), s.deps.Session.ProfileID, s.deck.ID)
		return cardsLoadedMsg{Cards: cards, Err: err}
	}
}

func (s *detailScreen) Title() string {
	return s.deck.Name
}

func (s *detailScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Switch field"},
			{Key: "Enter", Description: "Save card"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "S", Description: "Study"},
		{Key: "A", Description: "Add"},
		{Key: "E", Description: "Edit"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *detailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.cards = msg.Cards
			if s.selected >= len(s.cards) {
				s.selected = len(s.cards) - 1
			}
			if s.selected < 0 {
				s.selected = 0
			}
		}
		return s, nil

	case cardMutatedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load()

	case tea.KeyMsg:
		if s.editing {
			return s.updateEditing(msg)
		}
		return s.updateBrowsing(msg)
	}
	return s, nil
}

func (s *detailScreen) updateBrowsing(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.cards)-1 {
			s.selected++
		}
	case "s":
		if len(s.cards) > 0 {
			cards := s.cards
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: newStudy(s.deck, cards)}
			}
		}
	case "a":
		s.editing = true
		s.editingID = 0
		s.frontInput.Reset()
		s.backInput.Reset()
		s.focused = fieldFront
		s.backInput.Blur()
		return s, s.frontInput.Focus()
	case "e":
		if s.selected < len(s.cards) {
			card := s.cards[s.selected]
			s.editing = true
			s.editingID = card.ID
			s.frontInput.Reset()
			s.backInput.Reset()
			s.frontInput.Model.SetValue(card.Front)
			s.backInput.Model.SetValue(card.Back)
			s.focused = fieldFront
			s.backInput.Blur()
			return s, s.frontInput.Focus()
		}
	case "d":
		if s.selected < len(s.cards) {
			cardID := s.cards[s.selected].ID
			return s, func() tea.Msg {
				err := s.deps.Store.CardRepo().Delete(context.Background(), s.deps.Session.ProfileID, cardID)
				return cardMutatedMsg{Err: err}
			}
		}
	}
	return s, nil
}

func (s *detailScreen) updateEditing(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.editing = false
		return s, nil
	case "tab":
		if s.focused == fieldFront {
			s.focused = fieldBack
			s.frontInput.Blur()
			return s, s.backInput.Focus()
		}
		s.focused = fieldFront
		s.backInput.Blur()
		return s, s.frontInput.Focus()
	case "enter":
		front := strings.TrimSpace(s.frontInput.Value())
		back := strings.TrimSpace(s.backInput.Value())
		if front == "" || back == "" {
			return s, nil
		}
		s.editing = false
		editingID := s.editingID
		return s, func() tea.Msg {
			var err error
			if editingID == 0 {
				_, err = s.deps.Store.CardRepo().Create(
					context.Background(), s.deps.Session.ProfileID, s.deck.ID, front, back)
			} else {
				_, err = s.deps.Store.CardRepo().Update(
					context.Background(), s.deps.Session.ProfileID, editingID, front, back)
			}
			return cardMutatedMsg{Err: err}
		}
	}

	var cmd tea.Cmd
	if s.focused == fieldFront {
		s.frontInput, cmd = s.frontInput.Update(msg)
	} else {
		s.backInput, cmd = s.backInput.Update(msg)
	}
	return s, cmd
}

func (s *detailScreen) View(width, height int) string {
	if !s.loaded {
		return centered(width, height, theme.Hint.Render("Loading cards..."))
	}

	var b strings.Builder

	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(s.errMsg) + "\n\n")
	}

	if s.editing {
		header := "New card"
		if s.editingID != 0 {
			header = "Edit card"
		}
		b.WriteString(theme.Body.Render(header) + "\n\n")
		b.WriteString(s.frontInput.View() + "\n")
		b.WriteString(s.backInput.View())
		return centered(width, height, b.String())
	}

	if len(s.cards) == 0 {
		return centered(width, height, theme.Hint.Render("No cards yet. Press A to add one."))
	}

	for i, c := range s.cards {
		line := fmt.Sprintf("%s  %s", c.Front, theme.Hint.Render(c.Back))
		if i == s.selected {
			line = theme.Selected.Render("▸ "+c.Front) + "  " + theme.Hint.Render(c.Back)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	return centered(width, height, b.String())
}
