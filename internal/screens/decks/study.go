package decks

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayumu/kotoba/internal/screen"
	"github.com/ayumu/kotoba/internal/store"
	"github.com/ayumu/kotoba/internal/study"
	"github.com/ayumu/kotoba/internal/ui/components"
	"github.com/ayumu/kotoba/internal/ui/layout"
	"github.com/ayumu/kotoba/internal/ui/theme"
)

// studyScreen cycles through a deck's cards.
type studyScreen struct {
	deck  *store.Deck
	state *study.State
}

var _ screen.Screen = (*studyScreen)(nil)
var _ screen.KeyHintProvider = (*studyScreen)(nil)

func newStudy(deck *store.Deck, cards []*store.Card) *studyScreen {
	return &studyScreen{
		deck:  deck,
		state: study.New(cards),
	}
}

func (s *studyScreen) Init() tea.Cmd {
	return nil
}

func (s *studyScreen) Title() string {
	return "Study: " + s.deck.Name
}

func (s *studyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Reveal"},
		{Key: "←→", Description: "Previous/Next"},
		{Key: "Esc", Description: "Done"},
	}
}

func (s *studyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "space", "enter":
		s.state.Reveal()
	case "right", "l", "n":
		s.state.Next()
	case "left", "h", "p":
		s.state.Prev()
	}
	return s, nil
}

func (s *studyScreen) View(width, height int) string {
	card := s.state.Current()
	if card == nil {
		return centered(width, height, theme.Hint.Render("This deck has no cards."))
	}

	cardWidth := width / 2
	if cardWidth < 30 {
		cardWidth = 30
	}

	front := theme.Japanese.Render(card.Front)
	body := front
	if s.state.Revealed() {
		body += "\n\n" + theme.Body.Render(card.Back)
	} else {
		body += "\n\n" + theme.Hint.Render("(space to reveal)")
	}

	face := theme.Card.
		Width(cardWidth).
		Align(lipgloss.Center).
		Render(body)

	position := fmt.Sprintf("%d / %d", s.state.Position(), s.state.Len())
	bar := components.NewProgressBar("", float64(s.state.Position())/float64(s.state.Len()), false, cardWidth).View()

	content := strings.Join([]string{
		face,
		"",
		theme.Hint.Render(position),
		bar,
	}, "\n")

	return centered(width, height, content)
}
