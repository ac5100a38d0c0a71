// Package reviewscreen implements AI feedback on past conversations.
package reviewscreen

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayumu/kotoba/internal/chat"
	"github.com/ayumu/kotoba/internal/review"
	"github.com/ayumu/kotoba/internal/screen"
	"github.com/ayumu/kotoba/internal/services"
	"github.com/ayumu/kotoba/internal/store"
	"github.com/ayumu/kotoba/internal/ui/components"
	"github.com/ayumu/kotoba/internal/ui/layout"
	"github.com/ayumu/kotoba/internal/ui/theme"
)

const pickerLimit = 20

type conversationsLoadedMsg struct {
	Conversations []*store.Conversation
	Err           error
}

type reviewReadyMsg struct {
	Review *review.Review
	Err    error
}

// ReviewScreen picks a past conversation and shows graded feedback.
type ReviewScreen struct {
	deps *services.Deps

	conversations []*store.Conversation
	selected      int
	loaded        bool
	errMsg        string

	generating bool
	spinner    components.Spinner

	result *review.Review
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a new ReviewScreen.
func New(deps *services.Deps) *ReviewScreen {
	return &ReviewScreen{
		deps:    deps,
		spinner: components.NewSpinner("reviewing your conversation..."),
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return func() tea.Msg {
		convs, err := s.deps.Store.ConversationRepo().List(
			context.Background(), s.deps.Session.ProfileID, pickerLimit)
		return conversationsLoadedMsg{Conversations: convs, Err: err}
	}
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	if s.result != nil {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Get feedback"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case conversationsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.conversations = msg.Conversations
		}
		return s, nil

	case reviewReadyMsg:
		s.generating = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.result = msg.Review
		return s, nil

	case tea.KeyMsg:
		if s.generating {
			return s, nil
		}
		if s.result != nil {
			// Any navigation from the result view goes back through Esc,
			// handled by the app.
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.conversations)-1 {
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

func (s *ReviewScreen) handleSelect() (screen.Screen, tea.Cmd) {
	if s.selected >= len(s.conversations) {
		return s, nil
	}
	conv := s.conversations[s.selected]
	s.generating = true
	s.errMsg = ""

	generate := func() tea.Msg {
		r, err := s.deps.Review.Generate(context.Background(), conv)
		return reviewReadyMsg{Review: r, Err: err}
	}
	return s, tea.Batch(s.spinner.Init(), generate)
}

func (s *ReviewScreen) View(width, height int) string {
	if !s.loaded {
		return centered(width, height, theme.Hint.Render("Loading conversations..."))
	}
	if s.generating {
		return centered(width, height, s.spinner.View())
	}
	if s.result != nil {
		return s.renderResult(width, height)
	}

	if len(s.conversations) == 0 {
		return centered(width, height, theme.Hint.Render("No conversations yet. Practice first, then come back."))
	}

	var b strings.Builder
	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(s.errMsg) + "\n\n")
	}
	b.WriteString(theme.Subtitle.Render("Pick a conversation to review") + "\n\n")

	for i, c := range s.conversations {
		scn := chat.Lookup(c.Kind)
		detail := fmt.Sprintf("%d turns, %s", len(c.Messages), c.UpdatedAt.Format("Jan 02"))
		line := fmt.Sprintf("%s  %s", scn.Title, theme.Hint.Render(detail))
		if i == s.selected {
			line = theme.Selected.Render("▸ "+scn.Title) + "  " + theme.Hint.Render(detail)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	return centered(width, height, b.String())
}

func (s *ReviewScreen) renderResult(width, height int) string {
	textWidth := width - 16
	if textWidth > 76 {
		textWidth = 76
	}

	r := s.result
	var b strings.Builder

	scoreStyle := theme.Correct
	if r.Score < 50 {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %d / 100", r.Score)) + "\n\n")

	if len(r.Strengths) > 0 {
		b.WriteString(theme.Subtitle.Render("What went well") + "\n")
		for _, st := range r.Strengths {
			b.WriteString("  • " + st + "\n")
		}
		b.WriteString("\n")
	}

	if len(r.Corrections) > 0 {
		b.WriteString(theme.Subtitle.Render("Corrections") + "\n")
		for _, c := range r.Corrections {
			b.WriteString("  " + theme.Incorrect.Render(c.Original) + "\n")
			b.WriteString("  " + theme.Correct.Render(c.Corrected) + "\n")
			b.WriteString("  " + theme.Hint.Render(c.Explanation) + "\n\n")
		}
	}

	if len(r.Recommendations) > 0 {
		b.WriteString(theme.Subtitle.Render("Study next") + "\n")
		for _, rec := range r.Recommendations {
			b.WriteString("  • " + rec + "\n")
		}
	}

	content := lipgloss.NewStyle().Width(textWidth).Render(b.String())
	return centered(width, height, content)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
