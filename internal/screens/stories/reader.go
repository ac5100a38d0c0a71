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
	"github.com/ayumu/kotoba/internal/ui/layout"
	"github.com/ayumu/kotoba/internal/ui/theme"
)

type storySavedMsg struct {
	Err error
}

type storyDeletedMsg struct {
	Err error
}

// readerScreen displays one story with its vocabulary list. It shows
// either a freshly generated story (savable) or a saved one (deletable).
type readerScreen struct {
	deps  *services.Deps
	level string

	fresh *story.Story
	saved *store.Story

	showVocab bool
	scroll    int
	notice    string
	errMsg    string
}

var _ screen.Screen = (*readerScreen)(nil)
var _ screen.KeyHintProvider = (*readerScreen)(nil)

func newReader(deps *services.Deps, level string, fresh *story.Story, saved *store.Story) *readerScreen {
	return &readerScreen{
		deps:  deps,
		level: level,
		fresh: fresh,
		saved: saved,
	}
}

func (s *readerScreen) Init() tea.Cmd {
	return nil
}

func (s *readerScreen) Title() string {
	return fmt.Sprintf("Story (%s)", s.level)
}

func (s *readerScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "V", Description: "Vocabulary"},
		{Key: "↑↓", Description: "Scroll"},
	}
	if s.fresh != nil {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Save"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "D", Description: "Delete"})
	}
	if s.deps.Speaker != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+L", Description: "Listen"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *readerScreen) title() string {
	if s.fresh != nil {
		return s.fresh.Title
	}
	return s.saved.Title
}

func (s *readerScreen) content() string {
	if s.fresh != nil {
		return s.fresh.Content
	}
	return s.saved.Content
}

func (s *readerScreen) vocabulary() []store.VocabEntry {
	if s.fresh != nil {
		return s.fresh.Vocabulary
	}
	return s.saved.Vocabulary
}

func (s *readerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case storySavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.notice = "Saved to library."
		}
		return s, nil

	case storyDeletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		switch msg.String() {
		case "v":
			s.showVocab = !s.showVocab
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		case "s":
			if s.fresh != nil {
				return s, s.save()
			}
		case "d":
			if s.saved != nil {
				return s, s.delete()
			}
		case "ctrl+l":
			if s.deps.Speaker != nil {
				_, _ = s.deps.Speaker.Speak(context.Background(), s.content())
			}
		}
	}
	return s, nil
}

func (s *readerScreen) save() tea.Cmd {
	fresh := s.fresh
	level := s.level
	return func() tea.Msg {
		_, err := s.deps.Store.StoryRepo().Create(context.Background(), s.deps.Session.ProfileID, &store.Story{
			Level:      level,
			Title:      fresh.Title,
			Content:    fresh.Content,
			Vocabulary: fresh.Vocabulary,
		})
		return storySavedMsg{Err: err}
	}
}

func (s *readerScreen) delete() tea.Cmd {
	id := s.saved.ID
	return func() tea.Msg {
		err := s.deps.Store.StoryRepo().Delete(context.Background(), s.deps.Session.ProfileID, id)
		return storyDeletedMsg{Err: err}
	}
}

func (s *readerScreen) View(width, height int) string {
	textWidth := width - 16
	if textWidth > 72 {
		textWidth = 72
	}
	if textWidth < 20 {
		textWidth = 20
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(textWidth).Render(s.title()) + "\n\n")

	if s.showVocab {
		b.WriteString(s.renderVocab(textWidth))
	} else {
		body := lipgloss.NewStyle().Width(textWidth).Render(s.content())
		lines := strings.Split(body, "\n")
		if s.scroll >= len(lines) {
			s.scroll = len(lines) - 1
		}
		visible := height - 6
		if visible < 1 {
			visible = 1
		}
		end := s.scroll + visible
		if end > len(lines) {
			end = len(lines)
		}
		b.WriteString(strings.Join(lines[s.scroll:end], "\n"))
	}

	if s.notice != "" {
		b.WriteString("\n\n" + theme.Correct.Render(s.notice))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n" + theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(b.String())
}

func (s *readerScreen) renderVocab(textWidth int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Vocabulary") + "\n\n")
	for _, v := range s.vocabulary() {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			theme.Japanese.Render(v.Word),
			theme.Hint.Render("("+v.Reading+")"),
			theme.Body.Render(v.Definition)))
	}
	return lipgloss.NewStyle().Width(textWidth).Render(b.String())
}
