// Package chatscreen implements the conversation practice screen, used
// for both free talk and scenario role-play.
package chatscreen

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayumu/kotoba/internal/chat"
	"github.com/ayumu/kotoba/internal/screen"
	"github.com/ayumu/kotoba/internal/services"
	"github.com/ayumu/kotoba/internal/store"
	"github.com/ayumu/kotoba/internal/ui/components"
	"github.com/ayumu/kotoba/internal/ui/layout"
	"github.com/ayumu/kotoba/internal/ui/theme"
)

// replyReadyMsg is sent when the tutor's reply has been generated.
type replyReadyMsg struct {
	Reply string
	Err   error
}

// savedMsg is sent when the conversation row has been persisted.
type savedMsg struct {
	ID  int
	Err error
}

// ChatScreen drives one conversation with the tutor.
type ChatScreen struct {
	deps     *services.Deps
	scenario chat.Scenario

	convID   int
	messages []store.Message

	input    components.TextInput
	spinner  components.Spinner
	awaiting bool
	errMsg   string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen. Passing an existing conversation resumes
// it; otherwise a fresh one starts with the scenario opener, if any.
func New(deps *services.Deps, scn chat.Scenario, resume *store.Conversation) *ChatScreen {
	s := &ChatScreen{
		deps:     deps,
		scenario: scn,
		input:    components.NewTextInput("日本語で話しましょう...", 500),
		spinner:  components.NewSpinner("considering a reply..."),
	}

	if resume != nil {
		s.convID = resume.ID
		s.messages = resume.Messages
		s.scenario = chat.Lookup(resume.Kind)
	} else if scn.Opener != "" {
		s.messages = []store.Message{{Role: store.RoleAssistant, Content: scn.Opener}}
	}

	return s
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return s.scenario.Title
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
	}
	if s.deps.Speaker != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+L", Description: "Listen"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyReadyMsg:
		s.awaiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.messages = append(s.messages, store.Message{
			Role:    store.RoleAssistant,
			Content: msg.Reply,
		})
		return s, s.save()

	case savedMsg:
		if msg.Err != nil {
			s.errMsg = fmt.Sprintf("save failed: %v", msg.Err)
			return s, nil
		}
		s.convID = msg.ID
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s.handleSend()
		case "ctrl+l":
			s.speakLastReply()
			return s, nil
		}
	}

	if s.awaiting {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) handleSend() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(s.input.Value())
	if text == "" || s.awaiting {
		return s, nil
	}

	s.messages = append(s.messages, store.Message{Role: store.RoleUser, Content: text})
	s.input.Reset()
	s.awaiting = true
	s.errMsg = ""

	transcript := make([]store.Message, len(s.messages))
	copy(transcript, s.messages)

	request := func() tea.Msg {
		reply, err := s.deps.Chat.NextReply(context.Background(), s.scenario, transcript)
		return replyReadyMsg{Reply: reply, Err: err}
	}

	return s, tea.Batch(s.spinner.Init(), request)
}

// save persists the transcript, keeping one row per conversation: the
// first save creates the row and later saves update it in place.
func (s *ChatScreen) save() tea.Cmd {
	id := s.convID
	kind := s.scenario.ID
	transcript := make([]store.Message, len(s.messages))
	copy(transcript, s.messages)

	return func() tea.Msg {
		newID, err := s.deps.Store.ConversationRepo().Upsert(
			context.Background(), s.deps.Session.ProfileID, id, kind, transcript)
		return savedMsg{ID: newID, Err: err}
	}
}

func (s *ChatScreen) speakLastReply() {
	if s.deps.Speaker == nil {
		return
	}
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Role == store.RoleAssistant {
			_, _ = s.deps.Speaker.Speak(context.Background(), s.messages[i].Content)
			return
		}
	}
}

func (s *ChatScreen) View(width, height int) string {
	var b strings.Builder

	if s.scenario.Description != "" {
		b.WriteString(theme.Hint.Render("  " + s.scenario.Description))
		b.WriteString("\n\n")
	}

	b.WriteString(s.renderTranscript(width, height-8))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	if s.awaiting {
		b.WriteString("  " + s.spinner.View())
	} else {
		b.WriteString("  " + s.input.View())
	}

	return b.String()
}

// renderTranscript renders the most recent turns that fit maxHeight,
// newest at the bottom.
func (s *ChatScreen) renderTranscript(width, maxHeight int) string {
	bubbleWidth := width - 8
	if bubbleWidth > 70 {
		bubbleWidth = 70
	}

	var bubbles []string
	for _, m := range s.messages {
		style := theme.TutorBubble
		label := "先生"
		if m.Role == store.RoleUser {
			style = theme.UserBubble
			label = s.deps.Session.Name
		}
		bubble := theme.Hint.Render("  "+label) + "\n" +
			lipgloss.NewStyle().PaddingLeft(2).Render(
				style.MaxWidth(bubbleWidth).Render(m.Content))
		bubbles = append(bubbles, bubble)
	}

	// Drop oldest bubbles until the transcript fits.
	for len(bubbles) > 1 {
		joined := strings.Join(bubbles, "\n")
		if lipgloss.Height(joined) <= maxHeight {
			break
		}
		bubbles = bubbles[1:]
	}

	return strings.Join(bubbles, "\n")
}
