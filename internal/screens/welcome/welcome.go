// Package welcome implements the startup profile picker. It is the
// first screen unless a profile was forced with --profile.
package welcome

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayumu/kotoba/internal/router"
	"github.com/ayumu/kotoba/internal/screen"
	"github.com/ayumu/kotoba/internal/store"
	"github.com/ayumu/kotoba/internal/ui/components"
	"github.com/ayumu/kotoba/internal/ui/layout"
	"github.com/ayumu/kotoba/internal/ui/theme"
)

type profilesLoadedMsg struct {
	Profiles []*store.Profile
	Err      error
}

type profileChosenMsg struct {
	Profile *store.Profile
	Err     error
}

// HomeFactory builds the home screen once a profile has been chosen.
type HomeFactory func(p *store.Profile) screen.Screen

// WelcomeScreen lists profiles and creates new ones.
type WelcomeScreen struct {
	profiles store.ProfileRepo
	factory  HomeFactory

	list     []*store.Profile
	selected int
	loaded   bool
	errMsg   string

	creating  bool
	nameInput components.TextInput

	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands off to the screen produced by
// factory once a profile is chosen.
func New(profiles store.ProfileRepo, factory HomeFactory) *WelcomeScreen {
	return &WelcomeScreen{
		profiles:  profiles,
		factory:   factory,
		nameInput: components.NewTextInput("Your name...", 60),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.creating {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "N", Description: "New profile"},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		list, err := w.profiles.List(context.Background())
		return profilesLoadedMsg{Profiles: list, Err: err}
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		w.loaded = true
		if msg.Err != nil {
			w.errMsg = msg.Err.Error()
			return w, nil
		}
		w.list = msg.Profiles
		// First run: go straight to name entry.
		if len(w.list) == 0 {
			w.creating = true
			return w, w.nameInput.Focus()
		}
		return w, nil

	case profileChosenMsg:
		if msg.Err != nil {
			w.errMsg = msg.Err.Error()
			return w, nil
		}
		return w, w.transition(msg.Profile)

	case tea.KeyMsg:
		if w.creating {
			return w.updateCreating(msg)
		}
		switch msg.String() {
		case "up", "k":
			if w.selected > 0 {
				w.selected--
			}
		case "down", "j":
			if w.selected < len(w.list)-1 {
				w.selected++
			}
		case "n":
			w.creating = true
			w.nameInput.Reset()
			return w, w.nameInput.Focus()
		case "enter":
			if w.selected < len(w.list) {
				return w, w.transition(w.list[w.selected])
			}
		}
	}
	return w, nil
}

func (w *WelcomeScreen) updateCreating(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if len(w.list) > 0 {
			w.creating = false
		}
		return w, nil
	case "enter":
		name := strings.TrimSpace(w.nameInput.Value())
		if name == "" {
			return w, nil
		}
		return w, func() tea.Msg {
			p, err := w.profiles.Ensure(context.Background(), name)
			return profileChosenMsg{Profile: p, Err: err}
		}
	}
	var cmd tea.Cmd
	w.nameInput, cmd = w.nameInput.Update(msg)
	return w, cmd
}

// transition hands off to the home screen exactly once.
func (w *WelcomeScreen) transition(p *store.Profile) tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.factory(p)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		theme.Title.Render("言葉 Kotoba"),
		theme.Subtitle.Render("Japanese conversation practice"),
		"",
	)

	switch {
	case !w.loaded:
		sections = append(sections, theme.Hint.Render("Loading..."))
	case w.creating:
		sections = append(sections,
			theme.Body.Render("What should we call you?"),
			"",
			w.nameInput.View(),
		)
	default:
		sections = append(sections, theme.Subtitle.Render("Who is practicing?"), "")
		for i, p := range w.list {
			line := "  " + p.Name
			if i == w.selected {
				line = theme.Selected.Render("▸ " + p.Name)
			}
			sections = append(sections, line)
		}
		sections = append(sections, "", theme.Hint.Render(fmt.Sprintf("%d profiles · N for new", len(w.list))))
	}

	if w.errMsg != "" {
		sections = append(sections, "", theme.Incorrect.Render(w.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
