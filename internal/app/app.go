// Package app wires the store, services, and screens into the Bubble
// Tea program.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayumu/kotoba/internal/chat"
	"github.com/ayumu/kotoba/internal/llm"
	"github.com/ayumu/kotoba/internal/review"
	"github.com/ayumu/kotoba/internal/router"
	"github.com/ayumu/kotoba/internal/screen"
	"github.com/ayumu/kotoba/internal/screens/home"
	"github.com/ayumu/kotoba/internal/screens/welcome"
	"github.com/ayumu/kotoba/internal/services"
	"github.com/ayumu/kotoba/internal/session"
	"github.com/ayumu/kotoba/internal/speech"
	"github.com/ayumu/kotoba/internal/stats"
	"github.com/ayumu/kotoba/internal/store"
	"github.com/ayumu/kotoba/internal/story"
	"github.com/ayumu/kotoba/internal/ui/layout"
)

// Options configure a program run.
type Options struct {
	// DBPath overrides the default database location.
	DBPath string

	// ProfileName skips the profile picker and ensures this profile.
	ProfileName string
}

// streakMsg refreshes the header streak badge.
type streakMsg int

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   *services.Deps
	width  int
	height int
	streak int
}

// newAppModel builds the service bundle and the initial screen.
func newAppModel(st *store.Store, provider llm.Provider, opts Options) (*AppModel, error) {
	deps := &services.Deps{
		Store:  st,
		Chat:   chat.NewService(provider, chat.DefaultConfig()),
		Review: review.NewService(provider, review.DefaultConfig()),
		Story:  story.NewService(provider, story.DefaultConfig()),
		Stats:  stats.NewService(st.ConversationRepo(), st.DeckRepo(), st.StoryRepo()),
	}
	if speaker, err := speech.NewSpeaker(); err == nil {
		deps.Speaker = speaker
	}

	m := &AppModel{deps: deps}

	homeFactory := func(p *store.Profile) screen.Screen {
		deps.Session = session.New(p)
		return home.New(deps)
	}

	if opts.ProfileName != "" {
		p, err := st.ProfileRepo().Ensure(context.Background(), opts.ProfileName)
		if err != nil {
			return nil, fmt.Errorf("ensure profile: %w", err)
		}
		m.router = router.New(homeFactory(p))
	} else {
		m.router = router.New(welcome.New(st.ProfileRepo(), homeFactory))
	}

	return m, nil
}

func (m *AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

// refreshStreak recomputes the header badge in the background.
func (m *AppModel) refreshStreak() tea.Cmd {
	if m.deps.Session == nil {
		return nil
	}
	profileID := m.deps.Session.ProfileID
	return func() tea.Msg {
		sum, err := m.deps.Stats.Summarize(context.Background(), profileID, time.Now())
		if err != nil {
			return streakMsg(0)
		}
		return streakMsg(sum.StreakDays)
	}
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case streakMsg:
		m.streak = int(msg)
		return m, nil

	case router.ReplaceScreenMsg:
		// The welcome → home handoff establishes the session; pick up
		// the streak for the header.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.refreshStreak())

	case router.PopScreenMsg:
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.refreshStreak())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				if cmd, handled := h.HandleEsc(); handled {
					return m, cmd
				}
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	profileName := ""
	if m.deps.Session != nil {
		profileName = m.deps.Session.Name
	}
	header := layout.RenderHeader(title, profileName, m.streak, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run opens the store, builds the provider, and starts the program.
func Run(opts Options) error {
	dbPath := opts.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return err
		}
	}
	if err := store.EnsureDir(dbPath); err != nil {
		return err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no API key found: set KOTOBA_<PROVIDER>_API_KEY or a standard key like GEMINI_API_KEY")
		}
		cfg = discovered
	}
	provider, err := llm.NewProvider(context.Background(), cfg, st.EventRepo())
	if err != nil {
		return err
	}

	m, err := newAppModel(st, provider, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
