package welcome

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ayumu/kotoba/internal/router"
	"github.com/ayumu/kotoba/internal/screen"
	"github.com/ayumu/kotoba/internal/store"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

// fakeProfiles is an in-memory ProfileRepo.
type fakeProfiles struct {
	store.ProfileRepo
	rows   []*store.Profile
	nextID int
}

func (f *fakeProfiles) List(context.Context) ([]*store.Profile, error) {
	return f.rows, nil
}

func (f *fakeProfiles) Ensure(_ context.Context, name string) (*store.Profile, error) {
	for _, p := range f.rows {
		if p.Name == name {
			return p, nil
		}
	}
	f.nextID++
	p := &store.Profile{ID: f.nextID, Name: name, CreatedAt: time.Now()}
	f.rows = append(f.rows, p)
	return p, nil
}

func newTestWelcome(profiles ...*store.Profile) (*WelcomeScreen, *int) {
	callCount := 0
	factory := func(*store.Profile) screen.Screen {
		callCount++
		return &stubScreen{}
	}
	repo := &fakeProfiles{rows: profiles, nextID: len(profiles)}
	w := New(repo, factory)
	// Deliver the Init load synchronously.
	msg := w.Init()()
	w.Update(msg)
	return w, &callCount
}

func keyPress(w *WelcomeScreen, keys string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range keys {
		if r == '\r' {
			_, cmd = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
			continue
		}
		_, cmd = w.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return cmd
}

func TestFirstRunGoesToNameEntry(t *testing.T) {
	w, _ := newTestWelcome()
	if !w.creating {
		t.Error("empty profile list should open name entry")
	}
}

func TestCreateProfileTransitions(t *testing.T) {
	w, callCount := newTestWelcome()

	keyPress(w, "Aoi")
	cmd := keyPress(w, "\r")
	if cmd == nil {
		t.Fatal("enter should submit the name")
	}

	// Ensure runs in the command; deliver its result.
	_, cmd = w.Update(cmd())
	if cmd == nil {
		t.Fatal("profileChosenMsg should produce the transition command")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if *callCount != 1 {
		t.Errorf("factory calls = %d, want 1", *callCount)
	}
}

func TestSelectExistingProfile(t *testing.T) {
	w, callCount := newTestWelcome(
		&store.Profile{ID: 1, Name: "Aoi"},
		&store.Profile{ID: 2, Name: "Ren"},
	)
	if w.creating {
		t.Fatal("existing profiles should show the picker")
	}

	keyPress(w, "j")
	cmd := keyPress(w, "\r")
	if cmd == nil {
		t.Fatal("enter should select the profile")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if *callCount != 1 {
		t.Errorf("factory calls = %d, want 1", *callCount)
	}
}

func TestTransitionHappensOnce(t *testing.T) {
	w, callCount := newTestWelcome(&store.Profile{ID: 1, Name: "Aoi"})

	keyPress(w, "\r")
	cmd := keyPress(w, "\r")
	if cmd != nil {
		t.Error("second selection should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory calls = %d, want 1", *callCount)
	}
}

func TestBlankNameRejected(t *testing.T) {
	w, callCount := newTestWelcome()

	cmd := keyPress(w, "\r")
	if cmd != nil {
		t.Error("blank name should not submit")
	}
	if *callCount != 0 {
		t.Errorf("factory calls = %d, want 0", *callCount)
	}
}
