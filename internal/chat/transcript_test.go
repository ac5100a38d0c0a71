package chat

import (
	"errors"
	"testing"

	"github.com/ayumu/kotoba/internal/llm"
	"github.com/ayumu/kotoba/internal/store"
)

func TestSplitTranscript(t *testing.T) {
	msgs := []store.Message{
		{Role: store.RoleUser, Content: "A"},
		{Role: store.RoleAssistant, Content: "B"},
		{Role: store.RoleUser, Content: "C"},
	}

	history, prompt, err := SplitTranscript(msgs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if prompt != "C" {
		t.Errorf("prompt = %q, want %q", prompt, "C")
	}
	want := []llm.Message{
		{Role: llm.RoleUser, Content: "A"},
		{Role: llm.RoleAssistant, Content: "B"},
	}
	if len(history) != len(want) {
		t.Fatalf("history length = %d, want %d", len(history), len(want))
	}
	for i := range want {
		if history[i] != want[i] {
			t.Errorf("history[%d] = %+v, want %+v", i, history[i], want[i])
		}
	}
}

func TestSplitTranscript_SingleTurn(t *testing.T) {
	history, prompt, err := SplitTranscript([]store.Message{
		{Role: store.RoleUser, Content: "こんにちは"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history = %+v, want empty", history)
	}
	if prompt != "こんにちは" {
		t.Errorf("prompt = %q", prompt)
	}
}

func TestSplitTranscript_Empty(t *testing.T) {
	_, _, err := SplitTranscript(nil)
	if !errors.Is(err, ErrEmptyTranscript) {
		t.Errorf("err = %v, want ErrEmptyTranscript", err)
	}
}

func TestSplitTranscript_LastTurnAssistant(t *testing.T) {
	_, _, err := SplitTranscript([]store.Message{
		{Role: store.RoleUser, Content: "A"},
		{Role: store.RoleAssistant, Content: "B"},
	})
	if !errors.Is(err, ErrLastTurnNotUser) {
		t.Errorf("err = %v, want ErrLastTurnNotUser", err)
	}
}

func TestSplitTranscript_UnknownRoleTreatedAsUser(t *testing.T) {
	history, _, err := SplitTranscript([]store.Message{
		{Role: "system", Content: "X"},
		{Role: store.RoleUser, Content: "Y"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if history[0].Role != llm.RoleUser {
		t.Errorf("unknown role mapped to %q, want user", history[0].Role)
	}
}

func TestLookup(t *testing.T) {
	if got := Lookup("restaurant"); got.ID != "restaurant" {
		t.Errorf("Lookup(restaurant) = %q", got.ID)
	}
	if got := Lookup("free"); got.ID != "free" {
		t.Errorf("Lookup(free) = %q", got.ID)
	}
	if got := Lookup("no-such-scenario"); got.ID != "free" {
		t.Errorf("Lookup(unknown) = %q, want free fallback", got.ID)
	}
}
