package stats

import (
	"context"
	"testing"
	"time"

	"github.com/ayumu/kotoba/internal/store"
)

type fakeConversations struct {
	store.ConversationRepo
	rows []*store.Conversation
}

func (f *fakeConversations) List(context.Context, int, int) ([]*store.Conversation, error) {
	return f.rows, nil
}

type fakeDecks struct {
	store.DeckRepo
	rows []*store.Deck
}

func (f *fakeDecks) List(context.Context, int) ([]*store.Deck, error) {
	return f.rows, nil
}

type fakeStories struct {
	store.StoryRepo
	rows []*store.Story
}

func (f *fakeStories) List(context.Context, int) ([]*store.Story, error) {
	return f.rows, nil
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	svc := NewService(
		&fakeConversations{rows: []*store.Conversation{
			{ID: 1, Kind: "restaurant", UpdatedAt: now},
			{ID: 2, Kind: "restaurant", UpdatedAt: yesterday},
			{ID: 3, Kind: "free", UpdatedAt: yesterday},
		}},
		&fakeDecks{rows: []*store.Deck{
			{ID: 1, CardCount: 10},
			{ID: 2, CardCount: 5},
		}},
		&fakeStories{rows: []*store.Story{{ID: 1}}},
	)

	sum, err := svc.Summarize(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.Conversations != 3 {
		t.Errorf("conversations = %d, want 3", sum.Conversations)
	}
	if sum.Decks != 2 || sum.Cards != 15 {
		t.Errorf("decks/cards = %d/%d, want 2/15", sum.Decks, sum.Cards)
	}
	if sum.Stories != 1 {
		t.Errorf("stories = %d, want 1", sum.Stories)
	}
	if sum.StreakDays != 2 {
		t.Errorf("streak = %d, want 2", sum.StreakDays)
	}
	if sum.FavoriteScenario != "restaurant" {
		t.Errorf("favorite = %q, want restaurant", sum.FavoriteScenario)
	}
	if !sum.LastPracticed.Equal(now) {
		t.Errorf("last practiced = %v, want %v", sum.LastPracticed, now)
	}
}

func TestSummarize_Empty(t *testing.T) {
	svc := NewService(&fakeConversations{}, &fakeDecks{}, &fakeStories{})

	sum, err := svc.Summarize(context.Background(), 1, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Conversations != 0 || sum.StreakDays != 0 || sum.FavoriteScenario != "" {
		t.Errorf("empty summary = %+v", sum)
	}
}

func TestFavorite_TieBreaksByName(t *testing.T) {
	got := favorite(map[string]int{"shopping": 2, "free": 2, "interview": 1})
	if got != "free" {
		t.Errorf("favorite = %q, want free", got)
	}
}
