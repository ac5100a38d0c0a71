package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/ayumu/kotoba/internal/store"
)

// Summary is a profile's practice statistics.
type Summary struct {
	Conversations    int
	Decks            int
	Cards            int
	Stories          int
	StreakDays       int
	FavoriteScenario string // scenario kind, empty when no conversations
	LastPracticed    time.Time
}

// Service computes profile statistics from the store.
type Service struct {
	conversations store.ConversationRepo
	decks         store.DeckRepo
	stories       store.StoryRepo
}

// NewService creates a stats service.
func NewService(conversations store.ConversationRepo, decks store.DeckRepo, stories store.StoryRepo) *Service {
	return &Service{
		conversations: conversations,
		decks:         decks,
		stories:       stories,
	}
}

// Summarize computes the summary for one profile as of now.
func (s *Service) Summarize(ctx context.Context, profileID int, now time.Time) (*Summary, error) {
	convs, err := s.conversations.List(ctx, profileID, 0)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	decks, err := s.decks.List(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	stories, err := s.stories.List(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	out := &Summary{
		Conversations: len(convs),
		Decks:         len(decks),
		Stories:       len(stories),
	}

	for _, d := range decks {
		out.Cards += d.CardCount
	}

	times := make([]time.Time, 0, len(convs))
	kinds := make(map[string]int, len(convs))
	for _, c := range convs {
		times = append(times, c.UpdatedAt)
		kinds[c.Kind]++
		if c.UpdatedAt.After(out.LastPracticed) {
			out.LastPracticed = c.UpdatedAt
		}
	}
	out.StreakDays = ComputeStreak(times, now)
	out.FavoriteScenario = favorite(kinds)

	return out, nil
}

// favorite picks the most frequent kind, breaking ties by name so the
// result is stable.
func favorite(kinds map[string]int) string {
	best, bestN := "", 0
	for k, n := range kinds {
		if n > bestN || (n == bestN && bestN > 0 && k < best) {
			best, bestN = k, n
		}
	}
	return best
}
