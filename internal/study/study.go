// Package study implements the flashcard study-mode state machine.
package study

import "github.com/ayumu/kotoba/internal/store"

// State is the position within a study run over a fixed card list.
// Navigation wraps in both directions and hides the answer again on
// every move.
type State struct {
	cards    []*store.Card
	index    int
	revealed bool
}

// New starts a study run at the first card, answer hidden.
func New(cards []*store.Card) *State {
	return &State{cards: cards}
}

// Len returns the number of cards in the run.
func (s *State) Len() int { return len(s.cards) }

// Position returns the 1-based position of the current card, for display.
func (s *State) Position() int {
	if len(s.cards) == 0 {
		return 0
	}
	return s.index + 1
}

// Current returns the card under the cursor, or nil for an empty run.
func (s *State) Current() *store.Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[s.index]
}

// Revealed reports whether the current card's answer is showing.
func (s *State) Revealed() bool { return s.revealed }

// Reveal shows the current card's answer.
func (s *State) Reveal() { s.revealed = true }

// Next moves to the following card, wrapping from the last card back to
// the first. The answer is hidden again.
func (s *State) Next() {
	if len(s.cards) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.cards)
	s.revealed = false
}

// Prev moves to the preceding card, wrapping from the first card to the
// last. The answer is hidden again.
func (s *State) Prev() {
	if len(s.cards) == 0 {
		return
	}
	s.index = (s.index - 1 + len(s.cards)) % len(s.cards)
	s.revealed = false
}
