package study

import (
	"testing"

	"github.com/ayumu/kotoba/internal/store"
)

func testCards(n int) []*store.Card {
	cards := make([]*store.Card, n)
	for i := range cards {
		cards[i] = &store.Card{ID: i + 1}
	}
	return cards
}

func TestNext_WrapsAround(t *testing.T) {
	s := New(testCards(3))

	if s.Current().ID != 1 {
		t.Fatalf("start card = %d, want 1", s.Current().ID)
	}
	s.Next()
	s.Next()
	if s.Current().ID != 3 {
		t.Fatalf("card = %d, want 3", s.Current().ID)
	}
	s.Next()
	if s.Current().ID != 1 {
		t.Errorf("next from last card = %d, want wrap to 1", s.Current().ID)
	}
}

func TestPrev_WrapsAround(t *testing.T) {
	s := New(testCards(3))

	s.Prev()
	if s.Current().ID != 3 {
		t.Errorf("prev from first card = %d, want wrap to 3", s.Current().ID)
	}
}

func TestNavigation_ResetsReveal(t *testing.T) {
	s := New(testCards(2))

	s.Reveal()
	if !s.Revealed() {
		t.Fatal("reveal did not take")
	}
	s.Next()
	if s.Revealed() {
		t.Error("next must hide the answer")
	}

	s.Reveal()
	s.Prev()
	if s.Revealed() {
		t.Error("prev must hide the answer")
	}
}

func TestPosition(t *testing.T) {
	s := New(testCards(3))
	if s.Position() != 1 || s.Len() != 3 {
		t.Errorf("position/len = %d/%d, want 1/3", s.Position(), s.Len())
	}
	s.Next()
	if s.Position() != 2 {
		t.Errorf("position = %d, want 2", s.Position())
	}
}

func TestEmptyRun(t *testing.T) {
	s := New(nil)
	if s.Current() != nil {
		t.Error("current on empty run should be nil")
	}
	if s.Position() != 0 {
		t.Errorf("position = %d, want 0", s.Position())
	}
	s.Next()
	s.Prev()
	s.Reveal()
}
