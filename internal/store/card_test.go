package store

import (
	"context"
	"errors"
	"testing"
)

func testDeck(t *testing.T, s *Store, profileID int, name string) *Deck {
	t.Helper()
	d, err := s.DeckRepo().Create(context.Background(), profileID, name, "")
	if err != nil {
		t.Fatalf("create deck %q: %v", name, err)
	}
	return d
}

func TestCardCreateAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := testProfile(t, s, "Aki")
	d := testDeck(t, s, p.ID, "JLPT N5 Verbs")
	repo := s.CardRepo()

	fronts := []string{"食べる", "飲む", "行く"}
	for _, f := range fronts {
		if _, err := repo.Create(ctx, p.ID, d.ID, f, "…"); err != nil {
			t.Fatalf("create card %q: %v", f, err)
		}
	}

	cards, err := repo.List(ctx, p.ID, d.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cards) != len(fronts) {
		t.Fatalf("card count = %d, want %d", len(cards), len(fronts))
	}
	for i, c := range cards {
		if c.Front != fronts[i] {
			t.Errorf("card %d front = %q, want %q (creation order)", i, c.Front, fronts[i])
		}
	}
}

func TestCardMutationRequiresDeckOwnership(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	owner := testProfile(t, s, "Aki")
	intruder := testProfile(t, s, "Ben")
	d := testDeck(t, s, owner.ID, "Private deck")
	repo := s.CardRepo()

	c, err := repo.Create(ctx, owner.ID, d.ID, "猫", "ねこ — cat")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Every mutation path must fail before touching the row.
	if _, err := repo.Create(ctx, intruder.ID, d.ID, "x", "y"); !errors.Is(err, ErrNotOwned) {
		t.Errorf("create in unowned deck: err = %v, want ErrNotOwned", err)
	}
	if _, err := repo.Update(ctx, intruder.ID, c.ID, "x", "y"); !errors.Is(err, ErrNotOwned) {
		t.Errorf("update unowned card: err = %v, want ErrNotOwned", err)
	}
	if err := repo.Delete(ctx, intruder.ID, c.ID); !errors.Is(err, ErrNotOwned) {
		t.Errorf("delete unowned card: err = %v, want ErrNotOwned", err)
	}
	if _, err := repo.List(ctx, intruder.ID, d.ID); !errors.Is(err, ErrNotOwned) {
		t.Errorf("list unowned deck: err = %v, want ErrNotOwned", err)
	}

	// No mutation happened.
	cards, err := repo.List(ctx, owner.ID, d.ID)
	if err != nil {
		t.Fatalf("list as owner: %v", err)
	}
	if len(cards) != 1 || cards[0].Front != "猫" {
		t.Errorf("deck was mutated by unauthorized access: %+v", cards)
	}
}

func TestCardUpdateMissingCard(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := testProfile(t, s, "Aki")

	if _, err := s.CardRepo().Update(ctx, p.ID, 12345, "a", "b"); !errors.Is(err, ErrNotOwned) {
		t.Errorf("update missing card: err = %v, want ErrNotOwned", err)
	}
}

func TestDeckDeleteCascadesToCards(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := testProfile(t, s, "Aki")
	d := testDeck(t, s, p.ID, "Doomed deck")

	if _, err := s.CardRepo().Create(ctx, p.ID, d.ID, "犬", "いぬ — dog"); err != nil {
		t.Fatalf("create card: %v", err)
	}

	if err := s.DeckRepo().Delete(ctx, p.ID, d.ID); err != nil {
		t.Fatalf("delete deck: %v", err)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM cards").Scan(&count); err != nil {
		t.Fatalf("count cards: %v", err)
	}
	if count != 0 {
		t.Errorf("orphaned cards after deck delete: %d", count)
	}
}

func TestDeckMutationScopedToProfile(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	owner := testProfile(t, s, "Aki")
	intruder := testProfile(t, s, "Ben")
	d := testDeck(t, s, owner.ID, "Grammar")
	repo := s.DeckRepo()

	if _, err := repo.Get(ctx, intruder.ID, d.ID); !errors.Is(err, ErrNotOwned) {
		t.Errorf("get unowned deck: err = %v, want ErrNotOwned", err)
	}
	if _, err := repo.Update(ctx, intruder.ID, d.ID, "stolen", ""); !errors.Is(err, ErrNotOwned) {
		t.Errorf("update unowned deck: err = %v, want ErrNotOwned", err)
	}
	if err := repo.Delete(ctx, intruder.ID, d.ID); !errors.Is(err, ErrNotOwned) {
		t.Errorf("delete unowned deck: err = %v, want ErrNotOwned", err)
	}

	got, err := repo.Get(ctx, owner.ID, d.ID)
	if err != nil {
		t.Fatalf("get as owner: %v", err)
	}
	if got.Name != "Grammar" {
		t.Errorf("deck name = %q, want %q", got.Name, "Grammar")
	}
}
