package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestStoryRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := testProfile(t, s, "Aki")
	repo := s.StoryRepo()

	vocab := []VocabEntry{
		{Word: "朝", Reading: "あさ", Definition: "morning"},
		{Word: "公園", Reading: "こうえん", Definition: "park"},
	}
	created, err := repo.Create(ctx, p.ID, &Story{
		Level:      "N5",
		Title:      "朝の散歩",
		Content:    "毎朝、田中さんは公園を散歩します。",
		Vocabulary: vocab,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, p.ID, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Level != "N5" || got.Title != "朝の散歩" {
		t.Errorf("story fields mismatch: %+v", got)
	}
	if !reflect.DeepEqual(got.Vocabulary, vocab) {
		t.Errorf("vocabulary order not preserved:\ngot  %+v\nwant %+v", got.Vocabulary, vocab)
	}
}

func TestStoryScopedToProfile(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	owner := testProfile(t, s, "Aki")
	other := testProfile(t, s, "Ben")
	repo := s.StoryRepo()

	created, err := repo.Create(ctx, owner.ID, &Story{
		Level:   "N3",
		Title:   "雨の日",
		Content: "…",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.Get(ctx, other.ID, created.ID); !errors.Is(err, ErrNotOwned) {
		t.Errorf("get unowned story: err = %v, want ErrNotOwned", err)
	}
	if err := repo.Delete(ctx, other.ID, created.ID); !errors.Is(err, ErrNotOwned) {
		t.Errorf("delete unowned story: err = %v, want ErrNotOwned", err)
	}

	list, err := repo.List(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("story count = %d, want 1", len(list))
	}
}
