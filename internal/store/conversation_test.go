package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestConversationRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := testProfile(t, s, "Aki")
	repo := s.ConversationRepo()

	msgs := []Message{
		{Role: RoleUser, Content: "こんにちは"},
		{Role: RoleAssistant, Content: "こんにちは！今日は何を話しましょうか。"},
		{Role: RoleUser, Content: "天気について"},
	}

	id, err := repo.Upsert(ctx, p.ID, 0, "free", msgs)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.Get(ctx, p.ID, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(got.Messages, msgs) {
		t.Errorf("messages round-trip mismatch:\ngot  %+v\nwant %+v", got.Messages, msgs)
	}
	if got.Kind != "free" {
		t.Errorf("kind = %q, want %q", got.Kind, "free")
	}
}

func TestConversationUpsertUpdatesInPlace(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := testProfile(t, s, "Aki")
	repo := s.ConversationRepo()

	id, err := repo.Upsert(ctx, p.ID, 0, "restaurant", []Message{
		{Role: RoleUser, Content: "すみません"},
	})
	if err != nil {
		t.Fatalf("initial upsert: %v", err)
	}

	longer := []Message{
		{Role: RoleUser, Content: "すみません"},
		{Role: RoleAssistant, Content: "はい、ご注文をどうぞ。"},
		{Role: RoleUser, Content: "ラーメンをください"},
	}
	id2, err := repo.Upsert(ctx, p.ID, id, "restaurant", longer)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if id2 != id {
		t.Errorf("upsert with id returned %d, want %d", id2, id)
	}

	all, err := repo.List(ctx, p.ID, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("conversation count = %d, want 1 (upsert must not create a second row)", len(all))
	}
	if !reflect.DeepEqual(all[0].Messages, longer) {
		t.Errorf("message list was not replaced:\ngot  %+v\nwant %+v", all[0].Messages, longer)
	}
}

func TestConversationUpsertWithoutIDCreatesOneRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := testProfile(t, s, "Aki")
	repo := s.ConversationRepo()

	msgs := []Message{{Role: RoleUser, Content: "はじめまして"}}

	id1, err := repo.Upsert(ctx, p.ID, 0, "free", msgs)
	if err != nil {
		t.Fatalf("upsert 1: %v", err)
	}
	id2, err := repo.Upsert(ctx, p.ID, 0, "free", msgs)
	if err != nil {
		t.Fatalf("upsert 2: %v", err)
	}
	if id1 == id2 {
		t.Errorf("upsert without id reused row %d", id1)
	}

	all, err := repo.List(ctx, p.ID, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("conversation count = %d, want 2", len(all))
	}
}

func TestConversationCrossProfileIsolation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	owner := testProfile(t, s, "Aki")
	other := testProfile(t, s, "Ben")
	repo := s.ConversationRepo()

	id, err := repo.Upsert(ctx, owner.ID, 0, "free", []Message{
		{Role: RoleUser, Content: "秘密の話"},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if _, err := repo.Get(ctx, other.ID, id); !errors.Is(err, ErrNotOwned) {
		t.Errorf("get as other profile: err = %v, want ErrNotOwned", err)
	}
	if _, err := repo.Upsert(ctx, other.ID, id, "free", nil); !errors.Is(err, ErrNotOwned) {
		t.Errorf("upsert as other profile: err = %v, want ErrNotOwned", err)
	}
	if err := repo.Delete(ctx, other.ID, id); !errors.Is(err, ErrNotOwned) {
		t.Errorf("delete as other profile: err = %v, want ErrNotOwned", err)
	}

	// The row must be untouched.
	got, err := repo.Get(ctx, owner.ID, id)
	if err != nil {
		t.Fatalf("get as owner: %v", err)
	}
	if len(got.Messages) != 1 || got.Messages[0].Content != "秘密の話" {
		t.Errorf("conversation was mutated by unauthorized access: %+v", got.Messages)
	}
}

func TestConversationListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	p := testProfile(t, s, "Aki")
	repo := s.ConversationRepo()

	for _, kind := range []string{"free", "restaurant", "interview"} {
		if _, err := repo.Upsert(ctx, p.ID, 0, kind, []Message{{Role: RoleUser, Content: kind}}); err != nil {
			t.Fatalf("upsert %s: %v", kind, err)
		}
	}

	got, err := repo.List(ctx, p.ID, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("list limit: got %d rows, want 2", len(got))
	}
}
