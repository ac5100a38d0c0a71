package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testProfile(t *testing.T, s *Store, name string) *Profile {
	t.Helper()
	p, err := s.ProfileRepo().Ensure(context.Background(), name)
	if err != nil {
		t.Fatalf("ensure profile %q: %v", name, err)
	}
	return p
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileEnsureIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProfileRepo()

	p1, err := repo.Ensure(ctx, "Aki")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	p2, err := repo.Ensure(ctx, "Aki")
	if err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if p1.ID != p2.ID {
		t.Errorf("ensure created a second profile: %d != %d", p1.ID, p2.ID)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("profile count = %d, want 1", len(all))
	}
}

func TestProfileUpdate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProfileRepo()

	p := testProfile(t, s, "Aki")
	updated, err := repo.Update(ctx, p.ID, "Aki", "Studying for N3")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Bio != "Studying for N3" {
		t.Errorf("bio = %q, want %q", updated.Bio, "Studying for N3")
	}

	if _, err := repo.Update(ctx, p.ID+999, "Nobody", ""); err != ErrNotFound {
		t.Errorf("update missing profile: err = %v, want ErrNotFound", err)
	}
}
