// Package session carries the identity of the active learner through
// the UI. A session is created once at startup after the profile row is
// ensured, and passed explicitly to every screen that touches the store.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayumu/kotoba/internal/store"
)

// Session identifies the active learner for the lifetime of one program
// run. All store access is scoped by ProfileID; there is no ambient
// current-user state.
type Session struct {
	// ID identifies this run, for correlating logged events.
	ID string

	ProfileID int
	Name      string
	StartedAt time.Time
}

// New creates a session for an ensured profile.
func New(p *store.Profile) *Session {
	return &Session{
		ID:        uuid.NewString(),
		ProfileID: p.ID,
		Name:      p.Name,
		StartedAt: time.Now(),
	}
}
