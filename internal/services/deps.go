// Package services bundles the wired application services handed to
// screens. Screens take the bundle rather than six constructor
// arguments each; everything in it is built once at startup.
package services

import (
	"github.com/ayumu/kotoba/internal/chat"
	"github.com/ayumu/kotoba/internal/review"
	"github.com/ayumu/kotoba/internal/session"
	"github.com/ayumu/kotoba/internal/speech"
	"github.com/ayumu/kotoba/internal/stats"
	"github.com/ayumu/kotoba/internal/store"
	"github.com/ayumu/kotoba/internal/story"
)

// Deps is the set of services available to screens.
type Deps struct {
	Session *session.Session
	Store   *store.Store

	Chat   *chat.Service
	Review *review.Service
	Story  *story.Service
	Stats  *stats.Service

	// Speaker is nil when no TTS binary is available; screens show a
	// "speech unavailable" hint instead of failing.
	Speaker speech.Speaker
}
