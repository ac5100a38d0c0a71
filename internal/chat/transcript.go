package chat

import (
	"errors"

	"github.com/ayumu/kotoba/internal/llm"
	"github.com/ayumu/kotoba/internal/store"
)

var (
	// ErrEmptyTranscript indicates there is no turn to respond to.
	ErrEmptyTranscript = errors.New("transcript is empty")

	// ErrLastTurnNotUser indicates the transcript does not end with a
	// learner turn, so there is nothing for the model to answer.
	ErrLastTurnNotUser = errors.New("last transcript turn is not from the user")
)

// SplitTranscript maps a stored conversation onto the request shape the
// providers expect: every turn but the last becomes context history, and
// the last turn is the new prompt. Unknown roles are treated as user
// turns rather than dropped.
func SplitTranscript(msgs []store.Message) (history []llm.Message, prompt string, err error) {
	if len(msgs) == 0 {
		return nil, "", ErrEmptyTranscript
	}

	last := msgs[len(msgs)-1]
	if last.Role != store.RoleUser {
		return nil, "", ErrLastTurnNotUser
	}

	history = make([]llm.Message, 0, len(msgs)-1)
	for _, m := range msgs[:len(msgs)-1] {
		role := llm.RoleUser
		if m.Role == store.RoleAssistant {
			role = llm.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: m.Content})
	}

	return history, last.Content, nil
}
