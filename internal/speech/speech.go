// Package speech provides text-to-speech and speech recognition behind
// small start/stop interfaces. Availability depends on platform binaries;
// callers treat unavailability as a degraded mode, never a fatal error.
package speech

import (
	"context"
	"errors"
)

// ErrUnsupported is returned when no suitable platform binary exists.
var ErrUnsupported = errors.New("speech not supported on this platform")

// ErrBusy is returned by Start while a previous utterance is still
// playing and has not been stopped.
var ErrBusy = errors.New("speech already in progress")

// State is the playback state of a Speaker.
type State int

const (
	StateIdle State = iota
	StateSpeaking
)

// Speaker reads text aloud. Implementations are safe for use from a
// single goroutine; Stop may be called from any goroutine.
type Speaker interface {
	// Speak starts reading text aloud, cancelling any utterance still in
	// progress. It returns once playback has started; done is closed when
	// playback finishes or is cancelled.
	Speak(ctx context.Context, text string) (done <-chan struct{}, err error)

	// Stop cancels the current utterance, if any.
	Stop()

	// State reports whether the speaker is currently playing.
	State() State
}

// Recognizer transcribes microphone input.
type Recognizer interface {
	// Listen records until stopped or ctx is done, then returns the
	// transcript.
	Listen(ctx context.Context) (string, error)
}

// unsupportedRecognizer is the only Recognizer today: no platform we
// ship on has a standard offline recognition binary.
type unsupportedRecognizer struct{}

func (unsupportedRecognizer) Listen(context.Context) (string, error) {
	return "", ErrUnsupported
}

// NewRecognizer returns the platform recognizer.
func NewRecognizer() Recognizer {
	return unsupportedRecognizer{}
}
