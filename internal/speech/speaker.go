package speech

import (
	"context"
	"os/exec"
	"sync"
)

// ttsCommand is one known platform TTS binary and the arguments that
// select a Japanese voice for it.
type ttsCommand struct {
	name string
	args []string
}

// Probed in order; the first binary found on PATH wins.
var ttsCommands = []ttsCommand{
	{name: "say", args: []string{"-v", "Kyoko"}},
	{name: "espeak-ng", args: []string{"-v", "ja"}},
	{name: "espeak", args: []string{"-v", "ja"}},
}

// runner abstracts process execution so tests can fake it.
type runner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// CommandSpeaker speaks by shelling out to a platform TTS binary.
type CommandSpeaker struct {
	cmd ttsCommand
	run runner

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64 // bumped per utterance; cleanup applies only to its own
	state  State
}

// NewSpeaker probes PATH for a known TTS binary and returns a speaker
// using it, or ErrUnsupported when none is found.
func NewSpeaker() (*CommandSpeaker, error) {
	for _, c := range ttsCommands {
		if _, err := exec.LookPath(c.name); err == nil {
			return &CommandSpeaker{cmd: c, run: execRunner}, nil
		}
	}
	return nil, ErrUnsupported
}

// Speak starts reading text aloud. An utterance already in progress is
// cancelled first; the replacement starts immediately.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) (<-chan struct{}, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.gen++
	gen := s.gen
	s.cancel = cancel
	s.state = StateSpeaking
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		args := append(append([]string{}, s.cmd.args...), text)
		// The binary exits nonzero on cancellation; either way the
		// utterance is over.
		_ = s.run(ctx, s.cmd.name, args...)

		s.mu.Lock()
		// A replacement utterance may already own the speaker.
		if s.gen == gen {
			s.cancel = nil
			s.state = StateIdle
		}
		s.mu.Unlock()
	}()

	return done, nil
}

// Stop cancels the current utterance, if any.
func (s *CommandSpeaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// State reports whether the speaker is currently playing.
func (s *CommandSpeaker) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
