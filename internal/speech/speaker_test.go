package speech

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeRunner blocks until its context is cancelled or release is closed,
// recording every invocation.
type fakeRunner struct {
	mu      sync.Mutex
	calls   [][]string
	release chan struct{}
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{release: make(chan struct{})}
}

func (f *fakeRunner) run(ctx context.Context, name string, args ...string) error {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-f.release:
		return nil
	}
}

func (f *fakeRunner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testSpeaker(f *fakeRunner) *CommandSpeaker {
	return &CommandSpeaker{
		cmd: ttsCommand{name: "say", args: []string{"-v", "Kyoko"}},
		run: f.run,
	}
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("utterance did not finish")
	}
}

func TestSpeak(t *testing.T) {
	f := newFakeRunner()
	s := testSpeaker(f)

	done, err := s.Speak(context.Background(), "こんにちは")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.State() != StateSpeaking {
		t.Error("state should be speaking")
	}

	close(f.release)
	waitDone(t, done)

	if s.State() != StateIdle {
		t.Error("state should be idle after playback")
	}
	f.mu.Lock()
	call := f.calls[0]
	f.mu.Unlock()
	want := []string{"say", "-v", "Kyoko", "こんにちは"}
	for i := range want {
		if call[i] != want[i] {
			t.Fatalf("call = %v, want %v", call, want)
		}
	}
}

func TestSpeak_ReplacesInProgressUtterance(t *testing.T) {
	f := newFakeRunner()
	s := testSpeaker(f)

	done1, err := s.Speak(context.Background(), "一")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	done2, err := s.Speak(context.Background(), "二")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The first utterance is cancelled, not waited out.
	waitDone(t, done1)
	if s.State() != StateSpeaking {
		t.Error("replacement should still be speaking")
	}

	close(f.release)
	waitDone(t, done2)
	if s.State() != StateIdle {
		t.Error("state should be idle")
	}
	if f.callCount() != 2 {
		t.Errorf("call count = %d, want 2", f.callCount())
	}
}

func TestStop_AfterReplacement(t *testing.T) {
	f := newFakeRunner()
	s := testSpeaker(f)

	done1, err := s.Speak(context.Background(), "一")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	done2, err := s.Speak(context.Background(), "二")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Let the cancelled first utterance finish its cleanup; it must not
	// touch the replacement's cancel func or state.
	waitDone(t, done1)

	s.Stop()
	waitDone(t, done2)
	if s.State() != StateIdle {
		t.Error("state should be idle after stopping the replacement")
	}
}

func TestStop(t *testing.T) {
	f := newFakeRunner()
	s := testSpeaker(f)

	done, err := s.Speak(context.Background(), "長い話")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Stop()
	waitDone(t, done)

	if s.State() != StateIdle {
		t.Error("state should be idle after stop")
	}
}

func TestStop_Idle(t *testing.T) {
	s := testSpeaker(newFakeRunner())
	s.Stop()
	if s.State() != StateIdle {
		t.Error("stop on an idle speaker must be a no-op")
	}
}

func TestRecognizer_Unsupported(t *testing.T) {
	_, err := NewRecognizer().Listen(context.Background())
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}
