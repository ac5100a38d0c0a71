package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ayumu/kotoba/internal/llm"
	"github.com/ayumu/kotoba/internal/store"
)

func TestNextReply(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("はい、ご注文をどうぞ。")},
	)
	svc := NewService(mock, DefaultConfig())

	reply, err := svc.NextReply(context.Background(), Lookup("restaurant"), []store.Message{
		{Role: store.RoleAssistant, Content: "いらっしゃいませ！"},
		{Role: store.RoleUser, Content: "すみません"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "はい、ご注文をどうぞ。" {
		t.Errorf("reply = %q", reply)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("call count = %d", len(mock.Calls))
	}
	req := mock.Calls[0]

	// Full transcript goes out: opener as history, learner turn as prompt.
	if len(req.Messages) != 2 {
		t.Fatalf("message count = %d, want 2", len(req.Messages))
	}
	if req.Messages[0].Role != llm.RoleAssistant || req.Messages[0].Content != "いらっしゃいませ！" {
		t.Errorf("history turn = %+v", req.Messages[0])
	}
	if req.Messages[1].Role != llm.RoleUser || req.Messages[1].Content != "すみません" {
		t.Errorf("prompt turn = %+v", req.Messages[1])
	}

	// The scenario role reaches the system prompt.
	if !strings.Contains(req.System, "waiter") {
		t.Errorf("system prompt missing scenario role: %q", req.System)
	}
	if req.Schema != nil {
		t.Error("chat must not request structured output")
	}
}

func TestNextReply_EmptyTranscript(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	_, err := svc.NextReply(context.Background(), FreeTalk, nil)
	if !errors.Is(err, ErrEmptyTranscript) {
		t.Errorf("err = %v, want ErrEmptyTranscript", err)
	}
}

func TestNextReply_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := NewService(mock, DefaultConfig())

	_, err := svc.NextReply(context.Background(), FreeTalk, []store.Message{
		{Role: store.RoleUser, Content: "こんにちは"},
	})
	if err == nil {
		t.Fatal("expected provider failure to propagate")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("err = %v, want ErrProviderUnavailable", err)
	}
}
