package story

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ayumu/kotoba/internal/llm"
)

var validStoryJSON = `{
	"title": "猫の一日",
	"content": "朝、猫は起きました。\n\n外はいい天気でした。猫は公園へ行きました。",
	"vocabulary": [
		{"word": "公園", "reading": "こうえん", "definition": "park"},
		{"word": "天気", "reading": "てんき", "definition": "weather"}
	]
}`

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validStoryJSON)},
	)
	svc := NewService(mock, DefaultConfig())

	st, err := svc.Generate(context.Background(), LevelN5, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if st.Title != "猫の一日" {
		t.Errorf("title = %q", st.Title)
	}
	if len(st.Vocabulary) != 2 {
		t.Fatalf("vocabulary length = %d, want 2", len(st.Vocabulary))
	}
	if st.Vocabulary[0].Reading != "こうえん" {
		t.Errorf("vocabulary[0] = %+v", st.Vocabulary[0])
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("call count = %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != StorySchema {
		t.Error("story must request structured output")
	}
	if !strings.Contains(req.Messages[0].Content, "N5") {
		t.Error("level missing from user message")
	}
}

func TestGenerate_TopicInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validStoryJSON)},
	)
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), LevelN3, "train travel"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "train travel") {
		t.Error("topic missing from user message")
	}
}

func TestGenerate_UnknownLevel(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), Level("N6"), "")
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("err = %v, want ErrUnknownLevel", err)
	}
	if mock.CallCount() != 0 {
		t.Error("unknown level must not reach the provider")
	}
}

func TestGenerate_FencedOutput(t *testing.T) {
	fenced := "```json\n" + validStoryJSON + "\n```"
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(fenced)},
	)
	svc := NewService(mock, DefaultConfig())

	st, err := svc.Generate(context.Background(), LevelN4, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Title != "猫の一日" {
		t.Errorf("title = %q", st.Title)
	}
}

func TestParseStory_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"plain prose", "むかしむかし、あるところに…"},
		{"missing vocabulary", `{"title": "x", "content": "y"}`},
		{"empty title", `{"title": "", "content": "y", "vocabulary": []}`},
		{"vocab entry missing reading", `{"title": "x", "content": "y", "vocabulary": [{"word": "a", "definition": "b"}]}`},
		{"truncated JSON", `{"title": "x", "content": "`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseStory(json.RawMessage(tc.raw))
			if err == nil {
				t.Fatal("expected parse failure")
			}
			var invalid *llm.ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Errorf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestLevels(t *testing.T) {
	for _, l := range Levels {
		if !l.Valid() {
			t.Errorf("level %q should be valid", l)
		}
		if l.Description() == "" {
			t.Errorf("level %q missing description", l)
		}
	}
	if Level("N0").Valid() {
		t.Error("N0 should not be valid")
	}
}
