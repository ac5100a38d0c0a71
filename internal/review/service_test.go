package review

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ayumu/kotoba/internal/llm"
	"github.com/ayumu/kotoba/internal/store"
)

var validReviewJSON = `{
	"score": 85,
	"strengths": ["Good use of polite forms", "Natural openings"],
	"corrections": [
		{
			"original": "昨日、映画を見るました",
			"corrected": "昨日、映画を見ました",
			"explanation": "The past polite form of 見る is 見ました."
		}
	],
	"recommendations": ["Review past tense conjugation", "Practice ordering food"]
}`

func testConversation() *store.Conversation {
	return &store.Conversation{
		ID:   1,
		Kind: "chat",
		Messages: []store.Message{
			{Role: store.RoleAssistant, Content: "いらっしゃいませ！"},
			{Role: store.RoleUser, Content: "昨日、映画を見るました"},
		},
	}
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validReviewJSON)},
	)
	svc := NewService(mock, DefaultConfig())

	rev, err := svc.Generate(context.Background(), testConversation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rev.Score != 85 {
		t.Errorf("score = %d, want 85", rev.Score)
	}
	if len(rev.Strengths) != 2 || len(rev.Corrections) != 1 || len(rev.Recommendations) != 2 {
		t.Errorf("unexpected shape: %+v", rev)
	}
	if rev.Corrections[0].Corrected != "昨日、映画を見ました" {
		t.Errorf("correction = %+v", rev.Corrections[0])
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("call count = %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != ReviewSchema {
		t.Error("review must request structured output")
	}
	if !strings.Contains(req.Messages[0].Content, "昨日、映画を見るました") {
		t.Error("transcript missing from user message")
	}
	if !strings.Contains(req.Messages[0].Content, "Student:") {
		t.Error("learner turns must be labelled in the transcript")
	}
}

func TestGenerate_FencedOutput(t *testing.T) {
	fenced := "```json\n" + validReviewJSON + "\n```"
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(fenced)},
	)
	svc := NewService(mock, DefaultConfig())

	rev, err := svc.Generate(context.Background(), testConversation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rev.Score != 85 {
		t.Errorf("score = %d, want 85", rev.Score)
	}
}

func TestParseReview_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"plain prose", "Great job! I'd give you an 85."},
		{"score out of range", `{"score": 150, "strengths": [], "corrections": [], "recommendations": []}`},
		{"missing required field", `{"score": 85, "strengths": [], "corrections": []}`},
		{"wrong field type", `{"score": "85", "strengths": [], "corrections": [], "recommendations": []}`},
		{"truncated JSON", `{"score": 85, "strengths": ["Good`},
		{"correction missing explanation", `{"score": 85, "strengths": [], "corrections": [{"original": "a", "corrected": "b"}], "recommendations": []}`},
		{"fenced prose", "```\nyou did well\n```"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseReview(json.RawMessage(tc.raw))
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

func TestGenerate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
	)
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), testConversation())
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("err = %v, want ErrRateLimit", err)
	}
}
