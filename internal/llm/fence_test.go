package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtractJSON_Plain(t *testing.T) {
	got, err := ExtractJSON(json.RawMessage(`{"score": 85}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `{"score": 85}` {
		t.Fatalf("unexpected payload: %s", got)
	}
}

func TestExtractJSON_Fenced(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n{\"score\": 85}\n```"},
		{"bare fence", "```\n{\"score\": 85}\n```"},
		{"surrounding whitespace", "  ```json\n{\"score\": 85}\n```  \n"},
		{"no newline before close", "```json\n{\"score\": 85}```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(json.RawMessage(tt.raw))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var parsed struct {
				Score int `json:"score"`
			}
			if err := json.Unmarshal(got, &parsed); err != nil {
				t.Fatalf("extracted payload does not parse: %v", err)
			}
			if parsed.Score != 85 {
				t.Errorf("score = %d, want 85", parsed.Score)
			}
		})
	}
}

func TestExtractJSON_Malformed(t *testing.T) {
	// A bank of shapes models actually produce when they go off-script.
	malformed := []string{
		"",
		"Sorry, I can't help with that.",
		"```json\n{\"score\": \n```",
		"{\"score\": 85",
		"score // 85 // great job",
		"結果---85---頑張りました",
		"```\n```",
	}

	for _, raw := range malformed {
		_, err := ExtractJSON(json.RawMessage(raw))
		if err == nil {
			t.Errorf("input %q: expected error", raw)
			continue
		}
		var invErr *ErrInvalidResponse
		if !errors.As(err, &invErr) {
			t.Errorf("input %q: expected ErrInvalidResponse, got %T", raw, err)
		}
	}
}
