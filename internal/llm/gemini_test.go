package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestBuildGeminiContents_RoleMapping(t *testing.T) {
	msgs := []Message{
		{Role: RoleUser, Content: "A"},
		{Role: RoleAssistant, Content: "B"},
		{Role: RoleUser, Content: "C"},
	}

	contents := buildGeminiContents(msgs)
	if len(contents) != 3 {
		t.Fatalf("content count = %d, want 3", len(contents))
	}

	wantRoles := []string{"user", "model", "user"}
	for i, want := range wantRoles {
		if contents[i].Role != want {
			t.Errorf("content %d role = %q, want %q", i, contents[i].Role, want)
		}
	}
	if contents[1].Parts[0].Text != "B" {
		t.Errorf("content 1 text = %q, want %q", contents[1].Parts[0].Text, "B")
	}
}

func TestBuildGeminiContents_AssistantOpenerCoercedToUser(t *testing.T) {
	// Scenario chats open with an assistant greeting; Gemini requires
	// the first content to come from "user".
	msgs := []Message{
		{Role: RoleAssistant, Content: "いらっしゃいませ！"},
		{Role: RoleUser, Content: "メニューをください"},
	}

	contents := buildGeminiContents(msgs)
	if contents[0].Role != "user" {
		t.Errorf("first content role = %q, want coerced %q", contents[0].Role, "user")
	}
	if contents[1].Role != "user" {
		t.Errorf("second content role = %q, want %q", contents[1].Role, "user")
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "a story",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"level": map[string]any{"type": "string", "enum": []any{"N5", "N4"}},
			"vocabulary": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{"type": "string"},
					},
					"required": []any{"word"},
				},
			},
		},
		"required": []any{"title", "vocabulary"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Errorf("type = %v, want object", schema.Type)
	}
	if schema.Description != "a story" {
		t.Errorf("description = %q", schema.Description)
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %v, want 2 entries", schema.Required)
	}
	if schema.Properties["title"].Type != genai.TypeString {
		t.Errorf("title type = %v, want string", schema.Properties["title"].Type)
	}
	if got := schema.Properties["level"].Enum; len(got) != 2 || got[0] != "N5" {
		t.Errorf("level enum = %v", got)
	}
	items := schema.Properties["vocabulary"].Items
	if items == nil || items.Type != genai.TypeObject {
		t.Fatalf("vocabulary items not converted: %+v", items)
	}
	if items.Properties["word"].Type != genai.TypeString {
		t.Errorf("vocabulary word type = %v, want string", items.Properties["word"].Type)
	}
}
