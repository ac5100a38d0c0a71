package story

import "github.com/ayumu/kotoba/internal/llm"

// StorySchema defines the JSON schema for generated reading practice.
var StorySchema = &llm.Schema{
	Name:        "reading-story",
	Description: "A short Japanese story with a vocabulary list",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Story title in Japanese",
			},
			"content": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The story text in Japanese, 3-6 short paragraphs",
			},
			"vocabulary": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "The word as it appears in the story",
						},
						"reading": map[string]any{
							"type":        "string",
							"description": "Reading in hiragana",
						},
						"definition": map[string]any{
							"type":        "string",
							"description": "English definition",
						},
					},
					"required":             []any{"word", "reading", "definition"},
					"additionalProperties": false,
				},
				"description": "8-12 words a learner at this level may not know",
			},
		},
		"required":             []any{"title", "content", "vocabulary"},
		"additionalProperties": false,
	},
}
