package review

import "github.com/ayumu/kotoba/internal/llm"

// ReviewSchema defines the JSON schema for conversation feedback.
var ReviewSchema = &llm.Schema{
	Name:        "conversation-review",
	Description: "Structured feedback on a learner's Japanese conversation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall performance score",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 things the learner did well (one sentence each)",
			},
			"corrections": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"original": map[string]any{
							"type":        "string",
							"description": "The learner's sentence as written",
						},
						"corrected": map[string]any{
							"type":        "string",
							"description": "A natural corrected version",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correction is needed, in English",
						},
					},
					"required":             []any{"original", "corrected", "explanation"},
					"additionalProperties": false,
				},
				"description": "Up to 5 corrections of the learner's most significant mistakes",
			},
			"recommendations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-3 concrete study recommendations",
			},
		},
		"required":             []any{"score", "strengths", "corrections", "recommendations"},
		"additionalProperties": false,
	},
}
