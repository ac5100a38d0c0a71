package story

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ayumu/kotoba/internal/llm"
	"github.com/ayumu/kotoba/internal/store"
)

// ErrUnknownLevel is returned when a level outside N5..N1 is requested.
var ErrUnknownLevel = fmt.Errorf("unknown JLPT level")

// Story is a generated reading passage before it is saved.
type Story struct {
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	Vocabulary []store.VocabEntry `json:"vocabulary"`
}

// Config tunes story generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the story defaults. Higher temperature than
// review: variety between stories is the point.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.9,
	}
}

// Service generates reading practice stories.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a story service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces a story at the given level. An empty topic lets the
// model choose one. The output must be valid JSON matching StorySchema,
// optionally wrapped in a fenced code block; anything else fails with
// *llm.ErrInvalidResponse.
func (s *Service) Generate(ctx context.Context, level Level, topic string) (*Story, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}

	ctx = llm.WithPurpose(ctx, "story")

	req := llm.Request{
		System: storySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStoryUserMessage(level, topic)},
		},
		Schema:      StorySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("story generation: %w", err)
	}

	return ParseStory(resp.Content)
}

// ParseStory decodes a story from raw model output, stripping optional
// fenced-code-block markers and validating against StorySchema.
func ParseStory(raw json.RawMessage) (*Story, error) {
	payload, err := llm.ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	if err := llm.Validate(StorySchema, payload); err != nil {
		return nil, err
	}

	var out Story
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: err}
	}
	return &out, nil
}
