package review

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ayumu/kotoba/internal/llm"
	"github.com/ayumu/kotoba/internal/store"
)

// Correction is one suggested fix for a learner sentence.
type Correction struct {
	Original    string `json:"original"`
	Corrected   string `json:"corrected"`
	Explanation string `json:"explanation"`
}

// Review is structured feedback for one conversation.
type Review struct {
	Score           int          `json:"score"`
	Strengths       []string     `json:"strengths"`
	Corrections     []Correction `json:"corrections"`
	Recommendations []string     `json:"recommendations"`
}

// Config tunes review generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the review defaults. Low temperature: feedback
// should be consistent, not creative.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.2,
	}
}

// Service generates conversation reviews.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a review service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate reviews a saved conversation. The model output must be valid
// JSON matching ReviewSchema, optionally wrapped in a fenced code block.
// Anything else fails with *llm.ErrInvalidResponse.
func (s *Service) Generate(ctx context.Context, conv *store.Conversation) (*Review, error) {
	ctx = llm.WithPurpose(ctx, "review")

	req := llm.Request{
		System: reviewSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReviewUserMessage(conv)},
		},
		Schema:      ReviewSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("review generation: %w", err)
	}

	return ParseReview(resp.Content)
}

// ParseReview decodes a review from raw model output, stripping optional
// fenced-code-block markers and validating against ReviewSchema.
func ParseReview(raw json.RawMessage) (*Review, error) {
	payload, err := llm.ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	if err := llm.Validate(ReviewSchema, payload); err != nil {
		return nil, err
	}

	var out Review
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: err}
	}
	return &out, nil
}
