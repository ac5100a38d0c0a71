package chat

import (
	"context"
	"fmt"

	"github.com/ayumu/kotoba/internal/llm"
	"github.com/ayumu/kotoba/internal/store"
)

// Config tunes conversation generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the conversation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}

// Service produces the next assistant turn for a conversation.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a conversation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// NextReply sends the transcript to the model and returns the partner's
// next line. The transcript must end with a learner turn.
func (s *Service) NextReply(ctx context.Context, scn Scenario, transcript []store.Message) (string, error) {
	ctx = llm.WithPurpose(ctx, "chat")

	history, prompt, err := SplitTranscript(transcript)
	if err != nil {
		return "", err
	}

	req := llm.Request{
		System:      buildSystemPrompt(scn),
		Messages:    append(history, llm.Message{Role: llm.RoleUser, Content: prompt}),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat generation: %w", err)
	}

	return resp.Text(), nil
}

const tutorPersona = `You are a Japanese conversation partner for a language learner. Respond in natural Japanese appropriate to the learner's level, keeping replies to 1-3 sentences. If the learner makes a significant mistake, continue the conversation naturally — do not break character to correct them.`

func buildSystemPrompt(scn Scenario) string {
	return fmt.Sprintf("%s\n\nRole-play: you are %s.", tutorPersona, scn.Role)
}
