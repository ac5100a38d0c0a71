package story

import (
	"fmt"
	"strings"
)

const storySystemPrompt = `You are a Japanese graded-reader author. You write short, engaging stories calibrated to a specific JLPT level, using only grammar and vocabulary appropriate for that level.`

func buildStoryUserMessage(level Level, topic string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a short story in Japanese at JLPT %s level (%s).\n", level, level.Description())
	if topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", topic)
	}

	b.WriteString(`
Requirements:
1. A Japanese title.
2. 3-6 short paragraphs of story text. Stay strictly within the level's grammar and vocabulary.
3. A vocabulary list of 8-12 words from the story a learner at this level may not know, each with its hiragana reading and an English definition.
Respond with JSON only.`)

	return b.String()
}
