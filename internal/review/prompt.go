package review

import (
	"fmt"
	"strings"

	"github.com/ayumu/kotoba/internal/store"
)

const reviewSystemPrompt = `You are a Japanese language teacher reviewing a student's conversation practice. Judge only the student's turns; the partner's turns are context. Be encouraging but specific.`

func buildReviewUserMessage(conv *store.Conversation) string {
	var b strings.Builder

	b.WriteString("Conversation transcript:\n")
	for _, m := range conv.Messages {
		speaker := "Partner"
		if m.Role == store.RoleUser {
			speaker = "Student"
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, m.Content)
	}

	b.WriteString(`
Instructions:
Review the student's Japanese and produce:
1. An overall score from 0 to 100 reflecting grammar, vocabulary use, and naturalness.
2. 2-4 specific strengths.
3. Corrections for the most significant mistakes (at most 5). Quote the student's sentence exactly, give a natural corrected version, and explain the fix in English.
4. 2-3 concrete recommendations for what to study next.
Respond with JSON only.`)

	return b.String()
}
