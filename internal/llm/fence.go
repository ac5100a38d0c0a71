package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON recovers a JSON payload from raw model text. Models asked
// for JSON sometimes wrap it in a fenced code block (``` or ```json);
// the fence markers are stripped before parsing. A payload that is not
// valid JSON after stripping is a typed *ErrInvalidResponse; fields are
// never silently defaulted.
func ExtractJSON(raw json.RawMessage) (json.RawMessage, error) {
	text := strings.TrimSpace(string(raw))

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	if !json.Valid([]byte(text)) {
		return nil, &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("response is not valid JSON"),
		}
	}

	return json.RawMessage(text), nil
}
