package lookup

import "strings"

// ExtractJSON strips surrounding markdown code fences (with or without a
// language tag) and trims the text down to the outermost JSON value. A reply
// without fences passes through unchanged.
func ExtractJSON(raw string) string {
	text := trimCodeFence(strings.TrimSpace(raw))
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```JSON")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSpace(text)
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
