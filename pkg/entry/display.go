package entry

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// PlainText strips rich-text markup from content and trims whitespace.
// The edit boundary and the assist client both work on this form.
func PlainText(content string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(content, ""))
}

// Preview returns the first max runes of the plain text, with an ellipsis
// when truncated. Used by entry cards and assist summaries.
func Preview(content string, max int) string {
	text := PlainText(content)
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
