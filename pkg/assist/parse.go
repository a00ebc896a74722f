package assist

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fencedPattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// decodeLoose parses model output that may arrive as bare JSON, JSON inside
// a fenced code block, or JSON buried in prose. The three stages run in
// order and the first viable parse wins; callers rely on that order.
func decodeLoose(text string, target interface{}) error {
	if err := json.Unmarshal([]byte(text), target); err == nil {
		return nil
	}

	if m := fencedPattern.FindStringSubmatch(text); len(m) == 2 && m[1] != "" {
		if err := json.Unmarshal([]byte(m[1]), target); err == nil {
			return nil
		}
	}

	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first != -1 && last > first {
		if err := json.Unmarshal([]byte(text[first:last+1]), target); err == nil {
			return nil
		}
	}

	return fmt.Errorf("assist: response is not parseable JSON: %q", truncate(text, 120))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
