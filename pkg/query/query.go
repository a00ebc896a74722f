// Package query holds the pure, read-only derivations over the journal
// collection: text search and calendar bucketing.
package query

import (
	"strings"

	"tableflip.dev/lumiere/pkg/entry"
)

// Search returns the entries whose lower-cased title, content, any tag,
// or creation date (YYYY-MM-DD) contains the lower-cased query as a
// substring. The empty query returns the input unchanged, order included.
func Search(entries []*entry.JournalEntry, q string) []*entry.JournalEntry {
	if q == "" {
		return entries
	}
	term := strings.ToLower(q)

	out := make([]*entry.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if matches(e, term) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e *entry.JournalEntry, term string) bool {
	if strings.Contains(strings.ToLower(e.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Content), term) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return strings.Contains(e.DateKey(), term)
}
