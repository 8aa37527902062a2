package engine

import (
	"strings"

	"github.com/rshade/recipefind/internal/catalog"
)

// Query is one search request. Text is used verbatim as the needle.
type Query struct {
	Text          string
	CaseSensitive bool
}

// Search returns the records whose title or content contains q.Text as a
// literal substring, in the order they appear in records. When
// q.CaseSensitive is false both sides are lower-cased before comparing.
//
// Search does not validate; callers run Validate first.
func Search(records []catalog.Record, q Query) []catalog.Record {
	needle := q.Text
	if !q.CaseSensitive {
		needle = strings.ToLower(needle)
	}

	matches := make([]catalog.Record, 0, len(records))
	for _, r := range records {
		if recordMatches(r, needle, q.CaseSensitive) {
			matches = append(matches, r)
		}
	}
	return matches
}

// recordMatches expects needle to be pre-folded when caseSensitive is false.
func recordMatches(r catalog.Record, needle string, caseSensitive bool) bool {
	title, content := r.Title, r.Content
	if !caseSensitive {
		title = strings.ToLower(title)
		content = strings.ToLower(content)
	}
	return strings.Contains(title, needle) || strings.Contains(content, needle)
}
