package tui

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

const truncateSuffix = "..."

// FormatResultCount renders the match count line, e.g. "Found 1,234 results".
func FormatResultCount(n int) string {
	return printer.Sprintf("Found %d results", n)
}

// FormatPagePosition renders "Page X of Y".
func FormatPagePosition(page, total int) string {
	return printer.Sprintf("Page %d of %d", page, total)
}

// Truncate shortens s to at most limit runes, replacing the tail with "...".
// Newlines are flattened to spaces.
func Truncate(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit <= len(truncateSuffix) {
		return string([]rune(s)[:limit])
	}
	return string([]rune(s)[:limit-len(truncateSuffix)]) + truncateSuffix
}
