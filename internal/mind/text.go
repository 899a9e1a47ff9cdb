package mind

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lower-cases s for keyword matching. A Caser keeps state, so one is
// built per call rather than shared across goroutines.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(s)
}

// containsAny reports whether lower contains any of tokens as a substring.
func containsAny(lower string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// TruncateForLog shortens s to at most max bytes for log output without
// splitting a rune.
func TruncateForLog(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max] + "..."
}
