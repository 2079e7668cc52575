// Package text provides Unicode-aware string helpers for generated article text.
package text

import "strings"

// CountRunes returns the number of Unicode characters in s.
func CountRunes(s string) int {
	return len([]rune(s))
}

// Truncate shortens s to at most max runes, appending "…" when it cuts.
// A non-positive max returns s unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}

// FirstLine returns the first non-blank line of s with leading markdown
// heading markers and surrounding whitespace removed.
func FirstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		if line != "" {
			return line
		}
	}
	return ""
}
