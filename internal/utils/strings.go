package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitLines splits newline-delimited form text into cleaned entries.
// Dashboard textareas submit include/exclude/schedule lists this way.
func SplitLines(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, "\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CoalesceLines re-splits entries that still carry embedded newlines so
// a pasted block becomes one entry per line.
func CoalesceLines(items []string) []string {
	if len(items) == 0 {
		return items
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, SplitLines(item)...)
	}
	return out
}
