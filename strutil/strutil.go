// Package strutil provides small substring and identifier helpers used
// around the segmentation primitives.
package strutil

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// CutFirst splits s at the first occurrence of sep and returns the text
// before and after it. When sep does not occur, it returns (s, "").
func CutFirst(s, sep string) (before, after string) {
	if b, a, found := strings.Cut(s, sep); found {
		return b, a
	}
	return s, ""
}

// Before returns the text preceding the first occurrence of sep, or ""
// when sep does not occur in s.
func Before(s, sep string) string {
	idx := strings.Index(s, sep)
	if idx < 0 {
		return ""
	}
	return s[:idx]
}

// LookupValue scans a list of "key=value" entries and returns the value of
// the first entry whose key matches. The second result reports whether the
// key was found.
func LookupValue(pairs []string, key string) (string, bool) {
	for _, pair := range pairs {
		if k, v, found := strings.Cut(pair, "="); found && k == key {
			return v, true
		}
	}
	return "", false
}

// TrimLeadingRune removes r from the start of s if present.
func TrimLeadingRune(s string, r rune) string {
	if first, size := utf8.DecodeRuneInString(s); size > 0 && first == r {
		return s[size:]
	}
	return s
}

// TrimTrailingRune removes r from the end of s if present.
func TrimTrailingRune(s string, r rune) string {
	if last, size := utf8.DecodeLastRuneInString(s); size > 0 && last == r {
		return s[:len(s)-size]
	}
	return s
}

// NewDocumentID returns a random identifier suitable for tagging documents
// and chunks.
func NewDocumentID() string {
	return uuid.New().String()
}
