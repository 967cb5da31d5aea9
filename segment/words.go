package segment

import (
	"strings"
	"unicode/utf8"
)

// asciiPunct is the full ASCII punctuation set, matching what word
// processors strip from token boundaries.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// CountWords counts words the way a document editor does, not by splitting
// on spaces alone. Tokens are separated by whitespace, leading and trailing
// ASCII punctuation is ignored, and apostrophes and hyphens are kept so
// contractions ("don't") and hyphenated compounds ("state-of-the-art")
// count once. URLs and emoji count as one word each. A token made entirely
// of CJK ideographs contributes one word per codepoint.
func CountWords(text string) int {
	count := 0
	for _, token := range strings.Fields(text) {
		trimmed := strings.TrimFunc(token, isTrimmablePunct)
		if trimmed == "" {
			continue
		}
		if allCJK(trimmed) {
			count += utf8.RuneCountInString(trimmed)
			continue
		}
		count++
	}
	return count
}

// CountCJK returns the number of codepoints in text that belong to a CJK
// ideograph block.
func CountCJK(text string) int {
	count := 0
	for _, r := range text {
		if IsCJK(r) {
			count++
		}
	}
	return count
}

func isTrimmablePunct(r rune) bool {
	return r != '\'' && r != '-' && strings.ContainsRune(asciiPunct, r)
}

func allCJK(s string) bool {
	for _, r := range s {
		if !IsCJK(r) {
			return false
		}
	}
	return true
}
