package segment

import "strings"

// CountParagraphs counts paragraphs delimited by newline sequences. Windows
// (\r\n), Unix (\n) and old Mac (\r) line endings all end a paragraph, and
// consecutive breaks produce empty paragraphs that are still counted. A
// document without any break is one paragraph; an empty document is zero.
func CountParagraphs(text string) int {
	if text == "" {
		return 0
	}

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	breaks := strings.Count(normalized, "\n")
	if breaks == 0 {
		return 1
	}

	// A document that opens with a break carries no implicit paragraph
	// before it: the break count itself is the answer.
	if normalized[0] == '\n' {
		return breaks
	}

	return breaks + 1
}
