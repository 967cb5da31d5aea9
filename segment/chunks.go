package segment

import "unicode/utf8"

// SplitBytes partitions text into consecutive chunks of at most budget
// bytes without ever cutting a multi-byte encoding in half: a chunk end
// that would land inside a codepoint is moved back to the nearest boundary
// (at most three bytes for a 4-byte sequence). When the budget is smaller
// than the next codepoint's encoding, including a zero or negative budget,
// the chunk holds exactly that codepoint so the split always terminates.
// Concatenating the chunks in order is byte-identical to the input; empty
// input yields no chunks.
func SplitBytes(text string, budget int) []string {
	if text == "" {
		return nil
	}

	var chunks []string
	for start := 0; start < len(text); {
		end := start + budget
		if end >= len(text) {
			chunks = append(chunks, text[start:])
			break
		}

		for end > start && !utf8.RuneStart(text[end]) {
			end--
		}
		if end <= start {
			// Budget below one encoding unit: advance a whole codepoint
			// to guarantee progress.
			_, size := utf8.DecodeRuneInString(text[start:])
			end = start + size
		}

		chunks = append(chunks, text[start:end])
		start = end
	}

	return chunks
}
