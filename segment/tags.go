package segment

import (
	"strings"
	"unicode/utf8"
)

// StripRegions removes every region of text delimited by the literal
// openMarker and closeMarker byte sequences, markers included. Regions
// nest: an open marker inside a region deepens it and needs its own close
// marker before copying resumes. An unmatched open marker removes
// everything from that marker to the end of the text. Text outside regions
// is copied one whole codepoint at a time, so the result is always valid
// UTF-8.
//
// An empty open marker matches at every position and therefore removes the
// whole input.
func StripRegions(text, openMarker, closeMarker string) string {
	if openMarker == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(text))

	depth := 0
	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], openMarker) {
			depth++
			i += len(openMarker)
			continue
		}
		if depth > 0 && strings.HasPrefix(text[i:], closeMarker) {
			depth--
			i += len(closeMarker)
			continue
		}

		_, size := utf8.DecodeRuneInString(text[i:])
		if depth == 0 {
			out.WriteString(text[i : i+size])
		}
		i += size
	}

	return out.String()
}
