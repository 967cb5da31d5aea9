package segment

import "unicode"

// wordRun is a maximal run of non-whitespace bytes as a half-open byte range.
type wordRun struct {
	start int
	end   int
}

// SplitWords partitions text into at most n pieces, splitting only at
// whitespace so no word is ever cut apart. Words are distributed across the
// pieces as evenly as possible, with piece sizes differing by at most one
// word. The whitespace between two pieces travels with the following piece,
// so concatenating the result reproduces the input except for whitespace
// after the very last word, which is never emitted. Text without any word,
// or n < 1, yields no pieces.
func SplitWords(text string, n int) []string {
	if n < 1 {
		return nil
	}

	runs := wordRuns(text)
	if len(runs) == 0 {
		return nil
	}

	parts := n
	if len(runs) < parts {
		parts = len(runs)
	}

	pieces := make([]string, 0, parts)
	start := 0
	for i := 0; i < parts; i++ {
		last := (i+1)*len(runs)/parts - 1
		end := runs[last].end
		pieces = append(pieces, text[start:end])
		start = end
	}

	return pieces
}

// CountWordRuns returns the number of maximal non-whitespace runs in text.
// Unlike CountWords it applies no punctuation or script heuristics; it is
// the word count that SplitWords distributes over.
func CountWordRuns(text string) int {
	return len(wordRuns(text))
}

func wordRuns(text string) []wordRun {
	var runs []wordRun
	inWord := false
	start := 0

	for i, r := range text {
		if unicode.IsSpace(r) {
			if inWord {
				runs = append(runs, wordRun{start: start, end: i})
				inWord = false
			}
			continue
		}
		if !inWord {
			start = i
			inWord = true
		}
	}
	if inWord {
		runs = append(runs, wordRun{start: start, end: len(text)})
	}

	return runs
}
