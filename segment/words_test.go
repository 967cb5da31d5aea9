package segment

import "testing"

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"Empty", "", 0},
		{"Whitespace only", "   \n\t  ", 0},
		{"Basic words", "Hello world", 2},
		{"Three words", "One two three", 3},
		{"Trailing punctuation", "Hello, world!", 2},
		{"Wrapped in parens", "(test)", 1},
		{"Quoted", `"quoted"`, 1},
		{"Punctuation only token", "... --- !!!", 1}, // "---" keeps its hyphens
		{"Multiple whitespace kinds", "a   b\tc\nd", 4},
		{"Padded", "   spaced   out   ", 2},
		{"Hyphenated compound", "state-of-the-art", 1},
		{"Another compound", "mother-in-law", 1},
		{"Contraction", "don't stop", 2},
		{"Contraction I'm", "I'm here", 2},
		{"URL", "Visit https://example.com now", 3},
		{"Bare URL", "example.com/test", 1},
		{"Emoji", "🙂", 1},
		{"Emoji between words", "Hello 🙂 world", 3},
		{"CJK only", "你好世界", 4},
		{"CJK tokens", "你好 世界", 4},
		{"Mixed CJK and Latin words", "Hello 你好", 3},
		{"CJK with Latin in one token", "Go语言", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.text); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountCJK(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"hello", 0},
		{"你好世界", 4},
		{"Go语言 rocks", 2},
	}

	for _, tt := range tests {
		if got := CountCJK(tt.text); got != tt.want {
			t.Errorf("CountCJK(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
