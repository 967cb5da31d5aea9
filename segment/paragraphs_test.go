package segment

import "testing"

func TestCountParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"Empty", "", 0},
		{"No break", "Hello world", 1},
		{"Unix break", "Hello\nWorld", 2},
		{"Windows break", "Hello\r\nWorld", 2},
		{"Old Mac break", "Hello\rWorld", 2},
		{"Newline only", "\n", 1},
		{"CR only", "\r", 1},
		{"CRLF only", "\r\n", 1},
		{"Trailing break counts", "Hello\n", 2},
		{"Trailing CRLF counts", "Hello\r\n", 2},
		{"Empty paragraph between", "A\n\nB", 3},
		{"Two empty paragraphs", "A\n\n\nB", 4},
		{"Whitespace-only line", "A\n   \nB", 3},
		{"Mixed break styles", "A\r\nB\nC\rD", 4},
		{"Leading break", "\nA", 1},
		{"Two leading breaks", "\n\nA", 2},
		{"Leading CRLF", "\r\nA", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountParagraphs(tt.text); got != tt.want {
				t.Errorf("CountParagraphs(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
