package segment

import (
	"testing"
	"unicode/utf8"
)

func TestStripRegions(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		open  string
		close string
		want  string
	}{
		{"No markers", "plain text", "<t>", "</t>", "plain text"},
		{"Single region", "Hello <t>secret</t> world", "<t>", "</t>", "Hello  world"},
		{"Region at start", "<t>x</t>rest", "<t>", "</t>", "rest"},
		{"Region at end", "keep<t>x</t>", "<t>", "</t>", "keep"},
		{"Adjacent regions", "a<t>1</t><t>2</t>b", "<t>", "</t>", "ab"},
		{"Nested regions", "a <t>b <t>c</t> d</t> e", "<t>", "</t>", "a  e"},
		{"Unmatched open drops remainder", "before <t>unfinished", "<t>", "</t>", "before "},
		{"Unmatched open with later text", "a<t>b</t>c<t>d", "<t>", "</t>", "ac"},
		{"Nested unmatched", "x<t>a<t>b</t>c", "<t>", "</t>", "x"},
		{"Stray close is plain text", "a</t>b", "<t>", "</t>", "a</t>b"},
		{"Multi-byte outside", "你<t>好</t>世界", "<t>", "</t>", "你世界"},
		{"Multi-byte markers", "a«x»b", "«", "»", "ab"},
		{"Empty open removes everything", "anything", "", "</t>", ""},
		{"Empty close keeps body", "a<t>b", "<t>", "", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripRegions(tt.text, tt.open, tt.close)
			if got != tt.want {
				t.Errorf("StripRegions(%q, %q, %q) = %q, want %q",
					tt.text, tt.open, tt.close, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("StripRegions produced invalid UTF-8: %q", got)
			}
		})
	}
}

func TestStripRegionsIdempotent(t *testing.T) {
	inputs := []string{
		"Hello <t>secret</t> world",
		"a <t>b <t>c</t> d</t> e",
		"before <t>unfinished",
		"no markers at all",
	}

	for _, text := range inputs {
		once := StripRegions(text, "<t>", "</t>")
		twice := StripRegions(once, "<t>", "</t>")
		if once != twice {
			t.Errorf("StripRegions not idempotent on %q: %q then %q", text, once, twice)
		}
	}
}
