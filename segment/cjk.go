package segment

import "unicode"

// cjkIdeographs covers the CJK Unified Ideographs block, its extensions and
// the compatibility blocks. Word counting treats every member as its own word.
var cjkIdeographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1}, // CJK Extension A
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}, // CJK Unified Ideographs
		{Lo: 0xF900, Hi: 0xFAFF, Stride: 1}, // CJK Compatibility Ideographs
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1}, // CJK Extension B
		{Lo: 0x2A700, Hi: 0x2B73F, Stride: 1}, // CJK Extension C
		{Lo: 0x2B740, Hi: 0x2B81F, Stride: 1}, // CJK Extension D
		{Lo: 0x2B820, Hi: 0x2CEAF, Stride: 1}, // CJK Extension E
		{Lo: 0x2F800, Hi: 0x2FA1F, Stride: 1}, // CJK Compatibility Supplement
	},
}

// IsCJK reports whether r belongs to a CJK ideograph Unicode block.
func IsCJK(r rune) bool {
	return unicode.Is(cjkIdeographs, r)
}
