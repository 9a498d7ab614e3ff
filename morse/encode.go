package morse

import "strings"

// EncodeBitstream renders text as a continuous bitstream under the normal
// polarity convention, '1' for dot and '0' for dash. Spaces and letter gaps
// carry no signal and are dropped, which is exactly the ambiguity the decoder
// exists to undo. Returns false if text contains a non-alphabetic,
// non-space character.
func EncodeBitstream(text string) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == ' ' {
			continue
		}
		code, ok := codes[ch]
		if !ok {
			return "", false
		}
		for j := 0; j < len(code); j++ {
			if code[j] == '.' {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String(), true
}
