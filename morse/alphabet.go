package morse

// Symbol is a single Morse signal element.
type Symbol uint8

const (
	// Dot is the short signal element.
	Dot Symbol = iota
	// Dash is the long signal element.
	Dash
	// Invalid marks a bitstream character outside {'0','1'}. It never
	// matches a trie edge, so the branch it appears on silently dies.
	Invalid
)

func (s Symbol) String() string {
	switch s {
	case Dot:
		return "."
	case Dash:
		return "-"
	default:
		return "?"
	}
}

// codes maps each of the 26 letters to its dot/dash code.
var codes = map[byte]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",
}

// CodeForLetter returns the dot/dash code for an uppercase letter.
func CodeForLetter(letter byte) (string, bool) {
	code, ok := codes[letter]
	return code, ok
}

// LetterForCode returns the letter encoded by a dot/dash code string.
func LetterForCode(code string) (byte, bool) {
	for letter, c := range codes {
		if c == code {
			return letter, true
		}
	}
	return 0, false
}

// SymbolsForCode converts a dot/dash code string into symbols.
// Characters other than '.' and '-' map to Invalid.
func SymbolsForCode(code string) []Symbol {
	symbols := make([]Symbol, len(code))
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '.':
			symbols[i] = Dot
		case '-':
			symbols[i] = Dash
		default:
			symbols[i] = Invalid
		}
	}
	return symbols
}
