package morse

import "testing"

func TestEncodeBitstream(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		ok       bool
	}{
		{"single letter", "E", "1", true},
		{"hi", "HI", "111111", true},
		{"sos", "SOS", "111000111", true},
		{"spaces dropped", "E E", "11", true},
		{"empty", "", "", true},
		{"lowercase rejected", "sos", "", false},
		{"punctuation rejected", "SOS!", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EncodeBitstream(tt.text)
			if ok != tt.ok {
				t.Fatalf("EncodeBitstream(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("EncodeBitstream(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	// Every encoded letter must walk back through the trie to itself
	trie := NewTrie()
	for letter := byte('A'); letter <= 'Z'; letter++ {
		code, ok := CodeForLetter(letter)
		if !ok {
			t.Fatalf("no code for %c", letter)
		}

		ref := trie.Root()
		for _, symbol := range SymbolsForCode(code) {
			ref, ok = trie.Child(ref, symbol)
			if !ok {
				t.Fatalf("trie walk failed for %c", letter)
			}
		}

		got, terminal := trie.Letter(ref)
		if !terminal || got != letter {
			t.Errorf("code for %c resolved to %c (terminal=%v)", letter, got, terminal)
		}
	}
}
