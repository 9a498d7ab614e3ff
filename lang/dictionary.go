package lang

import (
	"bufio"
	"io"

	"github.com/poiesic/demorse/core"
)

// Dictionary is a finalized set of uppercase alphabetic words. It is
// read-only after construction and safe to share across decodes.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary builds a dictionary from words. Tokens are case-folded to
// uppercase; non-alphabetic tokens are dropped, not rejected.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, token := range words {
		if word := core.NormalizeWord(token); word != "" {
			d.words[word] = struct{}{}
		}
	}
	return d
}

// ReadDictionary builds a dictionary from a line-oriented source, one
// candidate word per line, with the same filtering as NewDictionary.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{words: make(map[string]struct{})}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if word := core.NormalizeWord(scanner.Text()); word != "" {
			d.words[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// Contains reports whether word is a dictionary member.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns the dictionary contents as a new slice, in no particular
// order.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.words))
	for word := range d.words {
		words = append(words, word)
	}
	return words
}
