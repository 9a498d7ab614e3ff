package decode

import "strings"

// sentence is a persistent cons list of committed words. Appending shares
// the whole prefix with the parent state, so the many states spawned from a
// common history cost one node each instead of a slice copy.
type sentence struct {
	word string
	prev *sentence
}

// append returns a new sentence extending s by word. The receiver may be nil
// (the empty sentence).
func (s *sentence) append(word string) *sentence {
	return &sentence{word: word, prev: s}
}

// join renders the sentence as space-separated words in commit order,
// optionally followed by a final word.
func (s *sentence) join(final string) string {
	count := 0
	for node := s; node != nil; node = node.prev {
		count++
	}
	words := make([]string, count, count+1)
	for node := s; node != nil; node = node.prev {
		count--
		words[count] = node.word
	}
	if final != "" {
		words = append(words, final)
	}
	return strings.Join(words, " ")
}
