package mock

import (
	"context"
	"strings"

	"github.com/poiesic/demorse/ai"
)

// MockSentenceRanker is a test double for ai.SentenceRanker.
// It allows custom behavior injection via function fields.
type MockSentenceRanker struct {
	// RankSentencesFunc is called by RankSentences if set.
	// If nil, uses the default word-length heuristic.
	RankSentencesFunc func(ctx context.Context, sentences []string) ([]ai.RankedSentence, error)

	callCount int
}

// NewMockSentenceRanker creates a mock sentence ranker with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockRanker().
func NewMockSentenceRanker() *MockSentenceRanker {
	return &MockSentenceRanker{}
}

// RankSentences rates sentences deterministically.
// Default behavior: plausibility grows with average word length, so runs of
// single-letter filler words rate low and longer words rate high.
func (m *MockSentenceRanker) RankSentences(ctx context.Context, sentences []string) ([]ai.RankedSentence, error) {
	m.callCount++

	if m.RankSentencesFunc != nil {
		return m.RankSentencesFunc(ctx, sentences)
	}

	ranked := make([]ai.RankedSentence, len(sentences))
	for i, sentence := range sentences {
		words := strings.Fields(sentence)
		if len(words) == 0 {
			ranked[i] = ai.RankedSentence{Sentence: sentence, Plausibility: 1}
			continue
		}

		letters := 0
		for _, word := range words {
			letters += len(word)
		}

		plausibility := 2 * letters / len(words)
		if plausibility < 1 {
			plausibility = 1
		}
		if plausibility > 10 {
			plausibility = 10
		}

		ranked[i] = ai.RankedSentence{Sentence: sentence, Plausibility: plausibility}
	}

	return ranked, nil
}

// CallCount returns the number of times RankSentences was called.
func (m *MockSentenceRanker) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockSentenceRanker) Reset() {
	m.callCount = 0
	m.RankSentencesFunc = nil
}
