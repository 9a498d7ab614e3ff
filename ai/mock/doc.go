// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.SentenceRanker and
// ai.AIProvider for use in unit tests. The mocks allow tests to run without
// external AI service dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	ranked, err := mockProvider.SentenceRanker().RankSentences(ctx, []string{"SOS"})
//
//	// Custom behavior injection
//	mockRanker := mock.NewMockSentenceRanker()
//	mockRanker.RankSentencesFunc = func(ctx context.Context, sentences []string) ([]ai.RankedSentence, error) {
//	    ...
//	}
//
//	// Check call counts
//	count := mockRanker.CallCount()
//
// # Default Behavior
//
// The default MockSentenceRanker rates sentences by average word length:
// longer words read as more deliberate, so they score higher. This is a
// deterministic stand-in, not a model of plausibility.
package mock
